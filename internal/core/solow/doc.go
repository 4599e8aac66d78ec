// Package solow implements the Solow growth model in intensive form:
// everything is expressed per effective worker, with a Cobb-Douglas
// production function f(k) = k^alpha and capital accumulation
// dk/dt = s*f(k) - (n+g+delta)*k.
//
// The package is pure computation. Persistence and transport live in the
// services and handlers built on top of it.
package solow
