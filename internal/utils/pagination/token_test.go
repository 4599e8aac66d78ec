package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 11, 3, 14, 30, 45, 123456789, time.UTC)
	runID := "6d1c2ab0-0f6e-4be1-9f6e-6cf2a1e8ec55"

	token := EncodeToken(createdAt, runID)
	assert.NotEmpty(t, token)

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, createdAt, decodedAt)
	assert.Equal(t, runID, decodedID)

	// IDs containing the separator survive the round trip.
	token = EncodeToken(createdAt, "id|with|pipes")
	_, decodedID, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "id|with|pipes", decodedID)

	// Zero time round-trips too.
	token = EncodeToken(time.Time{}, "x")
	decodedAt, _, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.True(t, decodedAt.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no separator.
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Separator present but the timestamp is garbage.
	_, _, err = DecodeToken("bm90YWRhdGV8c29tZS1pZA==") // "notadate|some-id"
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")
}
