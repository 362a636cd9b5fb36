package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshot_AcceptsISOTimestamps(t *testing.T) {
	id := uuid.New()
	blob := []byte(`[{
		"id": "` + id.String() + `",
		"imageUrl": "https://cdn.example.com/a.jpg",
		"location": {"latitude": 5, "longitude": 5},
		"sector": "North",
		"uploadedBy": "Alice",
		"uploadedAt": "2024-05-01T10:00:00.000Z",
		"isRead": true
	}]`)

	notifications, err := decodeSnapshot(blob)

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Equal(t, id, n.ID)
	assert.Equal(t, "https://cdn.example.com/a.jpg", n.ImageRef)
	assert.Equal(t, "North", n.Sector)
	assert.Equal(t, "Alice", n.UploadedBy)
	assert.True(t, n.IsRead)
	assert.True(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(n.UploadedAt))
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `not json`},
		{"not a list", `{"id": "x"}`},
		{"bad id", `[{"id": "nope", "uploadedAt": "2024-05-01T10:00:00Z"}]`},
		{"bad timestamp", `[{"id": "` + uuid.NewString() + `", "uploadedAt": "yesterday"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSnapshot([]byte(tt.blob))
			assert.Error(t, err)
		})
	}
}

func TestDecodeSnapshot_Empty(t *testing.T) {
	notifications, err := decodeSnapshot([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, notifications)
}
