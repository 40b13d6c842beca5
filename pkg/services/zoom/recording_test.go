package zoomservice

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomService_GetRecordings(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meetings/123/recordings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 123,
			"duration": 30,
			"recording_files": [
				{"id": "rec-1", "recording_type": "shared_screen_with_speaker_view", "file_type": "MP4", "file_size": 1024, "play_url": "https://example.com/p/1", "download_url": "https://example.com/d/1"}
			]
		}`))
	}))

	recording, err := s.GetRecordings(context.Background(), "123")
	require.NoError(t, err)
	require.NotNil(t, recording)
	require.Len(t, recording.RecordingFiles, 1)
	assert.Equal(t, "rec-1", recording.RecordingFiles[0].ID)
	assert.Equal(t, "MP4", recording.RecordingFiles[0].FileType)
}

// a provider 404 means no recordings exist yet, not an error
func TestZoomService_GetRecordings_NotFound(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code": 3301, "message": "There is no recording for this meeting"}`, http.StatusNotFound)
	}))

	recording, err := s.GetRecordings(context.Background(), "123")
	assert.NoError(t, err)
	assert.Nil(t, recording)
}

func TestZoomService_GetRecordings_OtherErrorPropagates(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "rate limited"}`, http.StatusTooManyRequests)
	}))

	recording, err := s.GetRecordings(context.Background(), "123")
	assert.Error(t, err)
	assert.Nil(t, recording)
}
