package memoryservice

import (
	"context"
	"strings"
	"sync"

	"github.com/meetsync/meetsync-server/pkg/models"
)

// TranscriptionStore is the process-lifetime in-memory store. Records
// are discarded on restart, there is no eviction and no size bound.
type TranscriptionStore struct {
	mu      sync.RWMutex
	entries map[string]*models.Transcription
}

func NewTranscriptionStore() *TranscriptionStore {
	return &TranscriptionStore{
		entries: make(map[string]*models.Transcription),
	}
}

func (s *TranscriptionStore) Save(_ context.Context, t *models.Transcription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[models.CacheKey(t.MeetingId, t.RecordingId)] = t
	return nil
}

func (s *TranscriptionStore) GetByMeetingId(_ context.Context, meetingId string) (map[string]*models.Transcription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := meetingId + "_"
	result := make(map[string]*models.Transcription)
	for key, t := range s.entries {
		if strings.HasPrefix(key, prefix) {
			result[models.RecordingIdFromKey(key, meetingId)] = t
		}
	}
	return result, nil
}
