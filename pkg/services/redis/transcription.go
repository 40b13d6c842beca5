package redisservice

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/meetsync/meetsync-server/pkg/models"
)

const transcriptionKeyPrefix = Prefix + "transcription:"

// Save writes one transcription record under its composite key. A
// record for the same (meeting, recording) pair is overwritten.
func (s *RedisService) Save(ctx context.Context, t *models.Transcription) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	key := transcriptionKeyPrefix + models.CacheKey(t.MeetingId, t.RecordingId)
	return s.rc.Set(ctx, key, data, 0).Err()
}

// GetByMeetingId scans all transcription keys of one meeting and
// returns the decoded records keyed by recording id.
func (s *RedisService) GetByMeetingId(ctx context.Context, meetingId string) (map[string]*models.Transcription, error) {
	result := make(map[string]*models.Transcription)
	match := transcriptionKeyPrefix + globEscape(meetingId) + "_*"

	iter := s.rc.Scan(ctx, 0, match, 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.rc.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			s.logger.WithError(err).Warnf("failed to read transcription key %s", iter.Val())
			continue
		}

		t := new(models.Transcription)
		if err := json.Unmarshal(data, t); err != nil {
			s.logger.WithError(err).Warnf("failed to decode transcription key %s", iter.Val())
			continue
		}
		result[t.RecordingId] = t
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// globEscape neutralizes SCAN MATCH metacharacters so an id is matched
// literally.
func globEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"?", `\?`,
		"[", `\[`,
		"]", `\]`,
	)
	return r.Replace(s)
}
