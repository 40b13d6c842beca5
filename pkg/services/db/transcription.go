package dbservice

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/meetsync/meetsync-server/pkg/dbmodels"
	"github.com/meetsync/meetsync-server/pkg/models"
	"gorm.io/gorm/clause"
)

// Save upserts one transcription record on (meeting_id, recording_id),
// keeping the last-write-wins behavior of the other stores.
func (s *DatabaseService) Save(ctx context.Context, t *models.Transcription) error {
	segments, err := json.Marshal(t.Segments)
	if err != nil {
		return err
	}
	actionItems, err := json.Marshal(t.ActionItems)
	if err != nil {
		return err
	}

	row := &dbmodels.Transcription{
		TranscriptionId: t.ID,
		MeetingId:       t.MeetingId,
		RecordingId:     t.RecordingId,
		Text:            t.Text,
		Segments:        string(segments),
		Summary:         t.Summary,
		ActionItems:     string(actionItems),
		Duration:        t.Duration,
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meeting_id"}, {Name: "recording_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"transcription_id", "text", "segments", "summary", "action_items", "duration", "updated_at",
		}),
	}).Create(row).Error
}

func (s *DatabaseService) GetByMeetingId(ctx context.Context, meetingId string) (map[string]*models.Transcription, error) {
	var rows []dbmodels.Transcription
	err := s.db.WithContext(ctx).Where("meeting_id = ?", meetingId).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]*models.Transcription, len(rows))
	for i := range rows {
		t, err := s.toTranscription(&rows[i])
		if err != nil {
			s.logger.WithError(err).Warnf("failed to decode stored transcription %s", rows[i].TranscriptionId)
			continue
		}
		result[t.RecordingId] = t
	}

	return result, nil
}

func (s *DatabaseService) toTranscription(row *dbmodels.Transcription) (*models.Transcription, error) {
	var segments []*models.TranscriptionSegment
	if row.Segments != "" {
		if err := json.Unmarshal([]byte(row.Segments), &segments); err != nil {
			return nil, err
		}
	}

	actionItems := []string{}
	if row.ActionItems != "" {
		if err := json.Unmarshal([]byte(row.ActionItems), &actionItems); err != nil {
			return nil, err
		}
	}

	return &models.Transcription{
		ID:          row.TranscriptionId,
		MeetingId:   row.MeetingId,
		RecordingId: row.RecordingId,
		Text:        row.Text,
		Segments:    segments,
		Summary:     row.Summary,
		ActionItems: actionItems,
		CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
		Duration:    row.Duration,
	}, nil
}
