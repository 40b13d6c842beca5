package dbmodels

import (
	"time"
)

// Transcription is the durable form of one transcription record. The
// segment list and action items are stored as JSON blobs, the record is
// unique per (meeting_id, recording_id) and overwritten on re-runs.
type Transcription struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	TranscriptionId string    `gorm:"column:transcription_id;size:191;not null"`
	MeetingId       string    `gorm:"column:meeting_id;size:191;not null;uniqueIndex:idx_meeting_recording,priority:1"`
	RecordingId     string    `gorm:"column:recording_id;size:191;not null;uniqueIndex:idx_meeting_recording,priority:2"`
	Text            string    `gorm:"column:text;type:longtext"`
	Segments        string    `gorm:"column:segments;type:longtext"`
	Summary         string    `gorm:"column:summary;type:text"`
	ActionItems     string    `gorm:"column:action_items;type:text"`
	Duration        float64   `gorm:"column:duration"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *Transcription) TableName() string {
	return "transcriptions"
}
