package models

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/meetsync/meetsync-server/pkg/config"
	openaiservice "github.com/meetsync/meetsync-server/pkg/services/openai"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Transcription is the merged output of speech-to-text plus the derived
// summary and action items for one recording.
type Transcription struct {
	ID          string                  `json:"id"`
	MeetingId   string                  `json:"meetingId"`
	RecordingId string                  `json:"recordingId"`
	Text        string                  `json:"text"`
	Segments    []*TranscriptionSegment `json:"segments"`
	Summary     string                  `json:"summary"`
	ActionItems []string                `json:"actionItems"`
	CreatedAt   string                  `json:"createdAt"`
	Duration    float64                 `json:"duration"`
}

type TranscriptionSegment struct {
	ID               int     `json:"id"`
	Seek             float64 `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int64 `json:"tokens"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

// TranscriptionStore is the backing store for transcription records,
// keyed by CacheKey. Concurrent writers to the same key race with
// last-write-wins semantics, there is no at-most-once guarantee per key.
type TranscriptionStore interface {
	Save(ctx context.Context, t *Transcription) error
	// GetByMeetingId returns the stored records of one meeting, keyed
	// by recording id.
	GetByMeetingId(ctx context.Context, meetingId string) (map[string]*Transcription, error)
}

// CacheKey is the composite storage key of a transcription record. A
// re-transcription of the same pair silently overwrites the prior entry.
func CacheKey(meetingId, recordingId string) string {
	return meetingId + "_" + recordingId
}

// RecordingIdFromKey strips the meeting prefix from a composite key.
// The full "{meetingId}_" prefix is removed rather than splitting on
// the first underscore, so recording ids containing underscores survive.
func RecordingIdFromKey(key, meetingId string) string {
	return strings.TrimPrefix(key, meetingId+"_")
}

type TranscriptionModel struct {
	app    *config.AppConfig
	ai     *openaiservice.OpenAIService
	store  TranscriptionStore
	logger *logrus.Entry
}

func NewTranscriptionModel(app *config.AppConfig, ai *openaiservice.OpenAIService, store TranscriptionStore, logger *logrus.Logger) *TranscriptionModel {
	return &TranscriptionModel{
		app:    app,
		ai:     ai,
		store:  store,
		logger: logger.WithField("model", "transcription"),
	}
}

// Run executes the full pipeline for one recording: download the audio,
// transcribe it with segment timestamps, then derive summary and action
// items in parallel and store the merged record.
//
// Failure policy of the two derived-content calls, by explicit choice:
// a summary failure aborts the whole run, an action-item call failure
// degrades to an empty list, and action-item output that isn't a JSON
// string array degrades to a one-element list holding the raw text.
func (m *TranscriptionModel) Run(ctx context.Context, audioUrl, meetingId, recordingId string) (*Transcription, error) {
	log := m.logger.WithFields(logrus.Fields{
		"meetingId":   meetingId,
		"recordingId": recordingId,
	})

	filePath, err := m.ai.DownloadAudio(ctx, audioUrl)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(filePath); err != nil {
			log.WithError(err).Warnln("failed to clean up downloaded audio file")
		}
	}()

	result, err := m.ai.TranscribeFile(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}

	var (
		summary     string
		actionItems []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = m.ai.SummarizeMeeting(gctx, result.Text)
		if err != nil {
			return fmt.Errorf("failed to generate meeting summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		items, err := m.ai.ExtractActionItems(gctx, result.Text)
		if err != nil {
			log.WithError(err).Errorln("action item extraction failed")
			actionItems = []string{}
			return nil
		}
		actionItems = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	segments := make([]*TranscriptionSegment, 0, len(result.Segments))
	for i, seg := range result.Segments {
		if seg == nil {
			continue
		}
		tokens := seg.Tokens
		if tokens == nil {
			tokens = []int64{}
		}
		segments = append(segments, &TranscriptionSegment{
			ID:               i,
			Seek:             seg.Seek,
			Start:            seg.Start,
			End:              seg.End,
			Text:             seg.Text,
			Tokens:           tokens,
			Temperature:      seg.Temperature,
			AvgLogprob:       seg.AvgLogprob,
			CompressionRatio: seg.CompressionRatio,
			NoSpeechProb:     seg.NoSpeechProb,
		})
	}

	transcription := &Transcription{
		ID:          fmt.Sprintf("transcription_%s_%d", meetingId, time.Now().UnixMilli()),
		MeetingId:   meetingId,
		RecordingId: recordingId,
		Text:        result.Text,
		Segments:    segments,
		Summary:     summary,
		ActionItems: actionItems,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Duration:    result.Duration,
	}

	if err := m.store.Save(ctx, transcription); err != nil {
		return nil, fmt.Errorf("failed to store transcription: %w", err)
	}

	return transcription, nil
}

// GetByMeetingId returns the stored transcriptions of one meeting,
// keyed by recording id.
func (m *TranscriptionModel) GetByMeetingId(ctx context.Context, meetingId string) (map[string]*Transcription, error) {
	return m.store.GetByMeetingId(ctx, meetingId)
}
