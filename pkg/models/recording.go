package models

import (
	"context"
	"errors"

	"github.com/meetsync/meetsync-server/pkg/config"
	zoomservice "github.com/meetsync/meetsync-server/pkg/services/zoom"
	"github.com/sirupsen/logrus"
)

type RecordingModel struct {
	app    *config.AppConfig
	zoom   *zoomservice.ZoomService
	logger *logrus.Entry
}

func NewRecordingModel(app *config.AppConfig, zoom *zoomservice.ZoomService, logger *logrus.Logger) *RecordingModel {
	return &RecordingModel{
		app:    app,
		zoom:   zoom,
		logger: logger.WithField("model", "recording"),
	}
}

// GetRecordings fetches the cloud recordings of a meeting. A nil result
// without error means the provider has no recordings for it yet.
func (m *RecordingModel) GetRecordings(ctx context.Context, meetingId string) (*zoomservice.Recording, error) {
	recording, err := m.zoom.GetRecordings(ctx, meetingId)
	if err != nil {
		m.logger.WithError(err).Errorln("error fetching meeting recordings")
		return nil, errors.New("failed to fetch meeting recordings")
	}
	return recording, nil
}
