package models

import (
	"context"
	"errors"

	"github.com/meetsync/meetsync-server/pkg/config"
	zoomservice "github.com/meetsync/meetsync-server/pkg/services/zoom"
	"github.com/sirupsen/logrus"
)

type MeetingModel struct {
	app    *config.AppConfig
	zoom   *zoomservice.ZoomService
	logger *logrus.Entry
}

func NewMeetingModel(app *config.AppConfig, zoom *zoomservice.ZoomService, logger *logrus.Logger) *MeetingModel {
	return &MeetingModel{
		app:    app,
		zoom:   zoom,
		logger: logger.WithField("model", "meeting"),
	}
}

// Any transport or non-2xx failure is logged with its cause and
// re-raised as one generic error per operation, without retry and
// without distinguishing auth failure, rate limit or not-found.

func (m *MeetingModel) CreateMeeting(ctx context.Context, meetingData map[string]interface{}) (*zoomservice.Meeting, error) {
	meeting, err := m.zoom.CreateMeeting(ctx, meetingData)
	if err != nil {
		m.logger.WithError(err).Errorln("error creating zoom meeting")
		return nil, errors.New("failed to create zoom meeting")
	}
	return meeting, nil
}

func (m *MeetingModel) GetMeeting(ctx context.Context, meetingId string) (*zoomservice.Meeting, error) {
	meeting, err := m.zoom.GetMeeting(ctx, meetingId)
	if err != nil {
		m.logger.WithError(err).Errorln("error fetching zoom meeting")
		return nil, errors.New("failed to fetch zoom meeting")
	}
	return meeting, nil
}

func (m *MeetingModel) ListMeetings(ctx context.Context, listType string) ([]*zoomservice.Meeting, error) {
	if listType == "" {
		listType = config.DefaultMeetingListType
	}

	meetings, err := m.zoom.ListMeetings(ctx, listType)
	if err != nil {
		m.logger.WithError(err).Errorln("error listing zoom meetings")
		return nil, errors.New("failed to list zoom meetings")
	}
	return meetings, nil
}

func (m *MeetingModel) DeleteMeeting(ctx context.Context, meetingId string) error {
	if err := m.zoom.DeleteMeeting(ctx, meetingId); err != nil {
		m.logger.WithError(err).Errorln("error deleting zoom meeting")
		return errors.New("failed to delete zoom meeting")
	}
	return nil
}
