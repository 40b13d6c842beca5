package controllers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/models"
	"github.com/sirupsen/logrus"
)

type MeetingController struct {
	app          *config.AppConfig
	meetingModel *models.MeetingModel
	logger       *logrus.Entry
}

func NewMeetingController(app *config.AppConfig, mm *models.MeetingModel, logger *logrus.Logger) *MeetingController {
	return &MeetingController{
		app:          app,
		meetingModel: mm,
		logger:       logger.WithField("controller", "meeting"),
	}
}

func (m *MeetingController) HandleListMeetings(c *fiber.Ctx) error {
	meetings, err := m.meetingModel.ListMeetings(c.Context(), config.DefaultMeetingListType)
	if err != nil {
		m.logger.WithError(err).Errorln("error fetching meetings")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToFetchMeetings)
	}

	return c.JSON(meetings)
}

func (m *MeetingController) HandleCreateMeeting(c *fiber.Ctx) error {
	meetingData := make(map[string]interface{})
	if err := json.Unmarshal(c.Body(), &meetingData); err != nil {
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToCreateMeeting)
	}

	meeting, err := m.meetingModel.CreateMeeting(c.Context(), meetingData)
	if err != nil {
		m.logger.WithError(err).Errorln("error creating meeting")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToCreateMeeting)
	}

	return c.JSON(meeting)
}

func (m *MeetingController) HandleGetMeeting(c *fiber.Ctx) error {
	meeting, err := m.meetingModel.GetMeeting(c.Context(), c.Params("id"))
	if err != nil {
		m.logger.WithError(err).Errorln("error fetching meeting")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToFetchMeeting)
	}

	return c.JSON(meeting)
}

func (m *MeetingController) HandleDeleteMeeting(c *fiber.Ctx) error {
	if err := m.meetingModel.DeleteMeeting(c.Context(), c.Params("id")); err != nil {
		m.logger.WithError(err).Errorln("error deleting meeting")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToDeleteMeeting)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
