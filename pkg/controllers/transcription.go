package controllers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/models"
	"github.com/sirupsen/logrus"
)

type TranscriptionController struct {
	app                *config.AppConfig
	transcriptionModel *models.TranscriptionModel
	logger             *logrus.Entry
}

func NewTranscriptionController(app *config.AppConfig, tm *models.TranscriptionModel, logger *logrus.Logger) *TranscriptionController {
	return &TranscriptionController{
		app:                app,
		transcriptionModel: tm,
		logger:             logger.WithField("controller", "transcription"),
	}
}

type transcribeReq struct {
	AudioUrl    string `json:"audioUrl"`
	MeetingId   string `json:"meetingId"`
	RecordingId string `json:"recordingId"`
}

func (t *TranscriptionController) HandleTranscribe(c *fiber.Ctx) error {
	req := new(transcribeReq)
	if err := json.Unmarshal(c.Body(), req); err != nil {
		t.logger.WithError(err).Errorln("error decoding transcribe request")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToTranscribeAudio)
	}

	if req.AudioUrl == "" || req.MeetingId == "" {
		return sendError(c, fiber.StatusBadRequest, config.ErrAudioUrlAndMeetingIdRequired)
	}

	transcription, err := t.transcriptionModel.Run(c.Context(), req.AudioUrl, req.MeetingId, req.RecordingId)
	if err != nil {
		t.logger.WithError(err).Errorln("error transcribing audio")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToTranscribeAudio)
	}

	return c.JSON(transcription)
}

func (t *TranscriptionController) HandleGetTranscriptions(c *fiber.Ctx) error {
	meetingId := c.Params("meetingId")

	transcriptions, err := t.transcriptionModel.GetByMeetingId(c.Context(), meetingId)
	if err != nil {
		t.logger.WithError(err).Errorln("error fetching transcriptions")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToFetchTranscriptions)
	}

	return c.JSON(transcriptions)
}
