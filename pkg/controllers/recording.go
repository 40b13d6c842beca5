package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/models"
	"github.com/sirupsen/logrus"
)

type RecordingController struct {
	app            *config.AppConfig
	recordingModel *models.RecordingModel
	logger         *logrus.Entry
}

func NewRecordingController(app *config.AppConfig, rm *models.RecordingModel, logger *logrus.Logger) *RecordingController {
	return &RecordingController{
		app:            app,
		recordingModel: rm,
		logger:         logger.WithField("controller", "recording"),
	}
}

// HandleGetRecordings responds with the meeting's recordings, or a
// JSON null when the provider has none yet.
func (r *RecordingController) HandleGetRecordings(c *fiber.Ctx) error {
	recording, err := r.recordingModel.GetRecordings(c.Context(), c.Params("id"))
	if err != nil {
		r.logger.WithError(err).Errorln("error fetching recordings")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToFetchRecordings)
	}

	return c.JSON(recording)
}
