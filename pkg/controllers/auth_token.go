package controllers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/models"
	"github.com/sirupsen/logrus"
)

type AuthTokenController struct {
	app            *config.AppConfig
	authTokenModel *models.AuthTokenModel
	logger         *logrus.Entry
}

func NewAuthTokenController(app *config.AppConfig, am *models.AuthTokenModel, logger *logrus.Logger) *AuthTokenController {
	return &AuthTokenController{
		app:            app,
		authTokenModel: am,
		logger:         logger.WithField("controller", "authToken"),
	}
}

type sdkTokenReq struct {
	SessionName  string `json:"sessionName"`
	UserIdentity string `json:"userIdentity"`
	RoleType     int    `json:"roleType"`
}

func (a *AuthTokenController) HandleGenerateSDKToken(c *fiber.Ctx) error {
	req := new(sdkTokenReq)
	if err := json.Unmarshal(c.Body(), req); err != nil {
		a.logger.WithError(err).Errorln("error decoding SDK token request")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToGenerateSDKToken)
	}

	if req.SessionName == "" || req.UserIdentity == "" {
		return sendError(c, fiber.StatusBadRequest, config.ErrSessionNameAndUserIdentityRequired)
	}

	token, err := a.authTokenModel.GenerateSDKToken(req.SessionName, req.UserIdentity, req.RoleType)
	if err != nil {
		a.logger.WithError(err).Errorln("error generating SDK token")
		return sendError(c, fiber.StatusInternalServerError, config.ErrFailedToGenerateSDKToken)
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
