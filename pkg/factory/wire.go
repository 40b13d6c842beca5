//go:build wireinject
// +build wireinject

package factory

import (
	"github.com/google/wire"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/controllers"
	"github.com/meetsync/meetsync-server/pkg/models"
	openaiservice "github.com/meetsync/meetsync-server/pkg/services/openai"
)

var serviceSet = wire.NewSet(
	provideZoomService,
	openaiservice.New,
	provideTranscriptionStore,
)

var modelSet = wire.NewSet(
	models.NewAuthTokenModel,
	models.NewMeetingModel,
	models.NewRecordingModel,
	models.NewTranscriptionModel,
)

var controllerSet = wire.NewSet(
	controllers.NewAuthTokenController,
	controllers.NewMeetingController,
	controllers.NewRecordingController,
	controllers.NewTranscriptionController,
	controllers.NewHealthCheckController,
)

// NewApplication is the injector function that wire will implement.
func NewApplication(appConfig *config.AppConfig) (*Application, error) {
	wire.Build(
		serviceSet,
		modelSet,
		controllerSet,
		wire.FieldsOf(new(*config.AppConfig), "Logger"),

		wire.Struct(new(ApplicationControllers), "*"),
		wire.Struct(new(Application), "*"),
	)
	return nil, nil // This return value is ignored.
}
