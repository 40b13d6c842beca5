package factory

import (
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/controllers"
	"github.com/meetsync/meetsync-server/pkg/models"
	dbservice "github.com/meetsync/meetsync-server/pkg/services/db"
	memoryservice "github.com/meetsync/meetsync-server/pkg/services/memory"
	redisservice "github.com/meetsync/meetsync-server/pkg/services/redis"
	zoomservice "github.com/meetsync/meetsync-server/pkg/services/zoom"
	"github.com/sirupsen/logrus"
)

// ApplicationControllers holds all the controllers.
type ApplicationControllers struct {
	AuthTokenController     *controllers.AuthTokenController
	MeetingController       *controllers.MeetingController
	RecordingController     *controllers.RecordingController
	TranscriptionController *controllers.TranscriptionController
	HealthCheckController   *controllers.HealthCheckController
}

// Application is the root struct holding all dependencies.
type Application struct {
	Controllers *ApplicationControllers
	AppConfig   *config.AppConfig
}

func provideZoomService(app *config.AppConfig, authTokenModel *models.AuthTokenModel, logger *logrus.Logger) *zoomservice.ZoomService {
	return zoomservice.New(app, authTokenModel.GenerateAPIToken, logger)
}

// provideTranscriptionStore selects the configured backing store. The
// in-memory default matches the provider-glue behavior; redis and
// database make records survive restarts.
func provideTranscriptionStore(app *config.AppConfig, logger *logrus.Logger) models.TranscriptionStore {
	switch app.TranscriptionStore.Type {
	case config.TranscriptionStoreRedis:
		return redisservice.New(app.RDS, logger)
	case config.TranscriptionStoreDatabase:
		return dbservice.New(app.ORM, logger)
	default:
		return memoryservice.NewTranscriptionStore()
	}
}
