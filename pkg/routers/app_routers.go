package routers

import (
	"io"
	"runtime"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	rr "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/factory"
	"github.com/meetsync/meetsync-server/version"
)

// router holds the dependencies for setting up routes, so route
// registration can be broken into smaller methods.
type router struct {
	app  *fiber.App
	ctrl *factory.ApplicationControllers
}

func New(appConfig *config.AppConfig, ctrl *factory.ApplicationControllers) *fiber.App {
	cnf := fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		AppName:     "meetsync version: " + version.Version + " runtime: " + runtime.Version(),
	}

	if appConfig.Client.Path != "" {
		templateEngine := html.New(appConfig.Client.Path, ".html")
		if appConfig.Client.Debug {
			templateEngine.Reload(true)
			templateEngine.Debug(true)
		}
		cnf.Views = templateEngine
	}

	if appConfig.Client.ProxyHeader != "" {
		cnf.ProxyHeader = appConfig.Client.ProxyHeader
	}

	app := fiber.New(cnf)

	app.Use(logger.New(logger.Config{
		Done: func(c *fiber.Ctx, logString []byte) {
			appConfig.Logger.Debugln(string(logString))
		},
		Format: "${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}",
		Output: io.Discard,
	}))

	if appConfig.Client.PrometheusConf.Enable {
		prometheus := fiberprometheus.New("meetsync")
		prometheus.RegisterAt(app, appConfig.Client.PrometheusConf.MetricsPath)
		app.Use(prometheus.Middleware)
	}

	app.Use(rr.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "POST,GET,DELETE,OPTIONS",
	}))

	if appConfig.Client.Path != "" {
		app.Static("/assets", appConfig.Client.Path+"/assets")
	}

	r := &router{
		app:  app,
		ctrl: ctrl,
	}

	r.registerBaseRoutes(appConfig)
	r.registerAPIRoutes()

	// This MUST be the last middleware to be registered.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("not found")
	})

	return app
}

func (r *router) registerBaseRoutes(appConfig *config.AppConfig) {
	if appConfig.Client.Path != "" {
		r.app.Get("/", func(c *fiber.Ctx) error {
			return c.Render("index", nil)
		})
	}
	r.app.Get("/healthCheck", r.ctrl.HealthCheckController.HandleHealthCheck)
}

func (r *router) registerAPIRoutes() {
	api := r.app.Group("/api")
	api.Post("/transcribe", r.ctrl.TranscriptionController.HandleTranscribe)
	api.Get("/transcriptions/:meetingId", r.ctrl.TranscriptionController.HandleGetTranscriptions)

	zoom := api.Group("/zoom")
	zoom.Get("/meetings", r.ctrl.MeetingController.HandleListMeetings)
	zoom.Post("/meetings", r.ctrl.MeetingController.HandleCreateMeeting)
	zoom.Get("/meetings/:id", r.ctrl.MeetingController.HandleGetMeeting)
	zoom.Delete("/meetings/:id", r.ctrl.MeetingController.HandleDeleteMeeting)
	zoom.Get("/recordings/:id", r.ctrl.RecordingController.HandleGetRecordings)
	zoom.Post("/sdk-token", r.ctrl.AuthTokenController.HandleGenerateSDKToken)
}
