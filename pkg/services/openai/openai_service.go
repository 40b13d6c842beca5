package openaiservice

import (
	"net/http"
	"strings"
	"time"

	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"
)

type OpenAIService struct {
	client       openai.Client
	httpClient   *http.Client
	baseUrl      string
	apiKey       string
	chatModel    string
	whisperModel string
	scratchDir   string
	logger       *logrus.Entry
}

func New(app *config.AppConfig, logger *logrus.Logger) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(
			option.WithAPIKey(app.OpenAIInfo.ApiKey),
			option.WithBaseURL(apiPath(app.OpenAIInfo.Endpoint, "")),
		),
		// whisper verbose-json transcription goes over plain HTTP, the
		// SDK surface doesn't expose the segment-level fields we need
		httpClient:   &http.Client{Timeout: 5 * time.Minute},
		baseUrl:      app.OpenAIInfo.Endpoint,
		apiKey:       app.OpenAIInfo.ApiKey,
		chatModel:    app.OpenAIInfo.ChatModel,
		whisperModel: app.OpenAIInfo.WhisperModel,
		scratchDir:   app.OpenAIInfo.ScratchDir,
		logger:       logger.WithField("service", "openai"),
	}
}

// apiPath builds a versioned endpoint path, tolerating configured base
// URLs both with and without the /v1 suffix.
func apiPath(baseUrl, path string) string {
	if strings.HasSuffix(baseUrl, "/v1") {
		return baseUrl + path
	}
	return baseUrl + "/v1" + path
}
