package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/models"
	memoryservice "github.com/meetsync/meetsync-server/pkg/services/memory"
	openaiservice "github.com/meetsync/meetsync-server/pkg/services/openai"
	zoomservice "github.com/meetsync/meetsync-server/pkg/services/zoom"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *fiber.App
	store models.TranscriptionStore
}

// newTestEnv wires the controllers against fake provider and speech
// endpoints and registers the API routes on a fresh fiber app.
func newTestEnv(t *testing.T, zoomHandler, aiHandler http.Handler) *testEnv {
	t.Helper()

	if zoomHandler == nil {
		zoomHandler = http.NotFoundHandler()
	}
	if aiHandler == nil {
		aiHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected call to speech endpoint: %s %s", r.Method, r.URL.Path)
		})
	}
	zoomSrv := httptest.NewServer(zoomHandler)
	t.Cleanup(zoomSrv.Close)
	aiSrv := httptest.NewServer(aiHandler)
	t.Cleanup(aiSrv.Close)

	apiValidity := time.Hour
	sdkValidity := 2 * time.Hour
	appConfig := &config.AppConfig{
		ZoomInfo: config.ZoomInfo{
			ApiKey:           "api-key",
			ApiSecret:        "api-secret-0123456789-0123456789",
			SdkKey:           "sdk-key",
			SdkSecret:        "sdk-secret-0123456789-0123456789",
			ApiBaseUrl:       zoomSrv.URL,
			ApiTokenValidity: &apiValidity,
			SdkTokenValidity: &sdkValidity,
		},
		OpenAIInfo: config.OpenAIInfo{
			ApiKey:       "test-key",
			Endpoint:     aiSrv.URL,
			ChatModel:    "gpt-4",
			WhisperModel: "whisper-1",
			ScratchDir:   t.TempDir(),
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authTokenModel := models.NewAuthTokenModel(appConfig)
	zoom := zoomservice.New(appConfig, authTokenModel.GenerateAPIToken, logger)
	ai := openaiservice.New(appConfig, logger)
	store := memoryservice.NewTranscriptionStore()

	meetingModel := models.NewMeetingModel(appConfig, zoom, logger)
	recordingModel := models.NewRecordingModel(appConfig, zoom, logger)
	transcriptionModel := models.NewTranscriptionModel(appConfig, ai, store, logger)

	ac := NewAuthTokenController(appConfig, authTokenModel, logger)
	mc := NewMeetingController(appConfig, meetingModel, logger)
	rc := NewRecordingController(appConfig, recordingModel, logger)
	tc := NewTranscriptionController(appConfig, transcriptionModel, logger)
	hc := NewHealthCheckController(appConfig)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Get("/healthCheck", hc.HandleHealthCheck)
	api := app.Group("/api")
	api.Post("/transcribe", tc.HandleTranscribe)
	api.Get("/transcriptions/:meetingId", tc.HandleGetTranscriptions)
	zoomGroup := api.Group("/zoom")
	zoomGroup.Get("/meetings", mc.HandleListMeetings)
	zoomGroup.Post("/meetings", mc.HandleCreateMeeting)
	zoomGroup.Get("/meetings/:id", mc.HandleGetMeeting)
	zoomGroup.Delete("/meetings/:id", mc.HandleDeleteMeeting)
	zoomGroup.Get("/recordings/:id", rc.HandleGetRecordings)
	zoomGroup.Post("/sdk-token", ac.HandleGenerateSDKToken)

	return &testEnv{
		app:   app,
		store: store,
	}
}

func (e *testEnv) request(t *testing.T, method, target, body string) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, 10000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	resp, _ := env.request(t, http.MethodGet, "/healthCheck", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleTranscribe_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing meetingId", `{"audioUrl": "https://example.com/a.mp3"}`},
		{"missing audioUrl", `{"meetingId": "m1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, nil, nil)

			resp, body := env.request(t, http.MethodPost, "/api/transcribe", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"error": "Audio URL and meeting ID are required"}`, body)
		})
	}
}

// a body that fails to decode is a generic operation failure, not a
// missing-field rejection
func TestHandleTranscribe_MalformedBody(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	resp, body := env.request(t, http.MethodPost, "/api/transcribe", `{`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Failed to transcribe audio"}`, body)
}

func TestHandleGetTranscriptions(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, env.store.Save(ctx, &models.Transcription{
		ID:          "transcription_m1_1",
		MeetingId:   "m1",
		RecordingId: "r1",
		Summary:     "first",
	}))
	require.NoError(t, env.store.Save(ctx, &models.Transcription{
		ID:          "transcription_m2_1",
		MeetingId:   "m2",
		RecordingId: "r9",
		Summary:     "other meeting",
	}))

	resp, body := env.request(t, http.MethodGet, "/api/transcriptions/m1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := make(map[string]*models.Transcription)
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "first", result["r1"].Summary)
}

func TestHandleGetTranscriptions_EmptyMeeting(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	resp, body := env.request(t, http.MethodGet, "/api/transcriptions/unknown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)
}

func TestHandleGenerateSDKToken(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	resp, body := env.request(t, http.MethodPost, "/api/zoom/sdk-token",
		`{"sessionName": "standup", "userIdentity": "alice"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.NotEmpty(t, result["token"])
}

func TestHandleGenerateSDKToken_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"sessionName": "standup"}`,
		`{"userIdentity": "alice"}`,
	} {
		env := newTestEnv(t, nil, nil)

		resp, respBody := env.request(t, http.MethodPost, "/api/zoom/sdk-token", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error": "Session name and user identity are required"}`, respBody)
	}
}

func TestHandleGenerateSDKToken_MalformedBody(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	resp, body := env.request(t, http.MethodPost, "/api/zoom/sdk-token", `{`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Failed to generate SDK token"}`, body)
}

func TestHandleGetRecordings_NoneYet(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meetings/123/recordings", r.URL.Path)
		http.Error(w, `{"code": 3301, "message": "no recording"}`, http.StatusNotFound)
	}), nil)

	resp, body := env.request(t, http.MethodGet, "/api/zoom/recordings/123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", body)
}

func TestHandleGetRecordings(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 123, "uuid": "abc", "recording_files": [{"id": "f1"}]}`))
	}), nil)

	resp, body := env.request(t, http.MethodGet, "/api/zoom/recordings/123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result zoomservice.Recording
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Len(t, result.RecordingFiles, 1)
	assert.Equal(t, "f1", result.RecordingFiles[0].ID)
}

func TestHandleCreateMeeting(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/me/meetings", r.URL.Path)

		payload := make(map[string]interface{})
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Weekly sync", payload["topic"])
		// defaults are filled in server-side before hitting the provider
		settings, ok := payload["settings"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "cloud", settings["auto_recording"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 555, "topic": "Weekly sync", "join_url": "https://example.com/j/555"}`))
	}), nil)

	resp, body := env.request(t, http.MethodPost, "/api/zoom/meetings", `{"topic": "Weekly sync"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result zoomservice.Meeting
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.EqualValues(t, 555, result.ID)
	assert.Equal(t, "https://example.com/j/555", result.JoinURL)
}

func TestHandleDeleteMeeting(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/meetings/555", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	resp, body := env.request(t, http.MethodDelete, "/api/zoom/meetings/555", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success": true}`, body)
}

func TestHandleListMeetings_ProviderFailure(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Invalid access token"}`, http.StatusUnauthorized)
	}), nil)

	resp, body := env.request(t, http.MethodGet, "/api/zoom/meetings", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Failed to fetch meetings"}`, body)
}
