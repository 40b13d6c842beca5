package zoomservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/sirupsen/logrus"
)

// TokenFunc supplies a fresh bearer token for each provider API call.
type TokenFunc func() (string, error)

type ZoomService struct {
	baseUrl string
	token   TokenFunc
	client  *http.Client
	logger  *logrus.Entry
}

func New(app *config.AppConfig, token TokenFunc, logger *logrus.Logger) *ZoomService {
	return &ZoomService{
		baseUrl: app.ZoomInfo.ApiBaseUrl,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.WithField("service", "zoom"),
	}
}

// apiError carries the provider's status code so that callers can
// discriminate the one recoverable case (recording lookup 404). Every
// other use flattens it into a generic operation failure.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("zoom api responded with status %d: %s", e.StatusCode, e.Body)
}

func (s *ZoomService) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseUrl+path, reqBody)
	if err != nil {
		return err
	}

	token, err := s.token()
	if err != nil {
		return fmt.Errorf("failed to generate api token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return &apiError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode zoom response: %w", err)
		}
	}

	return nil
}
