package openaiservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/grab/v3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TranscribeResult is the whisper verbose-json response with
// segment-level timestamps.
type TranscribeResult struct {
	Task     string            `json:"task"`
	Language string            `json:"language"`
	Duration float64           `json:"duration"`
	Text     string            `json:"text"`
	Segments []*WhisperSegment `json:"segments"`
}

type WhisperSegment struct {
	ID               int     `json:"id"`
	Seek             float64 `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int64 `json:"tokens"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

// DownloadAudio fetches the recording audio into the scratch directory
// and returns the local file path. The caller owns the file's cleanup.
// Each download gets a unique name so concurrent runs against the same
// recording URL never collide.
func (s *OpenAIService) DownloadAudio(ctx context.Context, audioUrl string) (string, error) {
	// keep the source extension, whisper validates it on upload
	var ext string
	if u, err := url.Parse(audioUrl); err == nil {
		ext = filepath.Ext(u.Path)
	}

	dst := filepath.Join(s.scratchDir, uuid.NewString()+ext)
	req, err := grab.NewRequest(dst, audioUrl)
	if err != nil {
		return "", fmt.Errorf("failed to download audio file: %w", err)
	}
	req = req.WithContext(ctx)

	resp := grab.DefaultClient.Do(req)
	if err := resp.Err(); err != nil {
		return "", fmt.Errorf("failed to download audio file: %w", err)
	}

	return resp.Filename, nil
}

// TranscribeFile submits a local audio file for verbose-json
// transcription with segment timestamps.
func (s *OpenAIService) TranscribeFile(ctx context.Context, filePath string) (*TranscribeResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(filePath); err == nil {
		contentType = mt.String()
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filePath)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, f); err != nil {
		return nil, err
	}

	_ = writer.WriteField("model", s.whisperModel)
	_ = writer.WriteField("response_format", "verbose_json")
	_ = writer.WriteField("timestamp_granularities[]", "segment")
	if err = writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiPath(s.baseUrl, "/audio/transcriptions"), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("whisper responded with status %d: %s", resp.StatusCode, string(data))
	}

	result := new(TranscribeResult)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("failed to decode whisper response: %w", err)
	}

	return result, nil
}
