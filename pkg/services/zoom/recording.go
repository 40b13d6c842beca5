package zoomservice

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// GetRecordings fetches the cloud recordings of a meeting. A provider
// 404 means no recordings exist yet and returns nil without error;
// every other failure is reported to the caller.
func (s *ZoomService) GetRecordings(ctx context.Context, meetingId string) (*Recording, error) {
	recording := new(Recording)
	err := s.doRequest(ctx, http.MethodGet, "/meetings/"+url.PathEscape(meetingId)+"/recordings", nil, recording)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return recording, nil
}
