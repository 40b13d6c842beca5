package zoomservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultMeetingSettings returns the fixed settings applied to every
// created meeting. Caller-supplied values win per key.
func DefaultMeetingSettings() map[string]interface{} {
	return map[string]interface{}{
		"host_video":               true,
		"participant_video":        true,
		"join_before_host":         false,
		"mute_upon_entry":          true,
		"watermark":                false,
		"use_pmi":                  false,
		"approval_type":            2,
		"audio":                    "both",
		"auto_recording":           "cloud",
		"cloud_recording_election": true,
	}
}

// CreateMeeting merges caller-supplied settings over the default
// settings object and forwards the payload to the provider.
func (s *ZoomService) CreateMeeting(ctx context.Context, meetingData map[string]interface{}) (*Meeting, error) {
	settings := DefaultMeetingSettings()
	if callerSettings, ok := meetingData["settings"].(map[string]interface{}); ok {
		for k, v := range callerSettings {
			settings[k] = v
		}
	}

	payload := make(map[string]interface{}, len(meetingData)+1)
	for k, v := range meetingData {
		payload[k] = v
	}
	payload["settings"] = settings

	meeting := new(Meeting)
	err := s.doRequest(ctx, http.MethodPost, "/users/me/meetings", payload, meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (s *ZoomService) GetMeeting(ctx context.Context, meetingId string) (*Meeting, error) {
	meeting := new(Meeting)
	err := s.doRequest(ctx, http.MethodGet, "/meetings/"+url.PathEscape(meetingId), nil, meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

// ListMeetings fetches the user's meetings of the given type
// (scheduled, live or upcoming). A provider response without any
// meetings yields an empty slice.
func (s *ZoomService) ListMeetings(ctx context.Context, listType string) ([]*Meeting, error) {
	result := new(meetingListResult)
	path := fmt.Sprintf("/users/me/meetings?type=%s", url.QueryEscape(listType))
	err := s.doRequest(ctx, http.MethodGet, path, nil, result)
	if err != nil {
		return nil, err
	}

	if result.Meetings == nil {
		return []*Meeting{}, nil
	}
	return result.Meetings, nil
}

func (s *ZoomService) DeleteMeeting(ctx context.Context, meetingId string) error {
	return s.doRequest(ctx, http.MethodDelete, "/meetings/"+url.PathEscape(meetingId), nil, nil)
}
