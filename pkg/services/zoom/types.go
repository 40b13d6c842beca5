package zoomservice

// Meeting mirrors the provider's meeting resource as defined at
// https://marketplace.zoom.us/docs/api-reference/zoom-api/meetings/meeting.
// The shape is passed through to callers verbatim, it isn't owned or
// validated here beyond decoding.
type Meeting struct {
	UUID      string           `json:"uuid,omitempty"`
	ID        int64            `json:"id"`
	HostID    string           `json:"host_id,omitempty"`
	Topic     string           `json:"topic"`
	Type      int              `json:"type,omitempty"`
	Status    string           `json:"status,omitempty"`
	StartTime string           `json:"start_time,omitempty"`
	Duration  int              `json:"duration,omitempty"`
	Timezone  string           `json:"timezone,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
	Agenda    string           `json:"agenda,omitempty"`
	JoinURL   string           `json:"join_url,omitempty"`
	StartURL  string           `json:"start_url,omitempty"`
	Password  string           `json:"password,omitempty"`
	Settings  *MeetingSettings `json:"settings,omitempty"`
}

type MeetingSettings struct {
	HostVideo              bool   `json:"host_video"`
	ParticipantVideo       bool   `json:"participant_video"`
	JoinBeforeHost         bool   `json:"join_before_host"`
	MuteUponEntry          bool   `json:"mute_upon_entry"`
	Watermark              bool   `json:"watermark"`
	UsePMI                 bool   `json:"use_pmi"`
	ApprovalType           int    `json:"approval_type"`
	Audio                  string `json:"audio,omitempty"`
	AutoRecording          string `json:"auto_recording,omitempty"`
	CloudRecordingElection bool   `json:"cloud_recording_election"`
}

type meetingListResult struct {
	PageCount    int        `json:"page_count"`
	PageNumber   int        `json:"page_number"`
	PageSize     int        `json:"page_size"`
	TotalRecords int        `json:"total_records"`
	Meetings     []*Meeting `json:"meetings"`
}

// Recording is the provider's cloud-recording resource for one meeting,
// read-only from this application's perspective.
type Recording struct {
	UUID           string           `json:"uuid,omitempty"`
	ID             int64            `json:"id"`
	HostID         string           `json:"host_id,omitempty"`
	Topic          string           `json:"topic,omitempty"`
	StartTime      string           `json:"start_time,omitempty"`
	Duration       int              `json:"duration,omitempty"`
	TotalSize      int64            `json:"total_size,omitempty"`
	RecordingCount int              `json:"recording_count,omitempty"`
	RecordingFiles []*RecordingFile `json:"recording_files"`
}

// RecordingFile is one media artifact (video, audio-only or shared-screen
// track) of a completed meeting.
type RecordingFile struct {
	ID             string `json:"id"`
	MeetingID      string `json:"meeting_id"`
	RecordingStart string `json:"recording_start,omitempty"`
	RecordingEnd   string `json:"recording_end,omitempty"`
	RecordingType  string `json:"recording_type,omitempty"`
	FileType       string `json:"file_type,omitempty"`
	FileSize       int64  `json:"file_size,omitempty"`
	PlayURL        string `json:"play_url,omitempty"`
	DownloadURL    string `json:"download_url,omitempty"`
	Status         string `json:"status,omitempty"`
}
