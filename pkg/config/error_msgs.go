package config

// Fixed messages returned to HTTP callers. The underlying causes are
// logged server side and never exposed.
const (
	ErrAudioUrlAndMeetingIdRequired       = "Audio URL and meeting ID are required"
	ErrSessionNameAndUserIdentityRequired = "Session name and user identity are required"
	ErrFailedToTranscribeAudio            = "Failed to transcribe audio"
	ErrFailedToFetchTranscriptions        = "Failed to fetch transcriptions"
	ErrFailedToCreateMeeting              = "Failed to create meeting"
	ErrFailedToFetchMeeting               = "Failed to fetch meeting"
	ErrFailedToFetchMeetings              = "Failed to fetch meetings"
	ErrFailedToDeleteMeeting              = "Failed to delete meeting"
	ErrFailedToFetchRecordings            = "Failed to fetch recordings"
	ErrFailedToGenerateSDKToken           = "Failed to generate SDK token"
)
