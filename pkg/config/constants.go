package config

const (
	TranscriptionStoreMemory   = "memory"
	TranscriptionStoreRedis    = "redis"
	TranscriptionStoreDatabase = "database"

	// DefaultMeetingListType is used when the caller doesn't specify
	// which meetings to list.
	DefaultMeetingListType = "scheduled"
)
