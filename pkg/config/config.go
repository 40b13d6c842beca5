package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppConfig struct {
	RDS    *redis.Client
	ORM    *gorm.DB
	Logger *logrus.Logger

	RootWorkingDir string

	Client             ClientInfo             `yaml:"client"`
	LogSettings        LogSettings            `yaml:"log_settings"`
	ZoomInfo           ZoomInfo               `yaml:"zoom_info"`
	OpenAIInfo         OpenAIInfo             `yaml:"openai_info"`
	TranscriptionStore TranscriptionStoreInfo `yaml:"transcription_store"`
	RedisInfo          RedisInfo              `yaml:"redis_info"`
	DatabaseInfo       DatabaseInfo           `yaml:"database_info"`
}

type ClientInfo struct {
	Port           int            `yaml:"port"`
	Debug          bool           `yaml:"debug"`
	Path           string         `yaml:"path"`
	ProxyHeader    string         `yaml:"proxy_header"`
	PrometheusConf PrometheusConf `yaml:"prometheus"`
}

type PrometheusConf struct {
	Enable      bool   `yaml:"enable"`
	MetricsPath string `yaml:"metrics_path"`
}

type LogSettings struct {
	LogFile    string  `yaml:"log_file"`
	MaxSize    int     `yaml:"max_size"`
	MaxBackups int     `yaml:"max_backups"`
	MaxAge     int     `yaml:"max_age"`
	LogLevel   *string `yaml:"log_level"`
}

// ZoomInfo holds credential material for the conferencing provider.
// ApiKey/ApiSecret sign server-to-server REST tokens, SdkKey/SdkSecret
// sign client SDK session-join tokens.
type ZoomInfo struct {
	ApiBaseUrl       string         `yaml:"api_base_url"`
	ApiKey           string         `yaml:"api_key"`
	ApiSecret        string         `yaml:"api_secret"`
	SdkKey           string         `yaml:"sdk_key"`
	SdkSecret        string         `yaml:"sdk_secret"`
	ApiTokenValidity *time.Duration `yaml:"api_token_validity"`
	SdkTokenValidity *time.Duration `yaml:"sdk_token_validity"`
}

type OpenAIInfo struct {
	ApiKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	ChatModel    string `yaml:"chat_model"`
	WhisperModel string `yaml:"whisper_model"`
	// ScratchDir is where downloaded recording audio is kept while it
	// is being submitted for transcription.
	ScratchDir string `yaml:"scratch_dir"`
}

type TranscriptionStoreInfo struct {
	// Type selects the backing store: memory (default), redis or database.
	Type string `yaml:"type"`
}

type RedisInfo struct {
	Host              string   `yaml:"host"`
	Username          string   `yaml:"username"`
	Password          string   `yaml:"password"`
	DBName            int      `yaml:"db"`
	UseTLS            bool     `yaml:"use_tls"`
	MasterName        string   `yaml:"master_name"`
	SentinelUsername  string   `yaml:"sentinel_username"`
	SentinelPassword  string   `yaml:"sentinel_password"`
	SentinelAddresses []string `yaml:"sentinel_addresses"`
}

type DatabaseInfo struct {
	Host     string `yaml:"host"`
	Port     int32  `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DBName   string `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

var appCnf *AppConfig

// New applies defaults to the parsed config and sets it for global usage.
func New(a *AppConfig) (*AppConfig, error) {
	if a.Client.Port == 0 {
		a.Client.Port = 8080
	}

	if a.ZoomInfo.ApiBaseUrl == "" {
		a.ZoomInfo.ApiBaseUrl = "https://api.zoom.us/v2"
	}
	if a.ZoomInfo.ApiTokenValidity == nil || *a.ZoomInfo.ApiTokenValidity <= 0 {
		validity := time.Hour
		a.ZoomInfo.ApiTokenValidity = &validity
	}
	if a.ZoomInfo.SdkTokenValidity == nil || *a.ZoomInfo.SdkTokenValidity <= 0 {
		validity := time.Hour * 2
		a.ZoomInfo.SdkTokenValidity = &validity
	}

	if a.OpenAIInfo.Endpoint == "" {
		a.OpenAIInfo.Endpoint = "https://api.openai.com"
	}
	if a.OpenAIInfo.ChatModel == "" {
		a.OpenAIInfo.ChatModel = "gpt-4"
	}
	if a.OpenAIInfo.WhisperModel == "" {
		a.OpenAIInfo.WhisperModel = "whisper-1"
	}
	if a.OpenAIInfo.ScratchDir == "" {
		a.OpenAIInfo.ScratchDir = os.TempDir()
	}
	if strings.HasPrefix(a.OpenAIInfo.ScratchDir, "./") {
		a.OpenAIInfo.ScratchDir = filepath.Join(a.RootWorkingDir, a.OpenAIInfo.ScratchDir)
	}
	if err := os.MkdirAll(a.OpenAIInfo.ScratchDir, 0755); err != nil {
		return nil, err
	}

	if a.TranscriptionStore.Type == "" {
		a.TranscriptionStore.Type = TranscriptionStoreMemory
	}

	// credential material may come from the environment instead of yaml
	readCredentialsFromEnv(a)

	appCnf = a
	return a, nil
}

func GetConfig() *AppConfig {
	return appCnf
}

func GetLogger() *logrus.Logger {
	if appCnf != nil && appCnf.Logger != nil {
		return appCnf.Logger
	}
	return logrus.StandardLogger()
}

func readCredentialsFromEnv(a *AppConfig) {
	if v := os.Getenv("ZOOM_API_KEY"); v != "" {
		a.ZoomInfo.ApiKey = v
	}
	if v := os.Getenv("ZOOM_API_SECRET"); v != "" {
		a.ZoomInfo.ApiSecret = v
	}
	if v := os.Getenv("ZOOM_SDK_KEY"); v != "" {
		a.ZoomInfo.SdkKey = v
	}
	if v := os.Getenv("ZOOM_SDK_SECRET"); v != "" {
		a.ZoomInfo.SdkSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		a.OpenAIInfo.ApiKey = v
	}
}
