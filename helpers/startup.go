package helpers

import (
	"context"
	"os"

	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/factory"
	"gopkg.in/yaml.v3"
)

// PrepareServer opens the backend connections the configured
// transcription store needs. The in-memory store needs none.
func PrepareServer(appCnf *config.AppConfig) error {
	switch appCnf.TranscriptionStore.Type {
	case config.TranscriptionStoreRedis:
		return factory.NewRedisConnection(context.Background(), appCnf)
	case config.TranscriptionStoreDatabase:
		return factory.NewDatabaseConnection(appCnf)
	}
	return nil
}

func ReadYamlConfigFile(filename string) (*config.AppConfig, error) {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	appCnf := new(config.AppConfig)
	err = yaml.Unmarshal(yamlFile, appCnf)
	if err != nil {
		return nil, err
	}

	// set the root path
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	appCnf.RootWorkingDir = wd

	return appCnf, nil
}
