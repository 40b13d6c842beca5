package factory

import (
	"fmt"
	"time"

	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/meetsync/meetsync-server/pkg/dbmodels"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func NewDatabaseConnection(appCnf *config.AppConfig) error {
	info := appCnf.DatabaseInfo
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC", info.Username, info.Password, info.Host, info.Port, info.DBName)

	mysqlCnf := mysql.Config{
		DSN: dsn,
	}

	cnf := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: info.Prefix,
		},
	}

	if !appCnf.Client.Debug {
		cnf.Logger = logger.New(
			config.GetLogger(),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				ParameterizedQueries:      false,
				Colorful:                  false,
			},
		)
	} else {
		cnf.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.New(mysqlCnf), cnf)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&dbmodels.Transcription{}); err != nil {
		return err
	}

	appCnf.ORM = db
	return nil
}
