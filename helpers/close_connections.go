package helpers

import (
	"github.com/meetsync/meetsync-server/pkg/config"
	"github.com/sirupsen/logrus"
)

func HandleCloseConnections() {
	appCnf := config.GetConfig()
	if appCnf == nil {
		return
	}

	if appCnf.ORM != nil {
		if db, err := appCnf.ORM.DB(); err == nil {
			_ = db.Close()
		}
	}

	if appCnf.RDS != nil {
		_ = appCnf.RDS.Close()
	}

	logrus.Exit(0)
}
