package cmd

import (
	"github.com/gridbase/gridbase-backend/repositories/postgres"
	"github.com/gridbase/gridbase-backend/utils"
)

func pgConfigFromEnv() utils.PGConfig {
	return utils.PGConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "gridbase"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", postgres.DEFAULT_MAX_CONNECTIONS),
	}
}
