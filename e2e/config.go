package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	MasterAddr string `envconfig:"MASTER_ADDR"`
	// JWT_SECRET must match the master one, tokens are minted locally
	JWTSecret  string `envconfig:"JWT_SECRET"`
	ScheduleID string `envconfig:"E2E_SCHEDULE" default:"wedding-2026-06-20"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
