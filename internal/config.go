package internal

import (
	"fmt"
	"time"
)

// Config of the master, read from the environment.
type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,default=64"`
	SubscriberBufferSize int           `env:"SUBSCRIBER_BUFFER_SIZE,default=32"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=500ms"`
	JournalBufferSize    int           `env:"JOURNAL_BUFFER_SIZE,default=256"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	ActorDirectoryPath   string        `env:"ACTOR_DIRECTORY_PATH,required=true"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=50051"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	// HousekeepingCron releases the owners of past schedules.
	HousekeepingCron  string        `env:"HOUSEKEEPING_CRON,default=@daily"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
}

func (c Config) Validate() error {
	if c.BufferSize <= 0 || c.SubscriberBufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE and SUBSCRIBER_BUFFER_SIZE must be positive, got %d and %d",
			c.BufferSize, c.SubscriberBufferSize)
	}
	if c.JournalBufferSize <= 0 {
		return fmt.Errorf("JOURNAL_BUFFER_SIZE must be positive, got %d", c.JournalBufferSize)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("HEARTBEAT_INTERVAL must be positive, got %s", c.HeartbeatInterval)
	}
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive, got %d", c.Port)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
