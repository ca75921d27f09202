package config

import "time"

// WorkerConfig controls the SQS polling workers.
type WorkerConfig struct {
	Concurrency  int           `mapstructure:"concurrency"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	MaxMessages  int32         `mapstructure:"max_messages"`
	WaitTime     int32         `mapstructure:"wait_time"`
}

func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		Concurrency:  getEnvIntWithDefault("WORKER_CONCURRENCY", 1),
		PollInterval: getEnvDurationWithDefault("WORKER_POLL_INTERVAL", 5*time.Second),
		MaxMessages:  int32(getEnvIntWithDefault("WORKER_MAX_MESSAGES", 10)), // SQS caps a receive at 10
		WaitTime:     int32(getEnvIntWithDefault("WORKER_WAIT_TIME_SECONDS", 20)),
	}
}
