package main

import "time"

type Config struct {
	JoinApproveTTL     time.Duration `env:"JOIN_APPROVE_TTL,required=true"`
	RoomAutoDeleteTTL  time.Duration `env:"ROOM_AUTO_DELETE_TTL,required=true"`
	InitialRetryDelay  time.Duration `env:"INITIAL_RETRY_DELAY,required=true"`
	MaxBackoffExponent int           `env:"MAX_BACKOFF_EXPONENT,default=10"`
	RetryBatchSize     int           `env:"RETRY_BATCH_SIZE,default=100"`
	MaxRetryAttempts   int           `env:"MAX_RETRY_ATTEMPTS,default=0"`
	RetrySweepInterval time.Duration `env:"RETRY_SWEEP_INTERVAL,required=true"`
	RoomSweepInterval  time.Duration `env:"ROOM_SWEEP_INTERVAL,required=true"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel           string        `env:"LOG_LEVEL,required=true"`
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
}
