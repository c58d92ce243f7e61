package config

import (
	"context"
	"time"

	env "github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIEndpoint is the node REST endpoint
	// Example: ACCOUNTS_API_ENDPOINT="https://rest.stargaze-apis.com"
	APIEndpoint string `env:"ACCOUNTS_API_ENDPOINT, required"`
	// AccountPrefix is the chain's bech32 account prefix
	// Example: ACCOUNTS_PREFIX="stars"
	AccountPrefix string `env:"ACCOUNTS_PREFIX, required"`

	QueryTimeout time.Duration `env:"ACCOUNTS_QUERY_TIMEOUT, default=10s"`

	StorePath string `env:"ACCOUNTS_STORE_PATH, default=accounts-data"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
