// Package config defines environment configuration structs and loaders.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	WalletEnvConfig
	Environment string `env:"ENVIRONMENT, default=prod"`
}

// WalletEnvConfig configures seed naming and derivation for the wallet
// entrypoint. The seed phrase itself never travels through the environment.
type WalletEnvConfig struct {
	SeedName       string `env:"KAGI_SEED_NAME, default=kagi-dev"`
	DerivationPath string `env:"KAGI_DERIVATION_PATH, default=//kagi"`
	PhraseWords    int    `env:"KAGI_PHRASE_WORDS, default=24"`
}

func LoadConfig(ctx context.Context) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
