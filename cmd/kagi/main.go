package main

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/kagi/internal/config"
	"github.com/tensorplex-labs/kagi/internal/utils/logger"
	"github.com/tensorplex-labs/kagi/pkg/crypto"
	"github.com/tensorplex-labs/kagi/pkg/keyring"
	"github.com/tensorplex-labs/kagi/pkg/networks"
)

// Derives one identity per built-in network from a freshly generated seed
// phrase and prints the store records. The phrase itself is never printed.
func main() {
	logger.Init()
	log.Info().Msg("Starting kagi key derivation demo...")

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	phrase, err := keyring.NewRandomPhrase(cfg.PhraseWords)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate seed phrase")
	}
	log.Info().Int("words", cfg.PhraseWords).Msg("generated seed phrase")

	root, err := keyring.CreateAddress(nil, cfg.SeedName, phrase, "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create root identity")
	}
	bare, err := crypto.BareAddressString(root.Key.MultiSigner(), root.Details.Encryption)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to format root identity")
	}
	log.Info().
		Str("address", bare).
		Str("address_key", root.Key.String()).
		Msg("root identity")

	for _, specs := range networks.Defaults() {
		created, err := keyring.CreateAddress(&specs, cfg.SeedName, phrase, cfg.DerivationPath)
		if err != nil {
			log.Fatal().Err(err).Str("network", specs.Title).Msg("failed to create address")
		}

		address, err := crypto.AddressString(created.Key.MultiSigner(), specs.Base58Prefix, specs.Encryption)
		if err != nil {
			log.Fatal().Err(err).Str("network", specs.Title).Msg("failed to format address")
		}

		details, err := sonic.Marshal(created.Details)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to marshal address details")
		}
		record, err := sonic.Marshal(created.Record)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to marshal identity record")
		}

		log.Info().
			Str("network", specs.Title).
			Str("address", address).
			Str("address_key", created.Key.String()).
			Str("network_specs_key", specs.Key().String()).
			RawJSON("details", details).
			RawJSON("record", record).
			Msg("derived address")
	}
}
