package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/vocdoni/nft-token-minter/log"
	"github.com/vocdoni/nft-token-minter/web3"
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.Output, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.Dump != "" {
		if err := writeDescriptor(os.Stdout, dumpTargets[cfg.Dump], cfg.Format); err != nil {
			log.Fatalf("failed to dump interface descriptor: %v", err)
		}
		return
	}

	contracts, err := web3.New(cfg.Web3.Network, addressOverrides(cfg))
	if err != nil {
		log.Fatalf("failed to load minter contracts: %v", err)
	}
	if err := writeCatalog(os.Stdout, contracts, cfg.Format); err != nil {
		log.Fatalf("failed to write catalog: %v", err)
	}
}
