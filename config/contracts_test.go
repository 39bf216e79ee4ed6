package config_test

import (
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/nft-token-minter/config"
)

// addressLen is "0x" followed by the hex encoding of 20 bytes.
const addressLen = 2 + 2*20

func TestAddressLiterals(t *testing.T) {
	c := qt.New(t)

	for name, addr := range map[string]string{
		"nft minter":   config.NFTMinterSepoliaAddress,
		"token minter": config.TokenMinterSepoliaAddress,
	} {
		c.Run(name, func(c *qt.C) {
			c.Assert(addr, qt.HasLen, addressLen)
			c.Assert(strings.HasPrefix(addr, "0x"), qt.IsTrue)
			raw, err := hex.DecodeString(addr[2:])
			c.Assert(err, qt.IsNil)
			c.Assert(raw, qt.HasLen, 20)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)

	c.Assert(config.DefaultConfig, qt.HasLen, len(config.AvailableNetworks))
	for _, network := range config.AvailableNetworks {
		_, ok := config.DefaultConfig[network]
		c.Assert(ok, qt.IsTrue, qt.Commentf("network %s", network))
		_, ok = config.ChainIDs[network]
		c.Assert(ok, qt.IsTrue, qt.Commentf("network %s", network))
	}

	sep := config.DefaultConfig["sep"]
	c.Assert(sep.NFTMinterSmartContract, qt.Equals, config.NFTMinterSepoliaAddress)
	c.Assert(sep.TokenMinterSmartContract, qt.Equals, config.TokenMinterSepoliaAddress)
	c.Assert(config.ChainIDs["sep"], qt.Equals, uint64(11155111))
	c.Assert(slices.Contains(config.AvailableNetworks, "sep"), qt.IsTrue)
}

func TestABIsAreJSONArrays(t *testing.T) {
	c := qt.New(t)

	for name, descriptor := range map[string]string{
		"nft minter":   config.NFTMinterABI,
		"token minter": config.TokenMinterABI,
	} {
		c.Run(name, func(c *qt.C) {
			var entries []map[string]any
			c.Assert(json.Unmarshal([]byte(descriptor), &entries), qt.IsNil)
			c.Assert(entries, qt.Not(qt.HasLen), 0)
			c.Assert(entries[0]["type"], qt.Equals, "constructor")
		})
	}
}
