// Package config holds the deployment catalog of the minter contracts: the
// addresses where they live on each supported network and their interface
// descriptors.
package config

const (
	// NFTMinterSepoliaAddress is the NFT minter contract deployed on Sepolia.
	NFTMinterSepoliaAddress = "0x338e3e152689E5Ab9cc66538D7A2F3785C30ee25"
	// TokenMinterSepoliaAddress is the token minter contract deployed on Sepolia.
	TokenMinterSepoliaAddress = "0x50e2744ec42865918f9f3657a39d4421639d0177"
)

// MinterWeb3Config contains the smart contract addresses of one network.
type MinterWeb3Config struct {
	NFTMinterSmartContract   string
	TokenMinterSmartContract string
}

// DefaultConfig contains the default smart contract addresses by network.
var DefaultConfig = map[string]MinterWeb3Config{
	"sep": {
		NFTMinterSmartContract:   NFTMinterSepoliaAddress,
		TokenMinterSmartContract: TokenMinterSepoliaAddress,
	},
}

// ChainIDs maps every network short name to its EIP-155 chain id.
var ChainIDs = map[string]uint64{
	"sep": 11155111,
}

// AvailableNetworks contains the list of networks where the minters are deployed.
var AvailableNetworks = []string{
	"sep",
}
