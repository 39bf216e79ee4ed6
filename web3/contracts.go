package web3

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vocdoni/nft-token-minter/config"
	"github.com/vocdoni/nft-token-minter/log"
	"github.com/vocdoni/nft-token-minter/types"
)

const (
	// NFTMinterContract names the NFT minter in lookups and listings.
	NFTMinterContract = "NFTMinter"
	// TokenMinterContract names the token minter in lookups and listings.
	TokenMinterContract = "TokenMinter"
)

var (
	ErrUnknownNetwork   = errors.New("unknown network")
	ErrUnknownContract  = errors.New("unknown contract")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrSelectorNotFound = errors.New("selector not found")
)

// Addresses contains the addresses of the contracts deployed in the network.
type Addresses struct {
	NFTMinter   common.Address
	TokenMinter common.Address
}

// ContractABIs contains the parsed interfaces of the contracts. The field
// names are the contract names reported by lookups.
type ContractABIs struct {
	NFTMinter   *abi.ABI
	TokenMinter *abi.ABI
}

// Contracts is the catalog of the minter contracts of one network.
type Contracts struct {
	Network            string
	ChainID            uint64
	ContractsAddresses *Addresses
	ContractABIs       *ContractABIs
}

// New builds the catalog of the given network. Non-zero addresses in
// overrides replace the network defaults.
func New(network string, overrides *Addresses) (*Contracts, error) {
	chainID, ok := config.ChainIDs[network]
	if !ok {
		return nil, fmt.Errorf("%w %q, available networks: %v", ErrUnknownNetwork, network, config.AvailableNetworks)
	}
	addresses, err := AddressesForNetwork(network)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		if overrides.NFTMinter != (common.Address{}) {
			log.Warnw("overriding nft minter address", "default", addresses.NFTMinter.Hex(), "override", overrides.NFTMinter.Hex())
			addresses.NFTMinter = overrides.NFTMinter
		}
		if overrides.TokenMinter != (common.Address{}) {
			log.Warnw("overriding token minter address", "default", addresses.TokenMinter.Hex(), "override", overrides.TokenMinter.Hex())
			addresses.TokenMinter = overrides.TokenMinter
		}
	}
	abis, err := LoadContractABIs()
	if err != nil {
		return nil, err
	}

	log.Infow("minter contracts loaded",
		"network", network,
		"chainID", chainID,
		"nftMinter", addresses.NFTMinter.Hex(),
		"tokenMinter", addresses.TokenMinter.Hex(),
	)

	return &Contracts{
		Network:            network,
		ChainID:            chainID,
		ContractsAddresses: addresses,
		ContractABIs:       abis,
	}, nil
}

// Address returns the address of the named contract.
func (c *Contracts) Address(contract string) (common.Address, error) {
	switch contract {
	case NFTMinterContract:
		return c.ContractsAddresses.NFTMinter, nil
	case TokenMinterContract:
		return c.ContractsAddresses.TokenMinter, nil
	}
	return common.Address{}, fmt.Errorf("%w %q", ErrUnknownContract, contract)
}

// ParseAddress parses a contract address literal. It must be "0x" followed
// by exactly 40 hex digits. Mixed case literals must carry a valid EIP-55
// checksum, while all lower or all upper case literals are taken as is.
func ParseAddress(s string) (common.Address, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return common.Address{}, fmt.Errorf("%w %q: missing 0x prefix", ErrInvalidAddress, s)
	}
	if len(digits) != 2*common.AddressLength {
		return common.Address{}, fmt.Errorf("%w %q: %d hex digits, expected %d",
			ErrInvalidAddress, s, len(digits), 2*common.AddressLength)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w %q: not hexadecimal", ErrInvalidAddress, s)
	}
	addr := common.HexToAddress(s)
	mixedCase := digits != strings.ToLower(digits) && digits != strings.ToUpper(digits)
	if mixedCase && addr.Hex() != s {
		return common.Address{}, fmt.Errorf("%w %q: bad checksum, expected %s", ErrInvalidAddress, s, addr.Hex())
	}
	return addr, nil
}

// AddressesForNetwork returns the default addresses of the given network.
func AddressesForNetwork(network string) (*Addresses, error) {
	networkConfig, ok := config.DefaultConfig[network]
	if !ok {
		return nil, fmt.Errorf("%w %q, available networks: %v", ErrUnknownNetwork, network, config.AvailableNetworks)
	}
	nft, err := ParseAddress(networkConfig.NFTMinterSmartContract)
	if err != nil {
		return nil, fmt.Errorf("nft minter on %s: %w", network, err)
	}
	token, err := ParseAddress(networkConfig.TokenMinterSmartContract)
	if err != nil {
		return nil, fmt.Errorf("token minter on %s: %w", network, err)
	}
	return &Addresses{NFTMinter: nft, TokenMinter: token}, nil
}

// Descriptor returns the validated interface descriptor of the named
// contract.
func Descriptor(contract string) (types.ABIDescriptor, error) {
	var data string
	switch contract {
	case NFTMinterContract:
		data = config.NFTMinterABI
	case TokenMinterContract:
		data = config.TokenMinterABI
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownContract, contract)
	}
	d, err := types.ParseABIDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", contract, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", contract, err)
	}
	return d, nil
}

// LoadContractABIs validates the descriptors of both contracts and parses
// them into go-ethereum ABIs.
func LoadContractABIs() (*ContractABIs, error) {
	nft, err := loadABI(NFTMinterContract)
	if err != nil {
		return nil, err
	}
	token, err := loadABI(TokenMinterContract)
	if err != nil {
		return nil, err
	}
	return &ContractABIs{
		NFTMinter:   nft,
		TokenMinter: token,
	}, nil
}

// loadABI parses the descriptor with go-ethereum and checks that every
// signature of the descriptor resolves to the same entry in the parsed ABI.
func loadABI(contract string) (*abi.ABI, error) {
	d, err := Descriptor(contract)
	if err != nil {
		return nil, err
	}
	data, err := d.JSON()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", contract, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s ABI: %w", contract, err)
	}

	for _, f := range d.Functions() {
		id := crypto.Keccak256([]byte(f.Signature()))[:4]
		m, err := parsed.MethodById(id)
		if err != nil || m.RawName != f.Name || string(m.StateMutability) != string(f.StateMutability) {
			return nil, fmt.Errorf("%s: function %s does not match the parsed ABI", contract, f.Signature())
		}
	}
	for _, e := range d.Events() {
		ev, err := parsed.EventByID(crypto.Keccak256Hash([]byte(e.Signature())))
		if err != nil || ev.RawName != e.Name {
			return nil, fmt.Errorf("%s: event %s does not match the parsed ABI", contract, e.Signature())
		}
	}
	for _, e := range d.Errors() {
		var id [4]byte
		copy(id[:], crypto.Keccak256([]byte(e.Signature())))
		abiErr, err := parsed.ErrorByID(id)
		if err != nil || abiErr.Name != e.Name {
			return nil, fmt.Errorf("%s: error %s does not match the parsed ABI", contract, e.Signature())
		}
	}
	if len(parsed.Methods) != len(d.Functions()) ||
		len(parsed.Events) != len(d.Events()) ||
		len(parsed.Errors) != len(d.Errors()) {
		return nil, fmt.Errorf("%s: parsed ABI entry count differs from the descriptor", contract)
	}
	return &parsed, nil
}

// ForEachABI calls fn(name, abi) for each non-nil *abi.ABI field.
// Stops and returns an error if fn returns an error.
func (c *ContractABIs) ForEachABI(fn func(fieldName string, a *abi.ABI) error) error {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	for i := range v.NumField() {
		fieldVal := v.Field(i)
		if fieldVal.IsNil() {
			continue
		}
		abiPtr, ok := fieldVal.Interface().(*abi.ABI)
		if !ok {
			continue
		}
		fieldName := t.Field(i).Name
		if err := fn(fieldName, abiPtr); err != nil {
			return fmt.Errorf("%s: %w", fieldName, err)
		}
	}
	return nil
}

// errStopIteration ends a ForEachABI walk early.
var errStopIteration = errors.New("stop")

// find walks the ABIs in declaration order until match returns true.
func (c *ContractABIs) find(match func(a *abi.ABI) bool) (string, error) {
	var contract string
	err := c.ForEachABI(func(name string, a *abi.ABI) error {
		if match(a) {
			contract = name
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return "", err
	}
	return contract, nil
}

// FunctionBySelector returns the first contract, in declaration order,
// exposing a function with the given 4-byte selector.
func (c *ContractABIs) FunctionBySelector(selector []byte) (string, *abi.Method, error) {
	if len(selector) < 4 {
		return "", nil, fmt.Errorf("%w: short selector %x", ErrSelectorNotFound, selector)
	}
	var method *abi.Method
	contract, err := c.find(func(a *abi.ABI) bool {
		m, err := a.MethodById(selector[:4])
		method = m
		return err == nil
	})
	if err != nil {
		return "", nil, err
	}
	if contract == "" {
		return "", nil, fmt.Errorf("%w: function %x", ErrSelectorNotFound, selector[:4])
	}
	return contract, method, nil
}

// EventByTopic returns the first contract, in declaration order, emitting
// an event with the given topic.
func (c *ContractABIs) EventByTopic(topic common.Hash) (string, *abi.Event, error) {
	var event *abi.Event
	contract, err := c.find(func(a *abi.ABI) bool {
		e, err := a.EventByID(topic)
		event = e
		return err == nil
	})
	if err != nil {
		return "", nil, err
	}
	if contract == "" {
		return "", nil, fmt.Errorf("%w: event %s", ErrSelectorNotFound, topic.Hex())
	}
	return contract, event, nil
}

// ErrorBySelector returns the first contract, in declaration order,
// declaring a custom error with the given 4-byte selector. Revert data
// longer than the selector is accepted.
func (c *ContractABIs) ErrorBySelector(data []byte) (string, *abi.Error, error) {
	if len(data) < 4 {
		return "", nil, fmt.Errorf("%w: short selector %x", ErrSelectorNotFound, data)
	}
	var id [4]byte
	copy(id[:], data)
	var abiErr *abi.Error
	contract, err := c.find(func(a *abi.ABI) bool {
		e, err := a.ErrorByID(id)
		abiErr = e
		return err == nil
	})
	if err != nil {
		return "", nil, err
	}
	if contract == "" {
		return "", nil, fmt.Errorf("%w: error %x", ErrSelectorNotFound, id)
	}
	return contract, abiErr, nil
}

// Selector is a flattened entry of the catalog: the selector of a function
// or error, or the topic of an event.
type Selector struct {
	Contract  string          `json:"contract"`
	Kind      types.EntryKind `json:"kind"`
	Signature string          `json:"signature"`
	Selector  hexutil.Bytes   `json:"selector"`
}

var kindOrder = map[types.EntryKind]int{
	types.KindFunction: 0,
	types.KindEvent:    1,
	types.KindError:    2,
}

// Selectors lists every function selector, event topic and error selector,
// sorted by contract, kind and signature.
func (c *ContractABIs) Selectors() []Selector {
	var list []Selector
	_ = c.ForEachABI(func(name string, a *abi.ABI) error {
		for _, m := range a.Methods {
			list = append(list, Selector{name, types.KindFunction, m.Sig, slices.Clone(m.ID)})
		}
		for _, e := range a.Events {
			list = append(list, Selector{name, types.KindEvent, e.Sig, e.ID.Bytes()})
		}
		for _, e := range a.Errors {
			list = append(list, Selector{name, types.KindError, e.Sig, slices.Clone(e.ID[:4])})
		}
		return nil
	})
	slices.SortFunc(list, func(a, b Selector) int {
		return cmp.Or(
			cmp.Compare(a.Contract, b.Contract),
			cmp.Compare(kindOrder[a.Kind], kindOrder[b.Kind]),
			cmp.Compare(a.Signature, b.Signature),
		)
	})
	return list
}
