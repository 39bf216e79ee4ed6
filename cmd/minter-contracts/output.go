package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vocdoni/nft-token-minter/web3"
)

// catalogContract is a contract of the JSON catalog.
type catalogContract struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// catalog is the JSON document printed with --format=json.
type catalog struct {
	Network   string            `json:"network"`
	ChainID   uint64            `json:"chainId"`
	Contracts []catalogContract `json:"contracts"`
	Selectors []web3.Selector   `json:"selectors"`
}

func newCatalog(c *web3.Contracts) *catalog {
	return &catalog{
		Network: c.Network,
		ChainID: c.ChainID,
		Contracts: []catalogContract{
			{Name: web3.NFTMinterContract, Address: c.ContractsAddresses.NFTMinter.Hex()},
			{Name: web3.TokenMinterContract, Address: c.ContractsAddresses.TokenMinter.Hex()},
		},
		Selectors: c.ContractABIs.Selectors(),
	}
}

// writeCatalog prints the addresses and selectors of the contracts.
func writeCatalog(w io.Writer, c *web3.Contracts, format string) error {
	cat := newCatalog(c)
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "network\t%s (chain id %d)\n", cat.Network, cat.ChainID)
	for _, contract := range cat.Contracts {
		fmt.Fprintf(tw, "%s\t%s\n", contract.Name, contract.Address)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "CONTRACT\tKIND\tSELECTOR\tSIGNATURE")
	for _, s := range cat.Selectors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Contract, s.Kind, s.Selector, s.Signature)
	}
	return tw.Flush()
}

// writeDescriptor prints the interface descriptor of the named contract,
// indented in text format and compact in json format. The cbor format
// writes the raw binary encoding without a trailing newline.
func writeDescriptor(w io.Writer, contract, format string) error {
	d, err := web3.Descriptor(contract)
	if err != nil {
		return err
	}
	if format == formatCBOR {
		data, err := d.CBOR()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	data, err := d.JSON()
	if err != nil {
		return err
	}
	if format == formatText {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("failed to indent descriptor: %w", err)
		}
		data = buf.Bytes()
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
