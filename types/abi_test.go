package types

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/nft-token-minter/config"
)

func ptr[T any](v T) *T { return &v }

func TestParseMinterDescriptors(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		name         string
		abi          string
		functions    int
		events       int
		errors       int
		constructorN int
	}{
		{name: "nft minter", abi: config.NFTMinterABI, functions: 20, events: 8, errors: 9, constructorN: 0},
		{name: "token minter", abi: config.TokenMinterABI, functions: 16, events: 5, errors: 2, constructorN: 1},
	}
	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			d, err := ParseABIDescriptor(tc.abi)
			c.Assert(err, qt.IsNil)
			c.Assert(d.Validate(), qt.IsNil)
			c.Assert(d, qt.HasLen, 1+tc.functions+tc.events+tc.errors)
			c.Assert(d.Functions(), qt.HasLen, tc.functions)
			c.Assert(d.Events(), qt.HasLen, tc.events)
			c.Assert(d.Errors(), qt.HasLen, tc.errors)
			c.Assert(d.Constructor(), qt.IsNotNil)
			c.Assert(d.Constructor().Inputs, qt.HasLen, tc.constructorN)
			c.Assert(d.Constructor().StateMutability, qt.Equals, MutabilityNonPayable)
		})
	}
}

func TestDescriptorProperties(t *testing.T) {
	c := qt.New(t)

	for name, abi := range map[string]string{
		"nft minter":   config.NFTMinterABI,
		"token minter": config.TokenMinterABI,
	} {
		c.Run(name, func(c *qt.C) {
			d, err := ParseABIDescriptor(abi)
			c.Assert(err, qt.IsNil)
			for _, e := range d {
				c.Assert(e.Type.Valid(), qt.IsTrue, qt.Commentf("entry %s", e.Name))
				switch e.Type {
				case KindFunction:
					c.Assert(e.StateMutability.Valid(), qt.IsTrue, qt.Commentf("function %s", e.Name))
				case KindEvent:
					c.Assert(e.Anonymous, qt.IsNotNil)
					for _, in := range e.Inputs {
						c.Assert(in.Indexed, qt.IsNotNil, qt.Commentf("event %s input %s", e.Name, in.Name))
					}
				}
				if e.Type != KindEvent {
					for _, in := range e.Inputs {
						c.Assert(in.Indexed, qt.IsNil)
					}
				}
			}
		})
	}

	// indexed flags must be booleans, anything else fails to decode
	_, err := ParseABIDescriptor(`[{"type":"event","name":"E","inputs":[{"name":"a","type":"uint256","indexed":"yes"}],"anonymous":false}]`)
	c.Assert(err, qt.IsNotNil)
}

func TestDescriptorRoundTrip(t *testing.T) {
	c := qt.New(t)

	for name, abi := range map[string]string{
		"nft minter":   config.NFTMinterABI,
		"token minter": config.TokenMinterABI,
	} {
		c.Run(name+" json", func(c *qt.C) {
			d, err := ParseABIDescriptor(abi)
			c.Assert(err, qt.IsNil)
			data, err := d.JSON()
			c.Assert(err, qt.IsNil)
			again, err := ParseABIDescriptor(string(data))
			c.Assert(err, qt.IsNil)
			c.Assert(again, qt.DeepEquals, d)

			// the encoding is the same document the compiler produced
			var want, got any
			c.Assert(json.Unmarshal([]byte(abi), &want), qt.IsNil)
			c.Assert(json.Unmarshal(data, &got), qt.IsNil)
			c.Assert(got, qt.DeepEquals, want)
		})
		c.Run(name+" cbor", func(c *qt.C) {
			d, err := ParseABIDescriptor(abi)
			c.Assert(err, qt.IsNil)
			data, err := d.CBOR()
			c.Assert(err, qt.IsNil)
			c.Assert(len(data) < len(abi), qt.IsTrue)
			again, err := ParseABIDescriptorCBOR(data)
			c.Assert(err, qt.IsNil)
			c.Assert(again, qt.DeepEquals, d)
		})
	}

	c.Run("function without outputs", func(c *qt.C) {
		d, err := ParseABIDescriptor(`[{"type":"function","name":"f","inputs":[],"stateMutability":"view"}]`)
		c.Assert(err, qt.IsNil)
		c.Assert(d.Validate(), qt.IsNil)
		c.Assert(d[0].Outputs, qt.IsNotNil)
		c.Assert(d[0].Outputs, qt.HasLen, 0)

		data, err := d.JSON()
		c.Assert(err, qt.IsNil)
		c.Assert(string(data), qt.Equals, `[{"type":"function","name":"f","inputs":[],"outputs":[],"stateMutability":"view"}]`)
		again, err := ParseABIDescriptor(string(data))
		c.Assert(err, qt.IsNil)
		c.Assert(again, qt.DeepEquals, d)

		data, err = d.CBOR()
		c.Assert(err, qt.IsNil)
		again, err = ParseABIDescriptorCBOR(data)
		c.Assert(err, qt.IsNil)
		c.Assert(again, qt.DeepEquals, d)
	})

	c.Run("event with empty outputs", func(c *qt.C) {
		d, err := ParseABIDescriptor(`[{"type":"event","name":"E","inputs":[],"outputs":[],"anonymous":false}]`)
		c.Assert(err, qt.IsNil)
		err = d.Validate()
		c.Assert(err, qt.ErrorIs, ErrInvalidDescriptor)
		c.Assert(err, qt.ErrorMatches, `.*outputs declared on a event`)
	})
}

func TestParseABIDescriptorStrict(t *testing.T) {
	c := qt.New(t)

	_, err := ParseABIDescriptor(`[{"type":"function","name":"f","inputs":[],"outputs":[],"stateMutability":"view","gas":100}]`)
	c.Assert(err, qt.ErrorMatches, `.*unknown field "gas".*`)

	_, err = ParseABIDescriptor(`[] []`)
	c.Assert(err, qt.ErrorMatches, `.*trailing data.*`)

	_, err = ParseABIDescriptor(`{}`)
	c.Assert(err, qt.IsNotNil)
}

func TestEntrySignature(t *testing.T) {
	c := qt.New(t)

	d, err := ParseABIDescriptor(config.NFTMinterABI)
	c.Assert(err, qt.IsNil)
	sigs := map[string]bool{}
	for _, e := range d {
		sigs[e.Signature()] = true
	}
	for _, want := range []string{
		"constructor()",
		"balanceOf(address,uint256)",
		"safeBatchTransferFrom(address,address,uint256[],uint256[],bytes)",
		"NFTMinted(uint256,address,string)",
		"ERC1155InsufficientBalance(address,uint256,uint256,uint256)",
	} {
		c.Assert(sigs[want], qt.IsTrue, qt.Commentf("signature %s", want))
	}

	tuple := ABIEntry{
		Type: KindFunction,
		Name: "submit",
		Inputs: []ABIParam{
			{Name: "orders", Type: "tuple[]", Components: []ABIParam{
				{Name: "id", Type: "uint256"},
				{Name: "owner", Type: "address"},
			}},
			{Name: "flag", Type: "bool"},
		},
		StateMutability: MutabilityPayable,
	}
	c.Assert(tuple.Signature(), qt.Equals, "submit((uint256,address)[],bool)")
}

func TestFunctionOutputsEncoding(t *testing.T) {
	c := qt.New(t)

	data, err := ABIDescriptor{
		{Type: KindFunction, Name: "ping", Inputs: []ABIParam{}, StateMutability: MutabilityNonPayable},
		{Type: KindError, Name: "Oops", Inputs: []ABIParam{}},
	}.JSON()
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals,
		`[{"type":"function","name":"ping","inputs":[],"outputs":[],"stateMutability":"nonpayable"},`+
			`{"type":"error","name":"Oops","inputs":[]}]`)
}

func TestDescriptorValidate(t *testing.T) {
	c := qt.New(t)

	event := func(indexed ...bool) ABIEntry {
		e := ABIEntry{Type: KindEvent, Name: "E", Anonymous: ptr(false)}
		for _, ix := range indexed {
			e.Inputs = append(e.Inputs, ABIParam{Name: "a", Type: "uint256", Indexed: ptr(ix)})
		}
		return e
	}

	testCases := []struct {
		name    string
		entries ABIDescriptor
		err     string
	}{
		{
			name:    "unknown kind",
			entries: ABIDescriptor{{Type: "fallback", StateMutability: MutabilityPayable}},
			err:     `.*unknown entry type`,
		},
		{
			name:    "function without mutability",
			entries: ABIDescriptor{{Type: KindFunction, Name: "f"}},
			err:     `.*invalid state mutability ""`,
		},
		{
			name:    "function with bad mutability",
			entries: ABIDescriptor{{Type: KindFunction, Name: "f", StateMutability: "constant"}},
			err:     `.*invalid state mutability "constant"`,
		},
		{
			name:    "function without name",
			entries: ABIDescriptor{{Type: KindFunction, StateMutability: MutabilityView}},
			err:     `.*missing name`,
		},
		{
			name:    "view constructor",
			entries: ABIDescriptor{{Type: KindConstructor, StateMutability: MutabilityView}},
			err:     `.*invalid constructor state mutability "view"`,
		},
		{
			name: "two constructors",
			entries: ABIDescriptor{
				{Type: KindConstructor, StateMutability: MutabilityNonPayable},
				{Type: KindConstructor, StateMutability: MutabilityPayable},
			},
			err: `.*more than one constructor`,
		},
		{
			name:    "event input without indexed flag",
			entries: ABIDescriptor{{Type: KindEvent, Name: "E", Anonymous: ptr(false), Inputs: []ABIParam{{Name: "a", Type: "uint256"}}}},
			err:     `.*event input without indexed flag`,
		},
		{
			name:    "indexed function input",
			entries: ABIDescriptor{{Type: KindFunction, Name: "f", StateMutability: MutabilityView, Inputs: []ABIParam{{Name: "a", Type: "uint256", Indexed: ptr(true)}}}},
			err:     `.*indexed flag outside an event input`,
		},
		{
			name:    "event without anonymous flag",
			entries: ABIDescriptor{{Type: KindEvent, Name: "E"}},
			err:     `.*event without anonymous flag`,
		},
		{
			name:    "too many indexed inputs",
			entries: ABIDescriptor{event(true, true, true, true)},
			err:     `.*4 indexed inputs, at most 3 allowed`,
		},
		{
			name:    "error with outputs",
			entries: ABIDescriptor{{Type: KindError, Name: "Oops", Outputs: []ABIParam{{Type: "uint256"}}}},
			err:     `.*outputs declared on a error`,
		},
		{
			name:    "event with empty outputs",
			entries: ABIDescriptor{{Type: KindEvent, Name: "E", Anonymous: ptr(false), Outputs: []ABIParam{}}},
			err:     `.*outputs declared on a event`,
		},
		{
			name:    "error with mutability",
			entries: ABIDescriptor{{Type: KindError, Name: "Oops", StateMutability: MutabilityView}},
			err:     `.*state mutability declared on a error`,
		},
		{
			name:    "tuple without components",
			entries: ABIDescriptor{{Type: KindFunction, Name: "f", StateMutability: MutabilityView, Inputs: []ABIParam{{Name: "t", Type: "tuple"}}}},
			err:     `.*tuple without components`,
		},
		{
			name:    "parameter without type",
			entries: ABIDescriptor{{Type: KindError, Name: "Oops", Inputs: []ABIParam{{Name: "a"}}}},
			err:     `.*missing type`,
		},
		{
			name: "duplicated function",
			entries: ABIDescriptor{
				{Type: KindFunction, Name: "f", StateMutability: MutabilityView},
				{Type: KindFunction, Name: "f", StateMutability: MutabilityPure},
			},
			err: `.*duplicated function f\(\)`,
		},
	}
	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			err := tc.entries.Validate()
			c.Assert(err, qt.ErrorIs, ErrInvalidDescriptor)
			c.Assert(err, qt.ErrorMatches, tc.err)
		})
	}

	c.Run("overloads and anonymous events", func(c *qt.C) {
		anon := event(true, true, true, true)
		anon.Anonymous = ptr(true)
		d := ABIDescriptor{
			{Type: KindFunction, Name: "f", StateMutability: MutabilityView},
			{Type: KindFunction, Name: "f", StateMutability: MutabilityView, Inputs: []ABIParam{{Name: "a", Type: "uint8"}}},
			anon,
		}
		c.Assert(d.Validate(), qt.IsNil)
	})
}
