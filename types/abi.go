package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidDescriptor is returned when an interface descriptor breaks one of
// the shape rules enforced by ABIDescriptor.Validate.
var ErrInvalidDescriptor = errors.New("invalid interface descriptor")

// EntryKind tags an interface descriptor entry.
type EntryKind string

const (
	KindConstructor EntryKind = "constructor"
	KindFunction    EntryKind = "function"
	KindEvent       EntryKind = "event"
	KindError       EntryKind = "error"
)

// Valid reports whether k is one of the supported entry kinds.
func (k EntryKind) Valid() bool {
	switch k {
	case KindConstructor, KindFunction, KindEvent, KindError:
		return true
	}
	return false
}

// StateMutability is the declared effect of a function on the chain state.
type StateMutability string

const (
	MutabilityPure       StateMutability = "pure"
	MutabilityView       StateMutability = "view"
	MutabilityNonPayable StateMutability = "nonpayable"
	MutabilityPayable    StateMutability = "payable"
)

// Valid reports whether m is one of the four mutability classifications.
func (m StateMutability) Valid() bool {
	switch m {
	case MutabilityPure, MutabilityView, MutabilityNonPayable, MutabilityPayable:
		return true
	}
	return false
}

// ABIParam is a typed parameter of an entry. Indexed is only set on event
// inputs, Components only on tuple types.
type ABIParam struct {
	Name         string     `json:"name" cbor:"0,keyasint,omitempty"`
	Type         string     `json:"type" cbor:"1,keyasint,omitempty"`
	Indexed      *bool      `json:"indexed,omitempty" cbor:"2,keyasint,omitempty"`
	InternalType string     `json:"internalType,omitempty" cbor:"3,keyasint,omitempty"`
	Components   []ABIParam `json:"components,omitempty" cbor:"4,keyasint,omitempty"`
}

// IsIndexed returns true if the parameter is an indexed event input.
func (p *ABIParam) IsIndexed() bool {
	return p.Indexed != nil && *p.Indexed
}

// canonicalType returns the type as used in signatures, expanding tuples
// into their member types.
func (p *ABIParam) canonicalType() string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	members := make([]string, len(p.Components))
	for i := range p.Components {
		members[i] = p.Components[i].canonicalType()
	}
	return "(" + strings.Join(members, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

// ABIEntry is a single constructor, function, event or error of a contract
// interface.
type ABIEntry struct {
	Type            EntryKind       `json:"type" cbor:"0,keyasint"`
	Name            string          `json:"name,omitempty" cbor:"1,keyasint,omitempty"`
	Inputs          []ABIParam      `json:"inputs" cbor:"2,keyasint"`
	Outputs         []ABIParam      `json:"outputs,omitempty" cbor:"3,keyasint"`
	StateMutability StateMutability `json:"stateMutability,omitempty" cbor:"4,keyasint,omitempty"`
	Anonymous       *bool           `json:"anonymous,omitempty" cbor:"5,keyasint,omitempty"`
}

// MarshalJSON encodes the entry, always writing the outputs list of
// functions (even when empty) as the solidity compiler does.
func (e ABIEntry) MarshalJSON() ([]byte, error) {
	type plainEntry ABIEntry
	if e.Type != KindFunction {
		return json.Marshal(plainEntry(e))
	}
	outputs := e.Outputs
	if outputs == nil {
		outputs = []ABIParam{}
	}
	return json.Marshal(struct {
		Type            EntryKind       `json:"type"`
		Name            string          `json:"name,omitempty"`
		Inputs          []ABIParam      `json:"inputs"`
		Outputs         []ABIParam      `json:"outputs"`
		StateMutability StateMutability `json:"stateMutability,omitempty"`
		Anonymous       *bool           `json:"anonymous,omitempty"`
	}{e.Type, e.Name, e.Inputs, outputs, e.StateMutability, e.Anonymous})
}

// Signature returns the canonical signature of the entry, i.e.
// "transfer(address,uint256)". Constructors return "constructor(...)".
func (e *ABIEntry) Signature() string {
	name := e.Name
	if e.Type == KindConstructor {
		name = string(KindConstructor)
	}
	argTypes := make([]string, len(e.Inputs))
	for i := range e.Inputs {
		argTypes[i] = e.Inputs[i].canonicalType()
	}
	return name + "(" + strings.Join(argTypes, ",") + ")"
}

// ABIDescriptor is the ordered interface descriptor of a contract. The order
// of the entries is the one emitted by the compiler and must be preserved.
type ABIDescriptor []ABIEntry

// ParseABIDescriptor decodes a JSON interface descriptor. Decoding is strict:
// unknown fields and trailing data are rejected so that nothing read is lost
// when the descriptor is encoded again.
func ParseABIDescriptor(data string) (ABIDescriptor, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	var d ABIDescriptor
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode interface descriptor: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode interface descriptor: trailing data at offset %d", dec.InputOffset())
	}
	d.normalize()
	return d, nil
}

// ParseABIDescriptorCBOR decodes an interface descriptor encoded with
// ABIDescriptor.CBOR.
func ParseABIDescriptorCBOR(data []byte) (ABIDescriptor, error) {
	var d ABIDescriptor
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode cbor interface descriptor: %w", err)
	}
	d.normalize()
	return d, nil
}

// normalize gives every function a non-nil outputs list, matching what
// MarshalJSON writes.
func (d ABIDescriptor) normalize() {
	for i := range d {
		if d[i].Type == KindFunction && d[i].Outputs == nil {
			d[i].Outputs = []ABIParam{}
		}
	}
}

// JSON encodes the descriptor in the compiler JSON layout.
func (d ABIDescriptor) JSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode interface descriptor: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// CBOR encodes the descriptor in a compact binary form.
func (d ABIDescriptor) CBOR() ([]byte, error) {
	data, err := cbor.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cbor interface descriptor: %w", err)
	}
	return data, nil
}

// Constructor returns the constructor entry or nil if none is declared.
func (d ABIDescriptor) Constructor() *ABIEntry {
	for i := range d {
		if d[i].Type == KindConstructor {
			return &d[i]
		}
	}
	return nil
}

// Functions returns the function entries in declaration order.
func (d ABIDescriptor) Functions() []ABIEntry { return d.filter(KindFunction) }

// Events returns the event entries in declaration order.
func (d ABIDescriptor) Events() []ABIEntry { return d.filter(KindEvent) }

// Errors returns the error entries in declaration order.
func (d ABIDescriptor) Errors() []ABIEntry { return d.filter(KindError) }

func (d ABIDescriptor) filter(kind EntryKind) []ABIEntry {
	var entries []ABIEntry
	for _, e := range d {
		if e.Type == kind {
			entries = append(entries, e)
		}
	}
	return entries
}

// Validate checks the shape of every entry:
//   - the kind is constructor, function, event or error
//   - functions declare a valid state mutability, constructors are
//     nonpayable or payable, events and errors declare none
//   - only functions have an outputs list, even an empty one
//   - event inputs carry an indexed flag, no other parameter does
//   - events carry the anonymous flag and respect the topic limit
//   - there is at most one constructor and no repeated signature
func (d ABIDescriptor) Validate() error {
	seen := make(map[string]struct{}, len(d))
	constructors := 0
	for i := range d {
		e := &d[i]
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: entry %d (%s %q): %w", ErrInvalidDescriptor, i, e.Type, e.Name, err)
		}
		if e.Type == KindConstructor {
			constructors++
			if constructors > 1 {
				return fmt.Errorf("%w: entry %d: more than one constructor", ErrInvalidDescriptor, i)
			}
			continue
		}
		key := string(e.Type) + " " + e.Signature()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: entry %d: duplicated %s", ErrInvalidDescriptor, i, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// maxIndexedEventInputs is the number of topics available to event
// arguments; the first topic holds the event id unless the event is
// anonymous.
const maxIndexedEventInputs = 3

func (e *ABIEntry) validate() error {
	if !e.Type.Valid() {
		return errors.New("unknown entry type")
	}
	if e.Type != KindConstructor && e.Name == "" {
		return errors.New("missing name")
	}
	if e.Type != KindFunction && e.Outputs != nil {
		return fmt.Errorf("outputs declared on a %s", e.Type)
	}
	if e.Type != KindEvent && e.Anonymous != nil {
		return fmt.Errorf("anonymous flag declared on a %s", e.Type)
	}

	switch e.Type {
	case KindConstructor:
		if e.Name != "" {
			return errors.New("constructor with a name")
		}
		if e.StateMutability != MutabilityNonPayable && e.StateMutability != MutabilityPayable {
			return fmt.Errorf("invalid constructor state mutability %q", e.StateMutability)
		}
	case KindFunction:
		if !e.StateMutability.Valid() {
			return fmt.Errorf("invalid state mutability %q", e.StateMutability)
		}
	case KindEvent, KindError:
		if e.StateMutability != "" {
			return fmt.Errorf("state mutability declared on a %s", e.Type)
		}
	}

	indexed := 0
	for i := range e.Inputs {
		p := &e.Inputs[i]
		if err := p.validate(e.Type == KindEvent); err != nil {
			return fmt.Errorf("input %d (%q): %w", i, p.Name, err)
		}
		if p.IsIndexed() {
			indexed++
		}
	}
	for i := range e.Outputs {
		if err := e.Outputs[i].validate(false); err != nil {
			return fmt.Errorf("output %d (%q): %w", i, e.Outputs[i].Name, err)
		}
	}

	if e.Type == KindEvent {
		if e.Anonymous == nil {
			return errors.New("event without anonymous flag")
		}
		limit := maxIndexedEventInputs
		if *e.Anonymous {
			limit++
		}
		if indexed > limit {
			return fmt.Errorf("%d indexed inputs, at most %d allowed", indexed, limit)
		}
	}
	return nil
}

func (p *ABIParam) validate(eventInput bool) error {
	if p.Type == "" {
		return errors.New("missing type")
	}
	if eventInput && p.Indexed == nil {
		return errors.New("event input without indexed flag")
	}
	if !eventInput && p.Indexed != nil {
		return errors.New("indexed flag outside an event input")
	}
	isTuple := strings.HasPrefix(p.Type, "tuple")
	if isTuple && len(p.Components) == 0 {
		return errors.New("tuple without components")
	}
	if !isTuple && len(p.Components) > 0 {
		return fmt.Errorf("components declared on %s", p.Type)
	}
	for i := range p.Components {
		if err := p.Components[i].validate(false); err != nil {
			return fmt.Errorf("component %d (%q): %w", i, p.Components[i].Name, err)
		}
	}
	return nil
}
