package ndn

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
)

// PacketType is the top-level type of a decoded packet.
type PacketType uint8

// PacketType values.
const (
	PktInterest PacketType = iota + 1
	PktData
	PktFragment
	PktObject
	PktRPCApplication
	PktRPCLambda
	PktRPCSequence
	PktRPCInteger
	PktRPCASCII
	PktRPCBinary
)

var pktTypeNames = map[PacketType]string{
	PktInterest:       "Interest",
	PktData:           "Data",
	PktFragment:       "Fragment",
	PktObject:         "Object",
	PktRPCApplication: "RPC-Application",
	PktRPCLambda:      "RPC-Lambda",
	PktRPCSequence:    "RPC-Sequence",
	PktRPCInteger:     "RPC-Integer",
	PktRPCASCII:       "RPC-ASCII",
	PktRPCBinary:      "RPC-Binary",
}

func (t PacketType) String() string {
	if s, ok := pktTypeNames[t]; ok {
		return s
	}
	return strconv.Itoa(int(t))
}

// MarshalText implements encoding.TextMarshaler interface.
func (t PacketType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Span is a byte range within the input buffer.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// End returns the offset just past the range.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Of returns the octets of the range within wire.
func (s Span) Of(wire []byte) []byte {
	return wire[s.Offset:s.End()]
}

// FieldSpan locates a field: the whole element, and its value.
type FieldSpan struct {
	Element Span `json:"element"`
	Value   Span `json:"value"`
}

// NodeKind classifies decoded nodes.
type NodeKind uint8

// NodeKind values.
const (
	// NodeElement is a TLV element, or a CCNB DTAG/TAG container.
	NodeElement NodeKind = iota
	// NodeVariable is an inline variable reference in local RPC.
	NodeVariable
	// NodeBlob is a CCNB BLOB.
	NodeBlob
	// NodeText is a CCNB UDATA.
	NodeText
	// NodeAttribute is a CCNB ATTR or DATTR.
	NodeAttribute
)

func (k NodeKind) String() string {
	switch k {
	case NodeElement:
		return "element"
	case NodeVariable:
		return "variable"
	case NodeBlob:
		return "blob"
	case NodeText:
		return "text"
	case NodeAttribute:
		return "attribute"
	}
	return strconv.Itoa(int(k))
}

// MarshalText implements encoding.TextMarshaler interface.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is a node in the decoded element tree.
type Node struct {
	Kind NodeKind `json:"kind"`
	// Type is the suite-local element type, the CCNB tag, or the RPC variable index.
	Type    uint64          `json:"type"`
	Context grammar.Context `json:"context"`
	Field   grammar.Field   `json:"field,omitempty"`
	// Known indicates the element matched a grammar rule.
	Known    bool   `json:"known"`
	Element  Span   `json:"element"`
	Value    Span   `json:"value"`
	Children []Node `json:"children,omitempty"`
}

// Walk visits n and its descendants in document order.
// Returning false from visit skips the children of that node.
func (n *Node) Walk(visit func(n *Node, depth int) bool) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(n *Node, depth int) bool, depth int) {
	if !visit(n, depth) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(visit, depth+1)
	}
}

// Extension is an element that does not match any grammar rule.
// It is skipped as an opaque leaf and kept here for callers that understand it.
type Extension struct {
	Context grammar.Context `json:"context"`
	Type    uint64          `json:"type"`
	Element Span            `json:"element"`
	Value   Span            `json:"value"`
}

// Packet is the result of decoding one top-level element.
// It refers to the input buffer, which must not be modified while the Packet is in use.
type Packet struct {
	Suite an.Suite
	Type  PacketType
	// Name is the packet name, taken from the Name that is a direct child of the top-level element.
	Name Name
	// Raw is the byte range of the whole packet, which covers what a signature would be computed over.
	Raw        Span
	Root       Node
	Extensions []Extension

	wire    []byte
	scalars map[grammar.Field]uint64
	opaques map[grammar.Field]FieldSpan
}

func newPacket(suite an.Suite, wire []byte) *Packet {
	return &Packet{
		Suite:   suite,
		Name:    Name{},
		wire:    wire,
		scalars: map[grammar.Field]uint64{},
		opaques: map[grammar.Field]FieldSpan{},
	}
}

// setOpaque records a field span; the first occurrence wins.
func (pkt *Packet) setOpaque(f grammar.Field, fs FieldSpan) {
	if _, ok := pkt.opaques[f]; !ok {
		pkt.opaques[f] = fs
	}
}

// setScalar records a scalar field; the first occurrence wins.
func (pkt *Packet) setScalar(f grammar.Field, v uint64) {
	if _, ok := pkt.scalars[f]; !ok {
		pkt.scalars[f] = v
	}
}

// Scalar returns the integer value of a field.
func (pkt *Packet) Scalar(f grammar.Field) (v uint64, ok bool) {
	v, ok = pkt.scalars[f]
	return
}

// Span returns the location of a field.
func (pkt *Packet) Span(f grammar.Field) (fs FieldSpan, ok bool) {
	fs, ok = pkt.opaques[f]
	return
}

// Opaque returns the value octets of a field.
func (pkt *Packet) Opaque(f grammar.Field) (value []byte, ok bool) {
	fs, ok := pkt.opaques[f]
	if !ok {
		return nil, false
	}
	return fs.Value.Of(pkt.wire), true
}

// OpaqueElement returns the whole element of a field, including its header.
func (pkt *Packet) OpaqueElement(f grammar.Field) (element []byte, ok bool) {
	fs, ok := pkt.opaques[f]
	if !ok {
		return nil, false
	}
	return fs.Element.Of(pkt.wire), true
}

// Wire returns the octets of the whole packet.
func (pkt *Packet) Wire() []byte {
	return pkt.Raw.Of(pkt.wire)
}

// Payload returns Content of Data and Object, or fragment payload of Fragment.
func (pkt *Packet) Payload() []byte {
	value, _ := pkt.Opaque(grammar.FieldPayload)
	return value
}

func (pkt *Packet) String() string {
	return fmt.Sprintf("%s %s %s", pkt.Suite, pkt.Type, pkt.Name)
}

type packetJSON struct {
	Suite      an.Suite                `json:"suite"`
	Type       PacketType              `json:"type"`
	Name       Name                    `json:"name"`
	Raw        Span                    `json:"raw"`
	Scalars    map[string]uint64       `json:"scalars,omitempty"`
	Opaques    map[string]string       `json:"opaques,omitempty"`
	Spans      map[string]FieldSpan    `json:"spans,omitempty"`
	Extensions []Extension             `json:"extensions,omitempty"`
	Root       *Node                   `json:"root,omitempty"`
	Components []nameComponentJSONView `json:"components,omitempty"`
}

type nameComponentJSONView struct {
	Type   uint64 `json:"type"`
	Value  string `json:"value"`
	Marker string `json:"marker,omitempty"`
	Number uint64 `json:"number,omitempty"`
}

// MarshalJSON implements json.Marshaler interface.
// Opaque values are written in hexadecimal.
// The element tree is omitted if Root has been cleared.
func (pkt *Packet) MarshalJSON() ([]byte, error) {
	j := packetJSON{
		Suite:      pkt.Suite,
		Type:       pkt.Type,
		Name:       pkt.Name,
		Raw:        pkt.Raw,
		Scalars:    map[string]uint64{},
		Opaques:    map[string]string{},
		Spans:      map[string]FieldSpan{},
		Extensions: pkt.Extensions,
	}
	if pkt.Root.Element.Length > 0 {
		j.Root = &pkt.Root
	}
	for f, v := range pkt.scalars {
		j.Scalars[f.String()] = v
	}
	for f, fs := range pkt.opaques {
		j.Opaques[f.String()] = hex.EncodeToString(fs.Value.Of(pkt.wire))
		j.Spans[f.String()] = fs
	}
	for _, comp := range pkt.Name {
		view := nameComponentJSONView{Type: comp.Type, Value: hex.EncodeToString(comp.Value)}
		if marker, v, ok := comp.Marker(); ok {
			view.Marker, view.Number = marker.String(), v
		}
		j.Components = append(j.Components, view)
	}
	return json.Marshal(j)
}
