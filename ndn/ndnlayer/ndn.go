package ndnlayer

import (
	"errors"

	"github.com/google/gopacket"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
)

// LayerTypeNDN identifies NDN layer.
var LayerTypeNDN gopacket.LayerType

// NDN is the layer for NDN packets.
type NDN struct {
	Packet *ndn.Packet
	// Config is the decoder settings used by DecodeFromBytes.
	Config ndn.DecoderConfig
	wire   []byte
}

var _ interface {
	gopacket.ApplicationLayer
	gopacket.DecodingLayer
	gopacket.SerializableLayer
} = &NDN{}

// LayerType returns LayerTypeNDN.
func (NDN) LayerType() gopacket.LayerType {
	return LayerTypeNDN
}

// LayerContents returns packet bytes, excluding link layer padding.
func (l *NDN) LayerContents() []byte {
	return l.wire
}

// LayerPayload returns Data or Object content, or fragment payload.
func (l *NDN) LayerPayload() []byte {
	if l.Packet == nil {
		return nil
	}
	return l.Packet.Payload()
}

// Payload implements gopacket.ApplicationLayer interface.
func (l *NDN) Payload() []byte {
	return l.LayerPayload()
}

// IsWholeFragment determines whether the packet is a fragment that carries a whole network layer packet.
func (l *NDN) IsWholeFragment() bool {
	if l.Packet == nil || l.Packet.Type != ndn.PktFragment {
		return false
	}
	flags, _ := l.Packet.Scalar(grammar.FieldFragFlags)
	return flags&(an.FragFlagBegin|an.FragFlagEnd) == an.FragFlagBegin|an.FragFlagEnd
}

// DecodeFromBytes decodes an NDN packet.
// Input must start with a packet, and may contain link layer padding at the end.
// If the suite cannot be detected, the input is decoded as NDN-TLV, which is the suite of NDNLP fragments.
func (l *NDN) DecodeFromBytes(wire []byte, df gopacket.DecodeFeedback) error {
	suite := ndn.DetectSuite(wire)
	if suite == an.SuiteUnknown {
		suite = an.SuiteNamedDataTLV
	}

	pkt, _, e := l.Config.DecodeFirst(suite, wire)
	if e != nil {
		return e
	}
	l.Packet, l.wire = pkt, pkt.Wire()
	return nil
}

// CanDecode implements gopacket.DecodingLayer interface.
func (NDN) CanDecode() gopacket.LayerClass {
	return LayerTypeNDN
}

// NextLayerType implements gopacket.DecodingLayer interface.
func (l *NDN) NextLayerType() gopacket.LayerType {
	if l.IsWholeFragment() {
		return LayerTypeNDN
	}
	return gopacket.LayerTypePayload
}

// SerializeTo implements gopacket.SerializableLayer interface.
func (l *NDN) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if l.Packet == nil {
		return errors.New("no Packet")
	}
	return encodeTo(b, l.Packet.Wire())
}

func decodeNDN(wire []byte, p gopacket.PacketBuilder) error {
	l := &NDN{}
	if e := l.DecodeFromBytes(wire, p); e != nil {
		return e
	}
	p.AddLayer(l)
	if l.IsWholeFragment() {
		return p.NextDecoder(LayerTypeNDN)
	}
	p.SetApplicationLayer(l)
	return p.NextDecoder(gopacket.DecodePayload)
}
