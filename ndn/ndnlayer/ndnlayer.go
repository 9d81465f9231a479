// Package ndnlayer provides a GoPacket layer for NDN packets of every wire suite.
package ndnlayer

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
)

// Assigned numbers.
const (
	EthernetTypeNDN layers.EthernetType = an.EtherTypeNDN
	UDPPortNDN      layers.UDPPort      = an.UDPPortNDN
)

func init() {
	LayerTypeNDN = gopacket.RegisterLayerType(1636, gopacket.LayerTypeMetadata{
		Name:    "NDN",
		Decoder: gopacket.DecodeFunc(decodeNDN),
	})

	layers.EthernetTypeMetadata[EthernetTypeNDN] = layers.EnumMetadata{
		DecodeWith: gopacket.DecodeFunc(decodeNDN),
		Name:       LayerTypeNDN.String(),
		LayerType:  LayerTypeNDN,
	}

	layers.RegisterUDPPortLayerType(UDPPortNDN, LayerTypeNDN)
}

func encodeTo(b gopacket.SerializeBuffer, wire []byte) error {
	room, e := b.PrependBytes(len(wire))
	if e != nil {
		return e
	}
	copy(room, wire)
	return nil
}

// SerializeFrom creates a gopacket.SerializableLayer from an ndn.Encodable.
func SerializeFrom(req ndn.Encodable) gopacket.SerializableLayer {
	return serializableEncodable{req}
}

type serializableEncodable struct {
	ndn.Encodable
}

func (s serializableEncodable) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	wire, e := ndn.Encode(s.Encodable)
	if e != nil {
		return e
	}
	return encodeTo(b, wire)
}

func (serializableEncodable) LayerType() gopacket.LayerType {
	return LayerTypeNDN
}
