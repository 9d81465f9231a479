package ndn

import (
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

var rpcPacketTypes = map[uint64]PacketType{
	an.RpcTtApplication: PktRPCApplication,
	an.RpcTtLambda:      PktRPCLambda,
	an.RpcTtSequence:    PktRPCSequence,
	an.RpcTtInteger:     PktRPCInteger,
	an.RpcTtASCII:       PktRPCASCII,
	an.RpcTtBinary:      PktRPCBinary,
}

func decodeRPC(cfg DecoderConfig, pkt *Packet) (e error) {
	wire := pkt.wire
	if len(wire) == 0 {
		return tlv.ErrAt(0, tlv.ErrTruncated)
	}
	if an.RpcIsVariable(wire[0]) {
		return tlv.ErrAt(0, ErrPacketType)
	}
	h, e := tlv.DecodeHeader(wire, 0)
	if e != nil {
		return tlv.ErrAt(0, e)
	}
	var ok bool
	if pkt.Type, ok = rpcPacketTypes[h.Type]; !ok {
		return tlv.ErrAt(0, ErrPacketType)
	}

	eng := newTLVEngine(cfg, pkt, tlv.VarNumHeader, true)
	if pkt.Root, e = eng.parseTop(); e != nil {
		return e
	}
	pkt.Raw = pkt.Root.Element

	if pkt.Type == PktRPCApplication && len(pkt.Root.Children) > 0 {
		if first := pkt.Root.Children[0]; first.Kind == NodeElement && first.Type == an.RpcTtInteger {
			v, e := tlv.DecodeNNI(first.Value.Of(wire))
			if e != nil {
				return tlv.ErrAt(first.Value.Offset, e)
			}
			pkt.setScalar(grammar.FieldRPCResult, v)
			pkt.setOpaque(grammar.FieldRPCResult, FieldSpan{first.Element, first.Value})
		}
	}
	return nil
}
