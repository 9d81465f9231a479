package ndn

import (
	"encoding/binary"
	"fmt"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// ccnxFixedHeader is the CCNx-TLV 2013 fixed header that precedes the per-hop headers and the message.
type ccnxFixedHeader struct {
	Version    uint8
	MsgType    uint8
	PayloadLen uint16
	Reserved   uint16
	HdrLen     uint16
}

func (fh ccnxFixedHeader) total() int {
	return an.CcnxFixedHdrSize + int(fh.HdrLen) + int(fh.PayloadLen)
}

func decodeCcnx(cfg DecoderConfig, pkt *Packet) (e error) {
	wire := pkt.wire
	if len(wire) < an.CcnxFixedHdrSize {
		return tlv.ErrAt(len(wire), tlv.ErrTruncated)
	}
	fh := ccnxFixedHeader{
		Version:    wire[0],
		MsgType:    wire[1],
		PayloadLen: binary.BigEndian.Uint16(wire[2:]),
		Reserved:   binary.BigEndian.Uint16(wire[4:]),
		HdrLen:     binary.BigEndian.Uint16(wire[6:]),
	}
	if fh.Version != an.CcnxVersion {
		return tlv.ErrAt(0, fmt.Errorf("%w: CCNx version %d", tlv.ErrMalformedHeader, fh.Version))
	}
	switch fh.MsgType {
	case an.CcnxMsgInterest:
		pkt.Type = PktInterest
	case an.CcnxMsgObject:
		pkt.Type = PktObject
	default:
		return tlv.ErrAt(1, ErrPacketType)
	}
	if fh.total() > len(wire) {
		return tlv.ErrAt(2, tlv.ErrLengthOverrun)
	}

	eng := newTLVEngine(cfg, pkt, tlv.Fixed16Header, false)
	hop, e := eng.parseChildren(parseContext{
		ctx:    grammar.CcnxHop,
		pos:    an.CcnxFixedHdrSize,
		budget: int(fh.HdrLen),
		depth:  1,
	})
	if e != nil {
		return e
	}

	msgPos := an.CcnxFixedHdrSize + int(fh.HdrLen)
	msg, e := eng.parseChildren(parseContext{
		ctx:    eng.table.Top(),
		pos:    msgPos,
		budget: int(fh.PayloadLen),
	})
	if e != nil {
		return e
	}
	if len(msg) == 0 || msg[0].Type != uint64(fh.MsgType) {
		return tlv.ErrAt(msgPos, ErrPacketType)
	}

	pkt.Raw = Span{0, fh.total()}
	pkt.Root = Node{
		Kind:     NodeElement,
		Type:     uint64(fh.MsgType),
		Known:    true,
		Element:  pkt.Raw,
		Value:    Span{an.CcnxFixedHdrSize, int(fh.HdrLen) + int(fh.PayloadLen)},
		Children: append(hop, msg...),
	}
	return nil
}
