package ndn

import (
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// LpFragment is one NDNLP fragment that wraps a slice of a network layer packet.
// It is composed in a single shot; reassembly is not provided.
type LpFragment struct {
	Sequence uint64
	Begin    bool
	End      bool
	Payload  []byte
}

var _ Encodable = LpFragment{}

// Flags returns the BeginEndFields octet.
func (frag LpFragment) Flags() byte {
	var flags byte
	if frag.Begin {
		flags |= an.FragFlagBegin
	}
	if frag.End {
		flags |= an.FragFlagEnd
	}
	return flags
}

// Validate checks fragment fields.
func (frag LpFragment) Validate() error {
	if len(frag.Payload) == 0 {
		return ErrFragment
	}
	return nil
}

// PrependTo implements Encodable interface.
// The wire format is Fragment{NdnlpHeader{Sequence, BeginEndFields}, NdnlpFragment}.
func (frag LpFragment) PrependTo(enc *tlv.Encoder) error {
	if e := frag.Validate(); e != nil {
		return e
	}
	return enc.PrependNested(an.TtFragment, func(enc *tlv.Encoder) error {
		if e := enc.PrependBlob(an.TtNdnlpFragment, frag.Payload); e != nil {
			return e
		}
		return enc.PrependNested(an.TtNdnlpHeader, func(enc *tlv.Encoder) error {
			if e := enc.PrependBlob(an.TtFragBeginEndFlags, []byte{frag.Flags()}); e != nil {
				return e
			}
			return enc.PrependTLNNI(an.TtNdnlpSequence, frag.Sequence)
		})
	})
}

// Fragment splits a network layer packet into LpFragments whose payloads are at most mtu octets.
// Sequence numbers are consecutive starting from firstSeq.
func Fragment(pkt []byte, mtu int, firstSeq uint64) (frags []LpFragment) {
	if mtu <= 0 || len(pkt) == 0 {
		return nil
	}
	for offset := 0; offset < len(pkt); offset += mtu {
		end := offset + mtu
		if end > len(pkt) {
			end = len(pkt)
		}
		frags = append(frags, LpFragment{
			Sequence: firstSeq + uint64(len(frags)),
			Begin:    offset == 0,
			End:      end == len(pkt),
			Payload:  pkt[offset:end],
		})
	}
	return frags
}
