package ndn

import (
	"time"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// Encodable is the interface implemented by an object that can prepend its NDN-TLV encoding to an Encoder.
type Encodable interface {
	PrependTo(enc *tlv.Encoder) error
}

// EncoderConfig contains composer settings.
type EncoderConfig struct {
	// Capacity is the maximum encoded size, truncated to tlv.MaxCapacity.
	// Encoding a larger packet fails with tlv.ErrBufferTooSmall.
	// Default is an.DefaultMTU.
	Capacity int `json:"capacity,omitempty"`
}

func (cfg *EncoderConfig) applyDefaults() {
	if cfg.Capacity <= 0 {
		cfg.Capacity = an.DefaultMTU
	}
}

// Encode composes an Encodable.
func (cfg EncoderConfig) Encode(req Encodable) (wire []byte, e error) {
	cfg.applyDefaults()
	return tlv.Compose(cfg.Capacity, req.PrependTo)
}

// EncodeData composes a Data packet.
// contentOffset is where Content TLV-VALUE starts within wire.
func (cfg EncoderConfig) EncodeData(data Data) (wire []byte, contentOffset int, e error) {
	cfg.applyDefaults()
	var contentTail int
	wire, e = tlv.Compose(cfg.Capacity, func(enc *tlv.Encoder) error {
		return data.prependTo(enc, &contentTail)
	})
	if e != nil {
		return nil, 0, e
	}
	return wire, len(wire) - contentTail, nil
}

// Encode composes an Encodable with default settings.
func Encode(req Encodable) (wire []byte, e error) {
	return EncoderConfig{}.Encode(req)
}

// durationMillis converts a duration to milliseconds, rounding up partial milliseconds.
func durationMillis(d time.Duration) uint64 {
	return uint64((d + time.Millisecond - 1) / time.Millisecond)
}
