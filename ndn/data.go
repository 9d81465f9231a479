package ndn

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// ContentType is the type of Data content.
type ContentType uint64

// SigType is the signature algorithm in SignatureInfo.
type SigType uint64

func (t SigType) String() string {
	return an.SigTypeString(uint64(t))
}

// FinalBlock sets Data FinalBlockId in MakeData, as a segment number.
type FinalBlock uint64

// Data represents an NDN-TLV 2014 Data packet.
type Data struct {
	Name            Name
	ContentType     ContentType
	FreshnessPeriod time.Duration
	// FinalBlockID is a segment number, written as a marked name component; omitted if nil.
	FinalBlockID *uint64
	Content      []byte
	SigType      SigType
	// KeyLocator is a name in SignatureInfo; omitted if empty.
	KeyLocator Name
	SigValue   []byte
}

var _ Encodable = Data{}

// MakeData creates a Data from flexible arguments.
// Arguments can contain:
//   - string or Name: set Name
//   - ContentType
//   - time.Duration: set FreshnessPeriod
//   - FinalBlock
//   - []byte: set Content
//   - SigType
//
// SigType defaults to an.SigSha256WithRsa.
func MakeData(args ...interface{}) (data Data) {
	data.SigType = an.SigSha256WithRsa
	for _, arg := range args {
		switch a := arg.(type) {
		case string:
			data.Name = ParseName(a)
		case Name:
			data.Name = a
		case ContentType:
			data.ContentType = a
		case time.Duration:
			data.FreshnessPeriod = a
		case FinalBlock:
			v := uint64(a)
			data.FinalBlockID = &v
		case []byte:
			data.Content = a
		case SigType:
			data.SigType = a
		default:
			panic(fmt.Errorf("unrecognized argument type %T", a))
		}
	}
	return data
}

func (data Data) String() string {
	return data.Name.String()
}

// Validate checks Data fields, and returns every violation.
func (data Data) Validate() (e error) {
	for i, comp := range data.Name {
		if !comp.Valid() {
			e = multierr.Append(e, fmt.Errorf("component %d: %w", i, ErrComponentType))
		}
	}
	for i, comp := range data.KeyLocator {
		if !comp.Valid() {
			e = multierr.Append(e, fmt.Errorf("KeyLocator component %d: %w", i, ErrComponentType))
		}
	}
	if data.FreshnessPeriod < 0 {
		e = multierr.Append(e, fmt.Errorf("FreshnessPeriod %v is negative", data.FreshnessPeriod))
	}
	switch data.SigType {
	case an.SigSha256, an.SigSha256WithRsa, an.SigSha256WithEcdsa, an.SigHmacWithSha256:
	default:
		e = multierr.Append(e, ErrSigType)
	}
	return e
}

// PrependTo implements Encodable interface.
// Fields are written in the order Name, MetaInfo, Content, SignatureInfo, SignatureValue.
func (data Data) PrependTo(enc *tlv.Encoder) error {
	var contentTail int
	return data.prependTo(enc, &contentTail)
}

// prependTo composes Data, and saves the distance from Content TLV-VALUE to the end of buffer.
func (data Data) prependTo(enc *tlv.Encoder, contentTail *int) error {
	if e := data.Validate(); e != nil {
		return e
	}
	return enc.PrependNested(an.TtData, func(enc *tlv.Encoder) error {
		if e := enc.PrependBlob(an.TtSignatureValue, data.SigValue); e != nil {
			return e
		}
		if e := data.prependSigInfo(enc); e != nil {
			return e
		}
		if e := enc.PrependBytes(data.Content); e != nil {
			return e
		}
		*contentTail = enc.Len()
		if e := enc.PrependTL(an.TtContent, uint64(len(data.Content))); e != nil {
			return e
		}
		if e := data.prependMetaInfo(enc); e != nil {
			return e
		}
		return data.Name.PrependTo(enc)
	})
}

func (data Data) prependMetaInfo(enc *tlv.Encoder) error {
	return enc.PrependNested(an.TtMetaInfo, func(enc *tlv.Encoder) error {
		if data.FinalBlockID != nil {
			e := enc.PrependNested(an.TtFinalBlockID, func(enc *tlv.Encoder) error {
				return enc.PrependMarkedNNI(an.TtNameComponent, byte(an.MarkerSegmentNumber), *data.FinalBlockID)
			})
			if e != nil {
				return e
			}
		}
		if data.FreshnessPeriod > 0 {
			if e := enc.PrependTLNNI(an.TtFreshnessPeriod, durationMillis(data.FreshnessPeriod)); e != nil {
				return e
			}
		}
		if data.ContentType != an.ContentBlob {
			if e := enc.PrependTLNNI(an.TtContentType, uint64(data.ContentType)); e != nil {
				return e
			}
		}
		return nil
	})
}

func (data Data) prependSigInfo(enc *tlv.Encoder) error {
	return enc.PrependNested(an.TtSignatureInfo, func(enc *tlv.Encoder) error {
		if len(data.KeyLocator) > 0 {
			if e := enc.PrependNested(an.TtKeyLocator, data.KeyLocator.PrependTo); e != nil {
				return e
			}
		}
		return enc.PrependTLNNI(an.TtSignatureType, uint64(data.SigType))
	})
}
