package ndn

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/multierr"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// Defaults and limits.
const (
	DefaultInterestLifetime = 4000 * time.Millisecond
	MaxInterestLifetime     = math.MaxUint32 * time.Millisecond
	MaxScope                = 2
)

// MustBeFreshFlag enables MustBeFresh in MakeInterest.
const MustBeFreshFlag = tMustBeFresh(true)

type tMustBeFresh bool

// Nonce represents an Interest Nonce.
type Nonce [4]byte

// NewNonce generates a random Nonce.
func NewNonce() (nonce Nonce) {
	rand.Read(nonce[:])
	return nonce
}

// NonceFromUint converts uint32 to Nonce, interpreted as big endian.
func NonceFromUint(n uint32) (nonce Nonce) {
	binary.BigEndian.PutUint32(nonce[:], n)
	return nonce
}

// IsZero returns true if the nonce is zero.
func (nonce Nonce) IsZero() bool {
	return nonce == Nonce{}
}

// ToUint converts Nonce to uint32, interpreted as big endian.
func (nonce Nonce) ToUint() uint32 {
	return binary.BigEndian.Uint32(nonce[:])
}

// Scope limits how far an Interest may travel.
type Scope uint8

// Interest represents an NDN-TLV 2014 Interest packet.
type Interest struct {
	Name        Name
	MustBeFresh bool
	// ChildSelector, MinSuffixComponents, MaxSuffixComponents are omitted when zero.
	ChildSelector       uint64
	MinSuffixComponents uint64
	MaxSuffixComponents uint64
	// Nonce is random if zero.
	Nonce Nonce
	// Lifetime is DefaultInterestLifetime if zero, and is rounded up to milliseconds.
	Lifetime time.Duration
	// Scope is omitted if nil.
	Scope *Scope
}

var _ Encodable = Interest{}

// MakeInterest creates an Interest from flexible arguments.
// Arguments can contain:
//   - string or Name: set Name
//   - MustBeFreshFlag
//   - Nonce
//   - time.Duration: set Lifetime
//   - Scope
func MakeInterest(args ...interface{}) (interest Interest) {
	for _, arg := range args {
		switch a := arg.(type) {
		case string:
			interest.Name = ParseName(a)
		case Name:
			interest.Name = a
		case tMustBeFresh:
			interest.MustBeFresh = bool(a)
		case Nonce:
			interest.Nonce = a
		case time.Duration:
			interest.Lifetime = a
		case Scope:
			scope := a
			interest.Scope = &scope
		default:
			panic(fmt.Errorf("unrecognized argument type %T", a))
		}
	}
	return interest
}

func (interest Interest) String() string {
	s := interest.Name.String()
	if interest.MustBeFresh {
		s += "[F]"
	}
	return s
}

// Validate checks Interest fields, and returns every violation.
func (interest Interest) Validate() (e error) {
	for i, comp := range interest.Name {
		if !comp.Valid() {
			e = multierr.Append(e, fmt.Errorf("component %d: %w", i, ErrComponentType))
		}
	}
	if interest.Lifetime < 0 || interest.Lifetime > MaxInterestLifetime {
		e = multierr.Append(e, ErrLifetime)
	}
	if interest.Scope != nil && *interest.Scope > MaxScope {
		e = multierr.Append(e, ErrScope)
	}
	return e
}

// PrependTo implements Encodable interface.
// Fields are written in the order Name, Selectors, Nonce, InterestLifetime, Scope.
func (interest Interest) PrependTo(enc *tlv.Encoder) error {
	if e := interest.Validate(); e != nil {
		return e
	}
	return enc.PrependNested(an.TtInterest, func(enc *tlv.Encoder) error {
		if interest.Scope != nil {
			if e := enc.PrependTLNNI(an.TtScope, uint64(*interest.Scope)); e != nil {
				return e
			}
		}

		lifetime := interest.Lifetime
		if lifetime == 0 {
			lifetime = DefaultInterestLifetime
		}
		if e := enc.PrependTLNNI(an.TtInterestLifetime, durationMillis(lifetime)); e != nil {
			return e
		}

		nonce := interest.Nonce
		if nonce.IsZero() {
			nonce = NewNonce()
		}
		if e := enc.PrependBlob(an.TtNonce, nonce[:]); e != nil {
			return e
		}

		if e := interest.prependSelectors(enc); e != nil {
			return e
		}
		return interest.Name.PrependTo(enc)
	})
}

func (interest Interest) prependSelectors(enc *tlv.Encoder) error {
	if !interest.MustBeFresh && interest.ChildSelector == 0 &&
		interest.MinSuffixComponents == 0 && interest.MaxSuffixComponents == 0 {
		return nil
	}
	return enc.PrependNested(an.TtSelectors, func(enc *tlv.Encoder) error {
		if interest.MustBeFresh {
			if e := enc.PrependTL(an.TtMustBeFresh, 0); e != nil {
				return e
			}
		}
		for _, f := range []struct {
			typ uint64
			v   uint64
		}{
			{an.TtChildSelector, interest.ChildSelector},
			{an.TtMaxSuffixComponents, interest.MaxSuffixComponents},
			{an.TtMinSuffixComponents, interest.MinSuffixComponents},
		} {
			if f.v == 0 {
				continue
			}
			if e := enc.PrependTLNNI(f.typ, f.v); e != nil {
				return e
			}
		}
		return nil
	})
}
