package ndn

import (
	"errors"
)

// Simple error conditions.
var (
	ErrUnknownSuite  = errors.New("unknown wire suite")
	ErrPacketType    = errors.New("unknown top-level packet type")
	ErrComponentType = errors.New("NameComponent TLV-TYPE out of range")
	ErrLifetime      = errors.New("InterestLifetime out of range")
	ErrScope         = errors.New("Scope out of range")
	ErrSigType       = errors.New("bad SigType")
	ErrFragment      = errors.New("bad fragment")
)
