package grammar

import "strconv"

// Field is the meaning of an element.
type Field uint8

// Field values.
const (
	FieldNone Field = iota
	FieldName
	FieldNameComponent
	FieldNonce
	FieldScope
	FieldLifetime
	FieldMinSuffix
	FieldMaxSuffix
	FieldChildSelector
	FieldMustBeFresh
	FieldPublisherKeyLocator
	FieldExclude
	FieldContentType
	FieldFreshness
	FieldFinalBlockID
	FieldSigType
	FieldSigInfo
	FieldKeyLocator
	FieldKeyDigest
	FieldSigValue
	FieldPayload
	FieldSequence
	FieldFragFlags
	FieldHopLimit
	FieldKeyID
	FieldObjHash
	FieldTimestamp
	FieldRPCResult
	nFields
)

var fieldNames = [nFields]string{
	FieldNone:                "",
	FieldName:                "name",
	FieldNameComponent:       "component",
	FieldNonce:               "nonce",
	FieldScope:               "scope",
	FieldLifetime:            "lifetime",
	FieldMinSuffix:           "minSuffix",
	FieldMaxSuffix:           "maxSuffix",
	FieldChildSelector:       "childSelector",
	FieldMustBeFresh:         "mustBeFresh",
	FieldPublisherKeyLocator: "publisherKeyLocator",
	FieldExclude:             "exclude",
	FieldContentType:         "contentType",
	FieldFreshness:           "freshness",
	FieldFinalBlockID:        "finalBlockId",
	FieldSigType:             "sigType",
	FieldSigInfo:             "sigInfo",
	FieldKeyLocator:          "keyLocator",
	FieldKeyDigest:           "keyDigest",
	FieldSigValue:            "sigValue",
	FieldPayload:             "payload",
	FieldSequence:            "sequence",
	FieldFragFlags:           "fragFlags",
	FieldHopLimit:            "hopLimit",
	FieldKeyID:               "keyId",
	FieldObjHash:             "objHash",
	FieldTimestamp:           "timestamp",
	FieldRPCResult:           "rpcResult",
}

// Fields returns every Field except FieldNone.
func Fields() []Field {
	list := make([]Field, 0, nFields-1)
	for f := FieldNone + 1; f < nFields; f++ {
		list = append(list, f)
	}
	return list
}

func (f Field) String() string {
	if f < nFields {
		return fieldNames[f]
	}
	return strconv.Itoa(int(f))
}

// MarshalText implements encoding.TextMarshaler interface.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// IsScalar determines whether the field is normally carried as an integer.
func (f Field) IsScalar() bool {
	switch f {
	case FieldNonce, FieldScope, FieldLifetime, FieldMinSuffix, FieldMaxSuffix, FieldChildSelector, FieldMustBeFresh,
		FieldContentType, FieldFreshness, FieldSigType, FieldSequence, FieldFragFlags, FieldHopLimit,
		FieldTimestamp, FieldRPCResult:
		return true
	}
	return false
}

// ValueKind is the interpretation of a leaf value.
type ValueKind uint8

// ValueKind values.
const (
	// Opaque is an octet string.
	Opaque ValueKind = iota
	// NNI is a big-endian NonNegativeInteger.
	NNI
	// Flag is a presence flag; the value is 1 whenever the element appears.
	Flag
	// Decimal is an unsigned decimal integer in text.
	Decimal
	// Fixed12 is a big-endian binary number of seconds with 12 fraction bits, converted to milliseconds.
	Fixed12
	// Seconds is an unsigned decimal number of seconds in text, converted to milliseconds.
	Seconds
)

func (vk ValueKind) String() string {
	switch vk {
	case Opaque:
		return "opaque"
	case NNI:
		return "nni"
	case Flag:
		return "flag"
	case Decimal:
		return "decimal"
	case Fixed12:
		return "fixed12"
	case Seconds:
		return "seconds"
	}
	return strconv.Itoa(int(vk))
}

// IsScalar determines whether values of this kind convert to an integer.
func (vk ValueKind) IsScalar() bool {
	return vk != Opaque
}
