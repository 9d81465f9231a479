package grammar

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// CcnbDocument is the context of top-level CCNB elements.
// Every other CCNB context is the dictionary tag of the enclosing element.
const CcnbDocument Context = 0

// CCNB is the CCNB legacy binary grammar.
// It is keyed by enclosing dictionary tag.
// Every DTAG element is a container; a field-carrying element holds its value in one BLOB or UDATA child.
var CCNB = func() (t *Table) {
	t = newTable(an.SuiteLegacyBinary, false, CcnbDocument)
	add := func(parent, dtag uint64, f Field, vk ValueKind) {
		t.add(Context(parent), dtag, Rule{Next: Context(dtag), Field: f, Value: vk})
	}

	for _, dtag := range []uint64{an.CcnbInterest, an.CcnbContentObject, an.CcnbProtocolDataUnit} {
		add(uint64(CcnbDocument), dtag, FieldNone, Opaque)
	}

	add(an.CcnbInterest, an.CcnbName, FieldName, Opaque)
	add(an.CcnbInterest, an.CcnbMinSuffixComponents, FieldMinSuffix, Decimal)
	add(an.CcnbInterest, an.CcnbMaxSuffixComponents, FieldMaxSuffix, Decimal)
	add(an.CcnbInterest, an.CcnbPublisherPublicKeyDigest, FieldKeyDigest, Opaque)
	add(an.CcnbInterest, an.CcnbExclude, FieldExclude, Opaque)
	add(an.CcnbInterest, an.CcnbChildSelector, FieldChildSelector, Decimal)
	add(an.CcnbInterest, an.CcnbScope, FieldScope, Decimal)
	add(an.CcnbInterest, an.CcnbInterestLifetime, FieldLifetime, Fixed12)
	add(an.CcnbInterest, an.CcnbNonce, FieldNonce, NNI)

	add(an.CcnbName, an.CcnbComponent, FieldNameComponent, Opaque)

	add(an.CcnbContentObject, an.CcnbSignature, FieldSigInfo, Opaque)
	add(an.CcnbContentObject, an.CcnbName, FieldName, Opaque)
	add(an.CcnbContentObject, an.CcnbSignedInfo, FieldNone, Opaque)
	add(an.CcnbContentObject, an.CcnbContent, FieldPayload, Opaque)

	add(an.CcnbSignature, an.CcnbWitness, FieldNone, Opaque)
	add(an.CcnbSignature, an.CcnbSignatureBits, FieldSigValue, Opaque)

	add(an.CcnbSignedInfo, an.CcnbPublisherPublicKeyDigest, FieldKeyDigest, Opaque)
	add(an.CcnbSignedInfo, an.CcnbTimestamp, FieldTimestamp, Fixed12)
	add(an.CcnbSignedInfo, an.CcnbType, FieldContentType, Opaque)
	add(an.CcnbSignedInfo, an.CcnbFreshnessSeconds, FieldFreshness, Seconds)
	add(an.CcnbSignedInfo, an.CcnbFinalBlockID, FieldFinalBlockID, Opaque)
	add(an.CcnbSignedInfo, an.CcnbKeyLocator, FieldKeyLocator, Opaque)

	add(an.CcnbKeyLocator, an.CcnbKeyName, FieldNone, Opaque)
	add(an.CcnbKeyName, an.CcnbName, FieldNone, Opaque)

	add(an.CcnbProtocolDataUnit, an.CcnbInterest, FieldNone, Opaque)
	add(an.CcnbProtocolDataUnit, an.CcnbContentObject, FieldNone, Opaque)
	add(an.CcnbProtocolDataUnit, an.CcnbFragA, FieldNone, Opaque)
	add(an.CcnbProtocolDataUnit, an.CcnbFragB, FieldSequence, NNI)
	add(an.CcnbProtocolDataUnit, an.CcnbFragC, FieldFragFlags, NNI)
	add(an.CcnbProtocolDataUnit, an.CcnbFragD, FieldNone, Opaque)
	add(an.CcnbProtocolDataUnit, an.CcnbFragP, FieldPayload, Opaque)

	add(an.CcnbForwardingEntry, an.CcnbAction, FieldNone, Opaque)
	add(an.CcnbForwardingEntry, an.CcnbName, FieldNone, Opaque)
	add(an.CcnbForwardingEntry, an.CcnbFaceID, FieldNone, Decimal)
	add(an.CcnbForwardingEntry, an.CcnbForwardingFlags, FieldNone, Decimal)
	add(an.CcnbFaceInstance, an.CcnbAction, FieldNone, Opaque)
	add(an.CcnbFaceInstance, an.CcnbFaceID, FieldNone, Decimal)
	add(an.CcnbFaceInstance, an.CcnbIPProto, FieldNone, Decimal)
	add(an.CcnbFaceInstance, an.CcnbHost, FieldNone, Opaque)
	add(an.CcnbFaceInstance, an.CcnbPort, FieldNone, Decimal)
	return t
}()
