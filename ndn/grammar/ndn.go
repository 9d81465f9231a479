package grammar

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// NDN is the NDN-TLV 2014 grammar, including NDNLP fragments.
// It is flat: recursion and meaning depend only on TLV-TYPE.
var NDN = func() (t *Table) {
	t = newTable(an.SuiteNamedDataTLV, true, Leaf)
	container := func(typ uint64, f Field) {
		t.add(Leaf, typ, Rule{Next: Context(typ), Field: f})
	}
	leaf := func(typ uint64, f Field, vk ValueKind) {
		t.add(Leaf, typ, Rule{Field: f, Value: vk})
	}

	container(an.TtInterest, FieldNone)
	container(an.TtData, FieldNone)
	container(an.TtName, FieldName)
	leaf(an.TtNameComponent, FieldNameComponent, Opaque)

	container(an.TtSelectors, FieldNone)
	leaf(an.TtNonce, FieldNonce, NNI)
	leaf(an.TtScope, FieldScope, NNI)
	leaf(an.TtInterestLifetime, FieldLifetime, NNI)
	leaf(an.TtMinSuffixComponents, FieldMinSuffix, NNI)
	leaf(an.TtMaxSuffixComponents, FieldMaxSuffix, NNI)
	leaf(an.TtPublisherPublicKeyLocator, FieldPublisherKeyLocator, Opaque)
	leaf(an.TtExclude, FieldExclude, Opaque)
	leaf(an.TtChildSelector, FieldChildSelector, NNI)
	leaf(an.TtMustBeFresh, FieldMustBeFresh, Flag)
	leaf(an.TtAny, FieldNone, Opaque)

	container(an.TtMetaInfo, FieldNone)
	leaf(an.TtContent, FieldPayload, Opaque)
	container(an.TtSignatureInfo, FieldSigInfo)
	leaf(an.TtSignatureValue, FieldSigValue, Opaque)
	leaf(an.TtContentType, FieldContentType, NNI)
	leaf(an.TtFreshnessPeriod, FieldFreshness, NNI)
	leaf(an.TtFinalBlockID, FieldFinalBlockID, Opaque)
	leaf(an.TtSignatureType, FieldSigType, NNI)
	container(an.TtKeyLocator, FieldKeyLocator)
	leaf(an.TtKeyLocatorDigest, FieldKeyDigest, Opaque)

	container(an.TtFragment, FieldNone)
	container(an.TtNdnlpHeader, FieldNone)
	leaf(an.TtNdnlpSequence, FieldSequence, NNI)
	leaf(an.TtFragBeginEndFlags, FieldFragFlags, NNI)
	leaf(an.TtNdnlpFragment, FieldPayload, Opaque)
	return t
}()
