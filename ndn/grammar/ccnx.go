package grammar

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// CCNx-TLV 2013 contexts.
const (
	CcnxTopLevel Context = iota + 1
	CcnxHop
	CcnxName
	CcnxInterest
	CcnxContent
)

// CCNx is the CCNx-TLV 2013 grammar.
// It is contextual: the same TLV-TYPE has different meanings in different contexts.
// NameAuth, SigBlock, and KeyLocator share the content object number space.
var CCNx = func() (t *Table) {
	t = newTable(an.SuiteContentTLV, false, CcnxTopLevel)

	t.addGlobal(an.CcnxTtPad, Rule{})

	t.add(CcnxTopLevel, an.CcnxTtInterest, Rule{Next: CcnxInterest})
	t.add(CcnxTopLevel, an.CcnxTtObject, Rule{Next: CcnxContent})

	t.add(CcnxHop, an.CcnxTtNonce, Rule{Field: FieldNonce})
	t.add(CcnxHop, an.CcnxTtHopLimit, Rule{Field: FieldHopLimit, Value: NNI})
	t.add(CcnxHop, an.CcnxTtFragment, Rule{})

	for _, typ := range []uint64{
		an.CcnxTtNameUTF8, an.CcnxTtNameBinary, an.CcnxTtNameNonce, an.CcnxTtNameKey,
		an.CcnxTtNameMeta, an.CcnxTtNameObjHash, an.CcnxTtNamePayloadHash,
	} {
		t.add(CcnxName, typ, Rule{Field: FieldNameComponent})
	}

	t.add(CcnxInterest, an.CcnxTtName, Rule{Next: CcnxName, Field: FieldName})
	t.add(CcnxInterest, an.CcnxTtInterestKeyID, Rule{Field: FieldKeyID})
	t.add(CcnxInterest, an.CcnxTtInterestObjHash, Rule{Field: FieldObjHash})
	t.add(CcnxInterest, an.CcnxTtInterestScope, Rule{Field: FieldScope, Value: NNI})
	t.add(CcnxInterest, an.CcnxTtInterestArt, Rule{})
	t.add(CcnxInterest, an.CcnxTtInterestLife, Rule{Field: FieldLifetime, Value: NNI})

	t.add(CcnxContent, an.CcnxTtName, Rule{Next: CcnxName, Field: FieldName})
	t.add(CcnxContent, an.CcnxTtContentKeyID, Rule{Field: FieldKeyID})
	t.add(CcnxContent, an.CcnxTtContentNameAuth, Rule{Next: CcnxContent})
	t.add(CcnxContent, an.CcnxTtContentProtoInfo, Rule{})
	t.add(CcnxContent, an.CcnxTtContentContents, Rule{Field: FieldPayload})
	t.add(CcnxContent, an.CcnxTtContentSigBlock, Rule{Next: CcnxContent, Field: FieldSigInfo})
	t.add(CcnxContent, an.CcnxTtContentSuite, Rule{Field: FieldSigType, Value: NNI})
	t.add(CcnxContent, an.CcnxTtContentPubKeyLoc, Rule{Field: FieldPublisherKeyLocator})
	t.add(CcnxContent, an.CcnxTtContentKey, Rule{})
	t.add(CcnxContent, an.CcnxTtContentCert, Rule{})
	t.add(CcnxContent, an.CcnxTtContentKeyNameKeyID, Rule{Field: FieldKeyDigest})
	t.add(CcnxContent, an.CcnxTtContentObjInfo, Rule{})
	t.add(CcnxContent, an.CcnxTtContentObjType, Rule{Field: FieldContentType, Value: NNI})
	t.add(CcnxContent, an.CcnxTtContentCreate, Rule{Field: FieldTimestamp, Value: NNI})
	t.add(CcnxContent, an.CcnxTtContentSigbits, Rule{Field: FieldSigValue})
	t.add(CcnxContent, an.CcnxTtContentKeyLocator, Rule{Next: CcnxContent, Field: FieldKeyLocator})
	return t
}()
