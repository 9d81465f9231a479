package an

// CCNB dictionary tags used by the legacy binary grammar.
const (
	CcnbAny                      = 13
	CcnbName                     = 14
	CcnbComponent                = 15
	CcnbContent                  = 19
	CcnbSignedInfo               = 20
	CcnbInterest                 = 26
	CcnbKeyLocator               = 28
	CcnbKeyName                  = 29
	CcnbSignature                = 37
	CcnbTimestamp                = 39
	CcnbType                     = 40
	CcnbNonce                    = 41
	CcnbScope                    = 42
	CcnbExclude                  = 43
	CcnbInterestLifetime         = 48
	CcnbWitness                  = 53
	CcnbSignatureBits            = 54
	CcnbFreshnessSeconds         = 58
	CcnbFinalBlockID             = 59
	CcnbPublisherPublicKeyDigest = 60
	CcnbContentObject            = 64
	CcnbAction                   = 73
	CcnbFaceID                   = 74
	CcnbIPProto                  = 75
	CcnbHost                     = 76
	CcnbPort                     = 77
	CcnbForwardingFlags          = 79
	CcnbFaceInstance             = 80
	CcnbForwardingEntry          = 81
	CcnbMinSuffixComponents      = 83
	CcnbMaxSuffixComponents      = 84
	CcnbChildSelector            = 85
	CcnbSequenceNumber           = 256

	CcnbProtocolDataUnit = 17702112
	CcnbFragA            = 20653248
	CcnbFragB            = 20653249
	CcnbFragC            = 20653250
	CcnbFragD            = 20653251
	CcnbFragP            = 20653264
)

// CcnbString returns the name of a CCNB dictionary tag, or empty string if unknown.
func CcnbString(dtag uint64) string {
	return ccnbNames[dtag]
}

var ccnbNames = map[uint64]string{
	CcnbAny:                      "Any",
	CcnbName:                     "Name",
	CcnbComponent:                "Component",
	CcnbContent:                  "Content",
	CcnbSignedInfo:               "SignedInfo",
	CcnbInterest:                 "Interest",
	CcnbKeyLocator:               "KeyLocator",
	CcnbKeyName:                  "KeyName",
	CcnbSignature:                "Signature",
	CcnbTimestamp:                "Timestamp",
	CcnbType:                     "Type",
	CcnbNonce:                    "Nonce",
	CcnbScope:                    "Scope",
	CcnbExclude:                  "Exclude",
	CcnbInterestLifetime:         "InterestLifetime",
	CcnbWitness:                  "Witness",
	CcnbSignatureBits:            "SignatureBits",
	CcnbFreshnessSeconds:         "FreshnessSeconds",
	CcnbFinalBlockID:             "FinalBlockID",
	CcnbPublisherPublicKeyDigest: "PublisherPublicKeyDigest",
	CcnbContentObject:            "ContentObject",
	CcnbAction:                   "Action",
	CcnbFaceID:                   "FaceID",
	CcnbIPProto:                  "IPProto",
	CcnbHost:                     "Host",
	CcnbPort:                     "Port",
	CcnbForwardingFlags:          "ForwardingFlags",
	CcnbFaceInstance:             "FaceInstance",
	CcnbForwardingEntry:          "ForwardingEntry",
	CcnbMinSuffixComponents:      "MinSuffixComponents",
	CcnbMaxSuffixComponents:      "MaxSuffixComponents",
	CcnbChildSelector:            "ChildSelector",
	CcnbSequenceNumber:           "SequenceNumber",
	CcnbProtocolDataUnit:         "CCNProtocolDataUnit",
	CcnbFragA:                    "FragA",
	CcnbFragB:                    "FragB",
	CcnbFragC:                    "FragC",
	CcnbFragD:                    "FragD",
	CcnbFragP:                    "FragP",
}
