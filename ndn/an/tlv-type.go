package an

// NDN-TLV TLV-TYPE assigned numbers.
const (
	TtInvalid = 0x00

	TtInterest = 0x05
	TtData     = 0x06

	TtName          = 0x07
	TtNameComponent = 0x08

	TtSelectors        = 0x09
	TtNonce            = 0x0A
	TtScope            = 0x0B
	TtInterestLifetime = 0x0C

	TtMinSuffixComponents       = 0x0D
	TtMaxSuffixComponents       = 0x0E
	TtPublisherPublicKeyLocator = 0x0F
	TtExclude                   = 0x10
	TtChildSelector             = 0x11
	TtMustBeFresh               = 0x12
	TtAny                       = 0x13

	TtMetaInfo       = 0x14
	TtContent        = 0x15
	TtSignatureInfo  = 0x16
	TtSignatureValue = 0x17

	TtContentType     = 0x18
	TtFreshnessPeriod = 0x19
	TtFinalBlockID    = 0x1A

	TtSignatureType    = 0x1B
	TtKeyLocator       = 0x1C
	TtKeyLocatorDigest = 0x1D
)

// NDNLP TLV-TYPE assigned numbers.
const (
	TtFragment          = 0x64
	TtNdnlpHeader       = 0x50
	TtNdnlpSequence     = 0x51
	TtNdnlpFragment     = 0x52
	TtFragBeginEndFlags = 0x5C
)

// NDNLP BeginEndFields flag bits.
const (
	FragFlagBegin = 0x01
	FragFlagEnd   = 0x02
)

// TtString returns the name of an NDN-TLV TLV-TYPE, or empty string if unknown.
func TtString(typ uint64) string {
	return ttNames[typ]
}

var ttNames = map[uint64]string{
	TtInterest:                  "Interest",
	TtData:                      "Data",
	TtName:                      "Name",
	TtNameComponent:             "NameComponent",
	TtSelectors:                 "Selectors",
	TtNonce:                     "Nonce",
	TtScope:                     "Scope",
	TtInterestLifetime:          "InterestLifetime",
	TtMinSuffixComponents:       "MinSuffixComponents",
	TtMaxSuffixComponents:       "MaxSuffixComponents",
	TtPublisherPublicKeyLocator: "PublisherPublicKeyLocator",
	TtExclude:                   "Exclude",
	TtChildSelector:             "ChildSelector",
	TtMustBeFresh:               "MustBeFresh",
	TtAny:                       "Any",
	TtMetaInfo:                  "MetaInfo",
	TtContent:                   "Content",
	TtSignatureInfo:             "SignatureInfo",
	TtSignatureValue:            "SignatureValue",
	TtContentType:               "ContentType",
	TtFreshnessPeriod:           "FreshnessPeriod",
	TtFinalBlockID:              "FinalBlockId",
	TtSignatureType:             "SignatureType",
	TtKeyLocator:                "KeyLocator",
	TtKeyLocatorDigest:          "KeyLocatorDigest",
	TtFragment:                  "Fragment",
	TtNdnlpHeader:               "NdnlpHeader",
	TtNdnlpSequence:             "NdnlpSequence",
	TtNdnlpFragment:             "NdnlpFragment",
	TtFragBeginEndFlags:         "BeginEndFields",
}
