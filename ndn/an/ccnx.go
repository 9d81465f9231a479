package an

// CCNx-TLV 2013 fixed header.
const (
	CcnxVersion       = 0
	CcnxFixedHdrSize  = 8
	CcnxMsgInterest   = 0x01
	CcnxMsgObject     = 0x02
	CcnxTlvHeaderSize = 4
)

// CCNx-TLV 2013 top-level message types.
const (
	CcnxTtInterest = 0x0001
	CcnxTtObject   = 0x0002
)

// CCNx-TLV 2013 global types, valid in every context.
const (
	CcnxTtName = 0x0000
	CcnxTtPad  = 0x00FF
)

// CCNx-TLV 2013 per-hop header types.
const (
	CcnxTtNonce    = 0x0001
	CcnxTtHopLimit = 0x0002
	CcnxTtFragment = 0x0003
)

// CCNx-TLV 2013 name segment types.
const (
	CcnxTtNameUTF8        = 0x0001
	CcnxTtNameBinary      = 0x0002
	CcnxTtNameNonce       = 0x0003
	CcnxTtNameKey         = 0x0004
	CcnxTtNameMeta        = 0x0005
	CcnxTtNameObjHash     = 0x0006
	CcnxTtNamePayloadHash = 0x0007
)

// CCNx-TLV 2013 interest types.
const (
	CcnxTtInterestKeyID   = 0x0001
	CcnxTtInterestObjHash = 0x0002
	CcnxTtInterestScope   = 0x0003
	CcnxTtInterestArt     = 0x0004
	CcnxTtInterestLife    = 0x0005
)

// CCNx-TLV 2013 content object types.
const (
	CcnxTtContentKeyID        = 0x0001
	CcnxTtContentNameAuth     = 0x0002
	CcnxTtContentProtoInfo    = 0x0003
	CcnxTtContentContents     = 0x0004
	CcnxTtContentSigBlock     = 0x0005
	CcnxTtContentSuite        = 0x0006
	CcnxTtContentPubKeyLoc    = 0x0007
	CcnxTtContentKey          = 0x0008
	CcnxTtContentCert         = 0x0009
	CcnxTtContentKeyNameKeyID = 0x000A
	CcnxTtContentObjInfo      = 0x000B
	CcnxTtContentObjType      = 0x000C
	CcnxTtContentCreate       = 0x000D
	CcnxTtContentSigbits      = 0x000E
	CcnxTtContentKeyLocator   = 0x000F
)
