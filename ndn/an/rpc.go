package an

// Local-RPC TLV-TYPE assigned numbers.
// A lead octet below RpcTtApplication is an inline variable reference.
const (
	RpcTtApplication = 0x80
	RpcTtLambda      = 0x81
	RpcTtSequence    = 0x82
	RpcTtInteger     = 0x83
	RpcTtASCII       = 0x84
	RpcTtBinary      = 0x85
)

// RpcIsVariable determines whether a lead octet is an inline variable reference.
func RpcIsVariable(b byte) bool {
	return b < RpcTtApplication
}
