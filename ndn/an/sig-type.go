package an

import "strconv"

// SigType assigned numbers.
const (
	SigSha256          = 0x00
	SigSha256WithRsa   = 0x01
	SigSha256WithEcdsa = 0x02
	SigHmacWithSha256  = 0x04
)

// SigTypeString converts SigType to string.
func SigTypeString(sigType uint64) string {
	switch sigType {
	case SigSha256:
		return "SHA256"
	case SigSha256WithRsa:
		return "RSA"
	case SigSha256WithEcdsa:
		return "ECDSA"
	case SigHmacWithSha256:
		return "HMAC"
	}
	return strconv.FormatUint(sigType, 10)
}
