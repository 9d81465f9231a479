package grammar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// Convert interprets a leaf value as an integer.
func (vk ValueKind) Convert(value []byte) (v uint64, e error) {
	switch vk {
	case NNI:
		return tlv.DecodeNNI(value)
	case Flag:
		return 1, nil
	case Decimal, Seconds:
		if v, e = strconv.ParseUint(string(value), 10, 64); e != nil {
			return 0, fmt.Errorf("%w: %q is not a decimal number", tlv.ErrMalformedValue, value)
		}
		if vk == Seconds {
			if v > math.MaxUint64/1000 {
				return 0, fmt.Errorf("%w: %d seconds overflows", tlv.ErrMalformedValue, v)
			}
			v *= 1000
		}
		return v, nil
	case Fixed12:
		if v, e = tlv.DecodeNNI(value); e != nil {
			return 0, e
		}
		return v>>12*1000 + (v&0xFFF)*1000>>12, nil
	}
	return 0, fmt.Errorf("%w: %s value is not scalar", tlv.ErrMalformedValue, vk)
}
