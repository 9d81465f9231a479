package an

// ContentType assigned numbers.
const (
	ContentBlob = 0x00
	ContentLink = 0x01
	ContentKey  = 0x02
)
