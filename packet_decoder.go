package calamp

// packetDecoder is the interface providing helpers for reading with CalAmp's
// encoding rules. Every read is bounds checked and fails with
// ErrInsufficientData, without consuming anything, when the buffer is short.
type packetDecoder interface {
	// Primitives
	getUint8() (uint8, error)
	getUint16() (uint16, error)

	// Collections
	getRawBytes(length int) ([]byte, error)
	getBytes(length int) ([]byte, error)

	// Subsets
	remaining() int
	offset() int
}
