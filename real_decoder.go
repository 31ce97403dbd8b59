package calamp

import "encoding/binary"

type realDecoder struct {
	raw []byte
	off int
}

// primitives

func (rd *realDecoder) getUint8() (uint8, error) {
	if rd.remaining() < 1 {
		return 0, ErrInsufficientData
	}
	tmp := rd.raw[rd.off]
	rd.off++
	return tmp, nil
}

func (rd *realDecoder) getUint16() (uint16, error) {
	if rd.remaining() < 2 {
		return 0, ErrInsufficientData
	}
	tmp := binary.BigEndian.Uint16(rd.raw[rd.off:])
	rd.off += 2
	return tmp, nil
}

// collections

// getRawBytes returns the next length bytes without copying them. The result
// aliases the input buffer and must not outlive it unless copied.
func (rd *realDecoder) getRawBytes(length int) ([]byte, error) {
	if length < 0 || rd.remaining() < length {
		return nil, ErrInsufficientData
	}

	start := rd.off
	rd.off += length
	return rd.raw[start:rd.off], nil
}

// getBytes returns a copy of the next length bytes.
func (rd *realDecoder) getBytes(length int) ([]byte, error) {
	tmp, err := rd.getRawBytes(length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, tmp)
	return out, nil
}

// subsets

func (rd *realDecoder) remaining() int {
	return len(rd.raw) - rd.off
}

func (rd *realDecoder) offset() int {
	return rd.off
}
