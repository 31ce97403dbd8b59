package calamp

// decoder is the interface that wraps the basic Decode method.
// Anything implementing decoder can be extracted from a byte slice using
// CalAmp's encoding rules.
type decoder interface {
	decode(pd packetDecoder, conf *Config) error
}

// decode reads in from the start of buf and returns the number of bytes it
// consumed. Trailing bytes are left for the caller; in is only meaningful when
// the returned error is nil.
func decode(buf []byte, in decoder, conf *Config) (int, error) {
	if buf == nil {
		return 0, ErrInsufficientData
	}
	if conf == nil {
		conf = defaultConfig
	}

	helper := realDecoder{raw: buf}
	if err := in.decode(&helper, conf); err != nil {
		return 0, err
	}

	return helper.off, nil
}
