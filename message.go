package calamp

// Body is a decoded message body.
type Body interface {
	decoder
	key() MessageType
}

// RawBody holds the bytes of a body this package has no decoder for.
type RawBody struct {
	Type MessageType
	Data []byte
}

func (r *RawBody) decode(pd packetDecoder, _ *Config) (err error) {
	r.Data, err = pd.getBytes(pd.remaining())
	return err
}

func (r *RawBody) key() MessageType {
	return r.Type
}

// allocateBody returns an empty body for message type t.
func allocateBody(t MessageType) Body {
	switch t {
	case AckNak:
		return &AcknowledgementMessage{}
	}
	return &RawBody{Type: t}
}

// Message is a whole decoded message. Options is never nil; check
// Options.Present to see whether the header was sent.
type Message struct {
	Options *OptionsHeader
	Header  *MessageHeader
	Body    Body
}

// Acknowledgement returns the body of an AckNak message, or nil.
func (m *Message) Acknowledgement() *AcknowledgementMessage {
	ack, _ := m.Body.(*AcknowledgementMessage)
	return ack
}

func (m *Message) decode(pd packetDecoder, conf *Config) error {
	options := new(OptionsHeader)
	if err := options.decode(pd, conf); err != nil {
		return stageError{"options header", err}
	}

	header := new(MessageHeader)
	if err := header.decode(pd, conf); err != nil {
		return stageError{"message header", err}
	}

	body := allocateBody(header.MessageType)
	if err := body.decode(pd, conf); err != nil {
		return stageError{header.MessageType.String() + " body", err}
	}

	m.Options = options
	m.Header = header
	m.Body = body
	return nil
}

// DecodeMessage decodes options header, message header and body from buf
// using the default configuration, returning the message and the number of
// bytes consumed.
func DecodeMessage(buf []byte) (*Message, int, error) {
	return decodeMessage(buf, nil)
}

func decodeMessage(buf []byte, conf *Config) (*Message, int, error) {
	m := new(Message)
	n, err := decode(buf, m, conf)
	if err != nil {
		return nil, 0, err
	}
	return m, n, nil
}
