package calamp

import "fmt"

// AckType is the result code of an acknowledgement.
type AckType uint8

const (
	AckSuccessful           AckType = 0
	AckFailedNoReason       AckType = 1
	AckFailedMessageType    AckType = 2 // unsupported message type
	AckFailedOperation      AckType = 3 // unsupported operation
	AckFailedSerialPort     AckType = 4 // unable to pass to serial port
	AckFailedAuthentication AckType = 5
	AckFailedMobileID       AckType = 6 // mobile id lookup failed
	AckFailedSequenceNumber AckType = 7 // invalid or duplicate sequence number
)

var ackTypeNames = [...]string{
	AckSuccessful:           "Successful",
	AckFailedNoReason:       "FailedNoReason",
	AckFailedMessageType:    "FailedMessageType",
	AckFailedOperation:      "FailedOperation",
	AckFailedSerialPort:     "FailedSerialPort",
	AckFailedAuthentication: "FailedAuthentication",
	AckFailedMobileID:       "FailedMobileID",
	AckFailedSequenceNumber: "FailedSequenceNumber",
}

func (a AckType) String() string {
	if int(a) < len(ackTypeNames) {
		return ackTypeNames[a]
	}
	return fmt.Sprintf("AckType(%d)", uint8(a))
}

// AcknowledgementLength is the wire size of an acknowledgement body.
const AcknowledgementLength = 6

// AcknowledgementMessage is the body of an AckNak message.
type AcknowledgementMessage struct {
	// MessageType is the type of the message being acknowledged.
	MessageType MessageType
	Ack         AckType
	AppVersion  [3]byte
}

// Successful reports whether the acknowledged message was accepted.
func (a *AcknowledgementMessage) Successful() bool {
	return a.Ack == AckSuccessful
}

func (a *AcknowledgementMessage) decode(pd packetDecoder, _ *Config) error {
	var err error
	if a.MessageType, err = getMessageType(pd); err != nil {
		return err
	}

	b, err := pd.getUint8()
	if err != nil {
		return err
	}
	if int(b) >= len(ackTypeNames) {
		return newDecodingError(ErrUnsupportedAcknowledgementType, b)
	}
	a.Ack = AckType(b)

	// spare
	if _, err := pd.getUint8(); err != nil {
		return err
	}

	version, err := pd.getRawBytes(len(a.AppVersion))
	if err != nil {
		return err
	}
	copy(a.AppVersion[:], version)
	return nil
}

func (a *AcknowledgementMessage) key() MessageType {
	return AckNak
}

// ParseAcknowledgement decodes an acknowledgement body from the start of buf,
// the bytes following an AckNak message header. It returns the body and the
// number of bytes consumed, always AcknowledgementLength on success.
func ParseAcknowledgement(buf []byte) (*AcknowledgementMessage, int, error) {
	a := new(AcknowledgementMessage)
	n, err := decode(buf, a, nil)
	if err != nil {
		return nil, 0, err
	}
	return a, n, nil
}
