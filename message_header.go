package calamp

import "fmt"

// ServiceType tells the receiver whether the sender expects an acknowledgement.
type ServiceType uint8

const (
	UnacknowledgedRequest ServiceType = 0
	AcknowledgedRequest   ServiceType = 1
	Response              ServiceType = 2
)

var serviceTypeNames = [...]string{
	UnacknowledgedRequest: "UnacknowledgedRequest",
	AcknowledgedRequest:   "AcknowledgedRequest",
	Response:              "Response",
}

func (s ServiceType) String() string {
	if int(s) < len(serviceTypeNames) {
		return serviceTypeNames[s]
	}
	return fmt.Sprintf("ServiceType(%d)", uint8(s))
}

func parseServiceType(b uint8) (ServiceType, error) {
	if int(b) >= len(serviceTypeNames) {
		return 0, newDecodingError(ErrUnsupportedServiceType, b)
	}
	return ServiceType(b), nil
}

// MessageType identifies the body following the message header.
type MessageType uint8

const (
	Null                   MessageType = 0
	AckNak                 MessageType = 1
	EventReport            MessageType = 2
	IDReport               MessageType = 3
	UserData               MessageType = 4
	ApplicationData        MessageType = 5
	ConfigurationParameter MessageType = 6
	UnitRequest            MessageType = 7
	LocateReport           MessageType = 8
	UserDataAccumulators   MessageType = 9
	MiniEventReport        MessageType = 10
	MiniUser               MessageType = 11
)

// messageTypeNames is the single table of known message types; adding a type
// means adding a row here and, if it has a decodable body, a case in
// allocateBody.
var messageTypeNames = [...]string{
	Null:                   "Null",
	AckNak:                 "AckNak",
	EventReport:            "EventReport",
	IDReport:               "IDReport",
	UserData:               "UserData",
	ApplicationData:        "ApplicationData",
	ConfigurationParameter: "ConfigurationParameter",
	UnitRequest:            "UnitRequest",
	LocateReport:           "LocateReport",
	UserDataAccumulators:   "UserDataAccumulators",
	MiniEventReport:        "MiniEventReport",
	MiniUser:               "MiniUser",
}

func (m MessageType) String() string {
	if int(m) < len(messageTypeNames) {
		return messageTypeNames[m]
	}
	return fmt.Sprintf("MessageType(%d)", uint8(m))
}

func parseMessageType(b uint8) (MessageType, error) {
	if int(b) >= len(messageTypeNames) {
		return 0, newDecodingError(ErrUnsupportedMessageType, b)
	}
	return MessageType(b), nil
}

// getMessageType reads one message type byte, shared by the message header
// and the acknowledgement body.
func getMessageType(pd packetDecoder) (MessageType, error) {
	b, err := pd.getUint8()
	if err != nil {
		return 0, err
	}
	return parseMessageType(b)
}

// MessageHeaderLength is the wire size of a message header.
const MessageHeaderLength = 4

// MessageHeader is the fixed header in front of every message body.
type MessageHeader struct {
	ServiceType    ServiceType
	MessageType    MessageType
	SequenceNumber uint16
}

func (h *MessageHeader) decode(pd packetDecoder, _ *Config) error {
	b, err := pd.getUint8()
	if err != nil {
		return err
	}
	if h.ServiceType, err = parseServiceType(b); err != nil {
		return err
	}

	if h.MessageType, err = getMessageType(pd); err != nil {
		return err
	}

	h.SequenceNumber, err = pd.getUint16()
	return err
}

// ParseMessageHeader decodes a message header from the start of buf. It
// returns the header and the number of bytes consumed, always
// MessageHeaderLength on success.
func ParseMessageHeader(buf []byte) (*MessageHeader, int, error) {
	h := new(MessageHeader)
	n, err := decode(buf, h, nil)
	if err != nil {
		return nil, 0, err
	}
	return h, n, nil
}
