package calamp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrInsufficientData is returned when decoding and the packet is truncated. A
// caller reassembling messages from partial transport reads may wait for more
// bytes; anyone else should drop the buffer.
var ErrInsufficientData = errors.New("calamp: insufficient data to decode message, more bytes expected")

// ErrUnsupportedMessageType is returned when a message type byte is outside the
// known message types.
var ErrUnsupportedMessageType = errors.New("calamp: unsupported message type")

// ErrUnsupportedServiceType is returned when a service type byte is outside the
// known service types.
var ErrUnsupportedServiceType = errors.New("calamp: unsupported service type")

// ErrUnsupportedAcknowledgementType is returned when an acknowledgement body
// carries an unknown ack code.
var ErrUnsupportedAcknowledgementType = errors.New("calamp: unsupported acknowledgement type")

// ErrOptionExtensionLength is returned when the option extension length byte is
// larger than one.
var ErrOptionExtensionLength = errors.New("calamp: invalid option extension length")

// ErrVINLength is returned when an option extension VIN is not 17 bytes long.
var ErrVINLength = errors.New("calamp: invalid vehicle identification number length")

// ErrUnsupportedEncryptionType is returned when the option extension encryption
// service names an unknown encryption type.
var ErrUnsupportedEncryptionType = errors.New("calamp: unsupported encryption type")

// PacketDecodingError is returned when a field holds a value the decoder does
// not accept. Err is one of the sentinels above and Value the offending byte.
type PacketDecodingError struct {
	Err   error
	Value uint8
	Info  string
}

func (err PacketDecodingError) Error() string {
	if err.Info != "" {
		return fmt.Sprintf("%s: 0x%02x (%s)", err.Err, err.Value, err.Info)
	}
	return fmt.Sprintf("%s: 0x%02x", err.Err, err.Value)
}

func (err PacketDecodingError) Unwrap() error {
	return err.Err
}

func newDecodingError(sentinel error, value uint8) PacketDecodingError {
	return PacketDecodingError{Err: sentinel, Value: value}
}

// ConfigurationError is the type of error returned from a constructor (e.g.
// NewDecoder) when the specified configuration is invalid.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "calamp: invalid configuration (" + string(err) + ")"
}

// MessageError reports the failure of one buffer within a batch decode.
type MessageError struct {
	Index int
	Err   error
}

func (err *MessageError) Error() string {
	return fmt.Sprintf("message %d: %v", err.Index, err.Err)
}

func (err *MessageError) Unwrap() error {
	return err.Err
}

// stageError names the part of a message that failed to decode.
type stageError struct {
	stage string
	err   error
}

func (err stageError) Error() string {
	return err.stage + ": " + err.err.Error()
}

func (err stageError) Unwrap() error {
	return err.err
}

// MultiErrorFormat formats a batch of message errors one per line.
func MultiErrorFormat(es []error) string {
	if len(es) == 1 {
		return es[0].Error()
	}

	points := make([]string, len(es))
	for i, err := range es {
		points[i] = err.Error()
	}

	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n",
		len(es), strings.Join(points, "\n\t"))
}

func newBatchError(errs []error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = MultiErrorFormat
	return merr
}
