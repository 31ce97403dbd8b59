//go:build !functional

package calamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messageAckFull = concat(optionsFull, messageHeaderAckNak, acknowledgementSuccessful)

func TestDecodeMessage(t *testing.T) {
	m, n, err := DecodeMessage(messageAckFull)
	require.NoError(t, err)

	assert.Equal(t, len(messageAckFull), n)
	assert.True(t, m.Options.Present())
	assert.Equal(t, "4512345678", m.Options.MobileID.Value)
	assert.Equal(t, AckNak, m.Header.MessageType)
	assert.Equal(t, uint16(5), m.Header.SequenceNumber)

	ack := m.Acknowledgement()
	require.NotNil(t, ack)
	assert.Equal(t, [3]byte{1, 2, 3}, ack.AppVersion)
}

func TestDecodeMessageWithoutOptions(t *testing.T) {
	buf := concat(optionsAbsent, messageHeaderAckNak, acknowledgementSuccessful)

	m, n, err := DecodeMessage(buf)
	require.NoError(t, err)

	assert.Equal(t, 11, n)
	assert.False(t, m.Options.Present())
	assert.NotNil(t, m.Acknowledgement())
}

func TestDecodeMessageRawBody(t *testing.T) {
	buf := concat(optionsAbsent, []byte{0x00, byte(EventReport), 0x01, 0x00}, []byte{0xDE, 0xAD})

	m, n, err := DecodeMessage(buf)
	require.NoError(t, err)

	assert.Equal(t, len(buf), n)
	assert.Nil(t, m.Acknowledgement())
	assert.Equal(t, &RawBody{Type: EventReport, Data: []byte{0xDE, 0xAD}}, m.Body)
	assert.Equal(t, EventReport, m.Body.key())
}

func TestDecodeMessageLeavesTrailingBytesAfterAck(t *testing.T) {
	buf := concat(messageAckFull, []byte{0x99})

	_, n, err := DecodeMessage(buf)
	require.NoError(t, err)
	assert.Equal(t, len(messageAckFull), n)
}

func TestDecodeMessageTruncated(t *testing.T) {
	for i := 0; i < len(messageAckFull); i++ {
		m, n, err := DecodeMessage(messageAckFull[:i:i])
		assert.ErrorIs(t, err, ErrInsufficientData, "truncated at %d", i)
		assert.Nil(t, m)
		assert.Zero(t, n)
	}
}

func TestDecodeMessageStages(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		sentinel error
		stage    string
	}{
		{"options", []byte{0xC0, 0x05}, ErrOptionExtensionLength, "options header: "},
		{"header", []byte{0x00, 0x07, 0x01, 0x00, 0x00}, ErrUnsupportedServiceType, "message header: "},
		{"body", concat(optionsAbsent, messageHeaderAckNak, []byte{0x01, 0x09, 0, 0, 0, 0}), ErrUnsupportedAcknowledgementType, "AckNak body: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, err := DecodeMessage(tt.input)
			assert.Nil(t, m)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.stage)
		})
	}
}

// Each part reports exactly its own size, so the remainder always decodes on
// its own from the returned offset.
func TestPartsDecodeFromReturnedOffsets(t *testing.T) {
	off := 0

	_, n, err := ParseOptionsHeader(messageAckFull[off:])
	require.NoError(t, err)
	require.Equal(t, len(optionsFull), n)
	off += n

	h, n, err := ParseMessageHeader(messageAckFull[off:])
	require.NoError(t, err)
	require.Equal(t, MessageHeaderLength, n)
	require.Equal(t, AckNak, h.MessageType)
	off += n

	_, n, err = ParseAcknowledgement(messageAckFull[off:])
	require.NoError(t, err)
	require.Equal(t, AcknowledgementLength, n)
	off += n

	assert.Equal(t, len(messageAckFull), off)
}

func TestAllocateBody(t *testing.T) {
	for code := range messageTypeNames {
		typ := MessageType(code)
		body := allocateBody(typ)
		assert.Equal(t, typ, body.key(), typ.String())
		if typ == AckNak {
			assert.IsType(t, &AcknowledgementMessage{}, body)
		} else {
			assert.IsType(t, &RawBody{}, body)
		}
	}
}
