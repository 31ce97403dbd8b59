/*
Package calamp decodes the binary messages CalAmp LMU tracking units send over
the air.

A message is an optional options header, a fixed four byte message header and a
body whose layout depends on the message type. Each part has its own parse
function returning the decoded value and the number of bytes consumed, so a
caller can walk a buffer itself:

	opts, n, err := calamp.ParseOptionsHeader(buf)
	...
	hdr, m, err := calamp.ParseMessageHeader(buf[n:])
	...
	if hdr.MessageType == calamp.AckNak {
		ack, _, err := calamp.ParseAcknowledgement(buf[n+m:])
		...
	}

or let a Decoder do the whole walk, with metrics, via Decode, DecodeAll and
DecodeConcurrent.

Decoding never reads outside the given buffer. A truncated buffer fails with
ErrInsufficientData, a field holding an unknown value fails with a
PacketDecodingError wrapping one of the Err* sentinels, and nothing partially
decoded is returned. Everything is safe for concurrent use.

Metrics are exposed through https://github.com/rcrowley/go-metrics library in
a local registry (Config.MetricRegistry).

Decoder related metrics:

	+-----------------------------------+------------+--------------------------------------------+
	| Name                              | Type       | Description                                |
	+-----------------------------------+------------+--------------------------------------------+
	| decoded-messages                  | meter      | Messages decoded successfully              |
	| decoded-messages-for-type-<type>  | meter      | Messages decoded for a given message type  |
	| decode-errors                     | meter      | Messages dropped because decoding failed   |
	| message-size                      | histogram  | Size of the decoded buffers in bytes       |
	+-----------------------------------+------------+--------------------------------------------+
*/
package calamp

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface that calamp writes decoding
// failures to. By default it is set to discard all log messages via io.Discard,
// but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[calamp] ", log.LstdFlags)

// StdLogger is used to log error messages.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
