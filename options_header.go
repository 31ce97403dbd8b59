package calamp

import "fmt"

// Options header flag bits. optionsPresent must be set for any of the others
// to be read.
const (
	optionMobileID     = 1 << 0
	optionMobileIDType = 1 << 1
	optionAuth         = 1 << 2
	optionRouting      = 1 << 3
	optionForwarding   = 1 << 4
	optionRedirection  = 1 << 5
	optionExtension    = 1 << 6
	optionsPresent     = 1 << 7
)

// ForwardingProtocol is the transport a forwarded message should use.
type ForwardingProtocol uint8

const (
	ForwardTCP ForwardingProtocol = 6
	ForwardUDP ForwardingProtocol = 17
)

func (p ForwardingProtocol) String() string {
	if p == ForwardUDP {
		return "UDP"
	}
	return "TCP"
}

// any protocol number other than UDP's means TCP
func parseForwardingProtocol(b uint8) ForwardingProtocol {
	if ForwardingProtocol(b) == ForwardUDP {
		return ForwardUDP
	}
	return ForwardTCP
}

// ForwardingOperation is how the server should treat a forwarded message.
type ForwardingOperation uint8

const (
	Forward       ForwardingOperation = 0
	Proxy         ForwardingOperation = 1
	ForwardLookup ForwardingOperation = 2
)

func (o ForwardingOperation) String() string {
	switch o {
	case Forward:
		return "Forward"
	case Proxy:
		return "Proxy"
	default:
		return "ForwardLookup"
	}
}

func parseForwardingOperation(b uint8) ForwardingOperation {
	switch b {
	case 0:
		return Forward
	case 1:
		return Proxy
	default:
		return ForwardLookup
	}
}

// Forwarding asks the receiving server to pass the message on.
type Forwarding struct {
	IP        string
	Port      uint16
	Protocol  ForwardingProtocol
	Operation ForwardingOperation
}

func (f *Forwarding) String() string {
	return fmt.Sprintf("%s:%d %s %s", f.IP, f.Port, f.Protocol, f.Operation)
}

func (f *Forwarding) decode(pd packetDecoder) (err error) {
	if f.IP, f.Port, err = getAddress(pd); err != nil {
		return err
	}

	b, err := pd.getUint8()
	if err != nil {
		return err
	}
	f.Protocol = parseForwardingProtocol(b)

	if b, err = pd.getUint8(); err != nil {
		return err
	}
	f.Operation = parseForwardingOperation(b)
	return nil
}

// Redirection tells the server where subsequent replies should go.
type Redirection struct {
	IP   string
	Port uint16
}

func (r *Redirection) String() string {
	return fmt.Sprintf("%s:%d", r.IP, r.Port)
}

// getAddress reads four IPv4 octets followed by a big-endian port.
func getAddress(pd packetDecoder) (string, uint16, error) {
	octets, err := pd.getRawBytes(4)
	if err != nil {
		return "", 0, err
	}
	ip := dottedString(octets)

	port, err := pd.getUint16()
	if err != nil {
		return "", 0, err
	}
	return ip, port, nil
}

// OptionsHeader is the optional block in front of the message header. A field
// is non-nil only when its bit was set in Flags. Flags is zero when the header
// was absent.
type OptionsHeader struct {
	Flags          uint8
	MobileID       *MobileID
	Authentication []byte
	Routing        []byte
	Forwarding     *Forwarding
	Redirection    *Redirection
	Extension      *OptionExtension
}

// Present reports whether the options header was on the wire at all.
func (o *OptionsHeader) Present() bool {
	return o.Flags&optionsPresent != 0
}

func (o *OptionsHeader) decode(pd packetDecoder, conf *Config) error {
	flags, err := pd.getUint8()
	if err != nil {
		return err
	}

	// an absent header is left fully empty, whatever the low bits held
	if flags&optionsPresent == 0 {
		return nil
	}
	o.Flags = flags

	extended := conf.Options.MobileID == MobileIDExtended

	if extended {
		err = o.decodeMobileIDExtended(pd)
	} else {
		err = o.decodeMobileIDCompat(pd)
	}
	if err != nil {
		return err
	}

	if o.Flags&optionAuth != 0 {
		if o.Authentication, err = getOptionalBytes(pd); err != nil {
			return err
		}
	}

	if o.Flags&optionRouting != 0 {
		if o.Routing, err = getOptionalBytes(pd); err != nil {
			return err
		}
	}

	if o.Flags&optionForwarding != 0 {
		length, err := pd.getUint8()
		if err != nil {
			return err
		}
		if length > 0 {
			fwd := new(Forwarding)
			if err := fwd.decode(pd); err != nil {
				return err
			}
			o.Forwarding = fwd
		}
	}

	if o.Flags&optionRedirection != 0 {
		// fixed width, no length byte
		redirect := new(Redirection)
		if redirect.IP, redirect.Port, err = getAddress(pd); err != nil {
			return err
		}
		o.Redirection = redirect
	}

	if o.Flags&optionExtension != 0 {
		ext := new(OptionExtension)
		if err := ext.decode(pd, conf); err != nil {
			return err
		}
		o.Extension = ext
	}

	return nil
}

// decodeMobileIDCompat reads the mobile id the way deployed decoders do: the
// type sub-record is only read behind a non-empty id, exactly one type byte is
// consumed whatever its length says, and only an ESN produces a MobileID.
func (o *OptionsHeader) decodeMobileIDCompat(pd packetDecoder) error {
	if o.Flags&optionMobileID == 0 {
		return nil
	}

	length, err := pd.getUint8()
	if err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	raw, err := pd.getBytes(int(length))
	if err != nil {
		return err
	}

	if o.Flags&optionMobileIDType == 0 {
		return nil
	}

	if _, err := pd.getUint8(); err != nil {
		return err
	}
	typ, err := pd.getUint8()
	if err != nil {
		return err
	}

	o.MobileID = newMobileID(MobileIDType(typ), raw, false)
	return nil
}

// decodeMobileIDExtended reads both sub-records whenever their bits are set,
// honours the declared type length and produces every MobileID variant.
func (o *OptionsHeader) decodeMobileIDExtended(pd packetDecoder) error {
	var raw []byte
	if o.Flags&optionMobileID != 0 {
		length, err := pd.getUint8()
		if err != nil {
			return err
		}
		if raw, err = pd.getBytes(int(length)); err != nil {
			return err
		}
	}

	typ := MobileIDTypeOff
	if o.Flags&optionMobileIDType != 0 {
		length, err := pd.getUint8()
		if err != nil {
			return err
		}
		if length > 0 {
			b, err := pd.getUint8()
			if err != nil {
				return err
			}
			typ = MobileIDType(b)
			// skip whatever the type sub-record carries beyond the type byte
			if _, err := pd.getRawBytes(int(length) - 1); err != nil {
				return err
			}
		}
	}

	if o.Flags&optionMobileID != 0 {
		o.MobileID = newMobileID(typ, raw, true)
	}
	return nil
}

// getOptionalBytes reads a length byte followed by that many bytes. A zero
// length yields nil.
func getOptionalBytes(pd packetDecoder) ([]byte, error) {
	length, err := pd.getUint8()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	return pd.getBytes(int(length))
}

// ParseOptionsHeader decodes an options header from the start of buf using the
// default configuration. It returns the header and the number of bytes
// consumed; a buffer whose first byte has the high bit clear yields an empty
// header and a count of 1.
func ParseOptionsHeader(buf []byte) (*OptionsHeader, int, error) {
	return parseOptionsHeader(buf, nil)
}

func parseOptionsHeader(buf []byte, conf *Config) (*OptionsHeader, int, error) {
	o := new(OptionsHeader)
	n, err := decode(buf, o, conf)
	if err != nil {
		return nil, 0, err
	}
	return o, n, nil
}
