package calamp

import (
	"fmt"
	"strconv"
	"strings"
)

// MobileIDType is the type code carried by the mobile id type sub-record.
type MobileIDType uint8

const (
	MobileIDTypeOff       MobileIDType = 0
	MobileIDTypeESN       MobileIDType = 1
	MobileIDTypeIMEI      MobileIDType = 2 // IMEI or EID of the wireless modem
	MobileIDTypeIMSI      MobileIDType = 3
	MobileIDTypeUser      MobileIDType = 4
	MobileIDTypePhone     MobileIDType = 5
	MobileIDTypeIPAddress MobileIDType = 6
)

var mobileIDTypeNames = [...]string{
	MobileIDTypeOff:       "Off",
	MobileIDTypeESN:       "ESN",
	MobileIDTypeIMEI:      "IMEI/EID",
	MobileIDTypeIMSI:      "IMSI",
	MobileIDTypeUser:      "User",
	MobileIDTypePhone:     "Phone",
	MobileIDTypeIPAddress: "IPAddress",
}

func (t MobileIDType) String() string {
	if int(t) < len(mobileIDTypeNames) {
		return mobileIDTypeNames[t]
	}
	return fmt.Sprintf("MobileIDType(%d)", uint8(t))
}

// MobileID identifies the device or subscriber that sent a message. Type
// selects the variant: Value holds the textual form for ESN, IMEI/EID, IMSI,
// phone and IP address ids, Raw always holds the payload as sent. User ids and
// unknown types only carry Raw.
type MobileID struct {
	Type  MobileIDType
	Value string
	Raw   []byte
}

func (id *MobileID) String() string {
	if id.Value != "" {
		return id.Type.String() + "(" + id.Value + ")"
	}
	return fmt.Sprintf("%s(% x)", id.Type, id.Raw)
}

// newMobileID builds the variant for typ from the id payload. Only an ESN is
// produced unless extended is set.
func newMobileID(typ MobileIDType, raw []byte, extended bool) *MobileID {
	id := &MobileID{Type: typ, Raw: raw}

	switch typ {
	case MobileIDTypeESN:
		id.Value = bcdString(raw)
		return id
	}

	if !extended {
		return nil
	}

	switch typ {
	case MobileIDTypeIMEI, MobileIDTypeIMSI, MobileIDTypePhone:
		id.Value = strings.TrimRight(bcdString(raw), bcdPadding)
	case MobileIDTypeIPAddress:
		id.Value = dottedString(raw)
	}
	return id
}

// bcdPadding is how a 0xF filler nibble reads after BCD expansion.
var bcdPadding = string(rune('0' + 0xF))

// bcdString expands every byte into two characters, high nibble first, each
// nibble mapped to '0'+nibble. Nibbles above 9 are not rejected.
func bcdString(raw []byte) string {
	out := make([]byte, 0, len(raw)*2)
	for _, b := range raw {
		out = append(out, '0'+(b>>4), '0'+(b&0x0F))
	}
	return string(out)
}

// dottedString joins octets with dots, e.g. 10.0.0.1.
func dottedString(octets []byte) string {
	var sb strings.Builder
	for i, b := range octets {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}
