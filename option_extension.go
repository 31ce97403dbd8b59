package calamp

import "fmt"

// VINLength is the only accepted length of an option extension VIN.
const VINLength = 17

// Option extension flag bits.
const (
	extensionESN        = 1 << 0
	extensionVIN        = 1 << 1
	extensionEncryption = 1 << 2
)

// EncryptionType names the key the device used to derive its encryption.
type EncryptionType uint8

const (
	EncryptionNone     EncryptionType = 0
	EncryptionESN      EncryptionType = 1
	EncryptionIMEIMEID EncryptionType = 2
	EncryptionMobileID EncryptionType = 3
)

var encryptionTypeNames = [...]string{
	EncryptionNone:     "None",
	EncryptionESN:      "ESN",
	EncryptionIMEIMEID: "IMEI/MEID",
	EncryptionMobileID: "MobileID",
}

func (e EncryptionType) String() string {
	if int(e) < len(encryptionTypeNames) {
		return encryptionTypeNames[e]
	}
	return fmt.Sprintf("EncryptionType(%d)", uint8(e))
}

// EncryptionService is the option extension's encryption sub-item.
type EncryptionService struct {
	Type      EncryptionType
	RandomKey [4]byte
}

func (e *EncryptionService) decode(pd packetDecoder) error {
	// the length byte is not checked against anything
	if _, err := pd.getUint8(); err != nil {
		return err
	}

	b, err := pd.getUint8()
	if err != nil {
		return err
	}
	if int(b) >= len(encryptionTypeNames) {
		return newDecodingError(ErrUnsupportedEncryptionType, b)
	}
	e.Type = EncryptionType(b)

	key, err := pd.getRawBytes(len(e.RandomKey))
	if err != nil {
		return err
	}
	copy(e.RandomKey[:], key)
	return nil
}

// OptionExtension is the nested block gated by bit 6 of the options header.
// Each field is nil unless its extension flag was set.
type OptionExtension struct {
	Flags             uint8
	ESN               *string
	VIN               *string
	EncryptionService *EncryptionService
}

func (x *OptionExtension) decode(pd packetDecoder, _ *Config) error {
	length, err := pd.getUint8()
	if err != nil {
		return err
	}
	if length > 1 {
		return newDecodingError(ErrOptionExtensionLength, length)
	}

	if x.Flags, err = pd.getUint8(); err != nil {
		return err
	}

	if x.Flags&extensionESN != 0 {
		n, err := pd.getUint8()
		if err != nil {
			return err
		}
		raw, err := pd.getRawBytes(int(n))
		if err != nil {
			return err
		}
		esn := bcdString(raw)
		x.ESN = &esn
	}

	if x.Flags&extensionVIN != 0 {
		n, err := pd.getUint8()
		if err != nil {
			return err
		}
		if n != VINLength {
			return PacketDecodingError{Err: ErrVINLength, Value: n, Info: fmt.Sprintf("want %d", VINLength)}
		}
		raw, err := pd.getRawBytes(VINLength)
		if err != nil {
			return err
		}
		vin := string(raw)
		x.VIN = &vin
	}

	if x.Flags&extensionEncryption != 0 {
		svc := new(EncryptionService)
		if err := svc.decode(pd); err != nil {
			return err
		}
		x.EncryptionService = svc
	}

	return nil
}
