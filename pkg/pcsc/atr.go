package pcsc

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gregLibert/nfctarget/pkg/bits"
	"github.com/gregLibert/nfctarget/pkg/tlv"
)

var (
	// ErrATRFormat reports an ATR that ends before its structure says it should.
	ErrATRFormat = errors.New("pcsc: malformed ATR")

	// ErrATRChecksum reports a TCK that does not XOR to zero with T0..Tk.
	ErrATRChecksum = errors.New("pcsc: ATR checksum mismatch")
)

// RIDPCSC is the registered application provider identifier of the PC/SC workgroup.
var RIDPCSC = [5]byte{0xA0, 0x00, 0x00, 0x03, 0x06}

// Standard is the SS byte of a PC/SC Part 3 storage card ATR.
type Standard byte

const (
	StandardNone         Standard = 0x00
	StandardISO14443A3   Standard = 0x03
	StandardISO14443B3   Standard = 0x07
	StandardISO15693_3   Standard = 0x0B
	StandardISO15693_4   Standard = 0x0C
	StandardFeliCa       Standard = 0x11
	StandardLowFrequency Standard = 0x12
)

var standards = map[Standard]string{
	StandardNone:         "No information given",
	0x01:                 "ISO 14443 A, part 1",
	0x02:                 "ISO 14443 A, part 2",
	StandardISO14443A3:   "ISO 14443 A, part 3",
	0x05:                 "ISO 14443 B, part 1",
	0x06:                 "ISO 14443 B, part 2",
	StandardISO14443B3:   "ISO 14443 B, part 3",
	0x09:                 "ISO 15693, part 1",
	0x0A:                 "ISO 15693, part 2",
	StandardISO15693_3:   "ISO 15693, part 3",
	StandardISO15693_4:   "ISO 15693, part 4",
	StandardFeliCa:       "FeliCa",
	StandardLowFrequency: "Low frequency contactless card",
}

func (s Standard) String() string {
	if name, ok := standards[s]; ok {
		return name
	}
	return fmt.Sprintf("Standard(%02X)", byte(s))
}

// CardName is the NN field of a PC/SC Part 3 storage card ATR.
type CardName uint16

var cardNames = map[CardName]string{
	0x0001: "MIFARE Classic 1K",
	0x0002: "MIFARE Classic 4K",
	0x0003: "MIFARE Ultralight",
	0x0026: "MIFARE Mini",
	0x003A: "MIFARE Ultralight C",
	0x003B: "FeliCa",
	0x0036: "MIFARE Plus SL1 2K",
	0x0037: "MIFARE Plus SL1 4K",
	0x0038: "MIFARE Plus SL2 2K",
	0x0039: "MIFARE Plus SL2 4K",
}

func (n CardName) String() string {
	if name, ok := cardNames[n]; ok {
		return name
	}
	return fmt.Sprintf("CardName(%04X)", uint16(n))
}

// StorageCard is the application identifier (tag 4F) that a PC/SC Part 3 reader puts in the
// historical bytes of a storage card ATR.
type StorageCard struct {
	RID      [5]byte
	Standard Standard
	Name     CardName
}

func (sc StorageCard) String() string {
	return fmt.Sprintf("%s, %s", sc.Standard, sc.Name)
}

// UnmarshalTLV implements tlv.Unmarshaler: RID(5) SS(1) NN(2) RFU(4).
func (sc *StorageCard) UnmarshalTLV(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("application identifier too short: %d bytes", len(data))
	}
	copy(sc.RID[:], data[:5])
	sc.Standard = Standard(data[5])
	sc.Name = CardName(uint16(data[6])<<8 | uint16(data[7]))
	return nil
}

// historicalBytes is the BER-TLV content of a category 80 historical byte string.
type historicalBytes struct {
	AID *StorageCard `tlv:"4F"`
}

// ATR is a parsed Answer To Reset (ISO/IEC 7816-3 8.2).
type ATR struct {
	Raw        []byte
	TS         byte
	T0         byte
	Protocols  []int
	Historical []byte
	HasTCK     bool
	Storage    *StorageCard // nil unless the reader describes a PC/SC Part 3 storage card
}

// ParseATR walks T0 and the TDi chain, checks TCK and decodes the historical bytes.
func ParseATR(raw []byte) (*ATR, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrATRFormat, len(raw))
	}
	if raw[0] != 0x3B && raw[0] != 0x3F {
		return nil, fmt.Errorf("%w: unknown convention TS=%02X", ErrATRFormat, raw[0])
	}

	atr := &ATR{Raw: raw, TS: raw[0], T0: raw[1]}

	y, k := bits.Nibbles(raw[1])
	i := 2
	for {
		// Y b1-b4 map to TA, TB, TC, TD
		i += bits.Count(y, 1, 2, 3)
		if !bits.IsSet(y, 4) {
			break
		}
		if i >= len(raw) {
			return nil, fmt.Errorf("%w: interface bytes truncated", ErrATRFormat)
		}
		td := raw[i]
		i++

		proto := int(bits.GetRange(td, 4, 1))
		atr.Protocols = append(atr.Protocols, proto)
		if proto != 0 {
			atr.HasTCK = true
		}
		y = bits.GetRange(td, 8, 5)
	}

	end := i + int(k)
	if end > len(raw) {
		return nil, fmt.Errorf("%w: %d historical bytes announced, %d left", ErrATRFormat, k, len(raw)-i)
	}
	atr.Historical = raw[i:end]

	if atr.HasTCK {
		if end >= len(raw) {
			return nil, fmt.Errorf("%w: TCK missing", ErrATRFormat)
		}
		var x byte
		for _, b := range raw[1 : end+1] {
			x ^= b
		}
		if x != 0 {
			return nil, fmt.Errorf("%w: %02X", ErrATRChecksum, x)
		}
	}

	if len(atr.Historical) > 1 && atr.Historical[0] == 0x80 && atr.Historical[1] == 0x4F {
		var hb historicalBytes
		if err := tlv.Unmarshal(atr.Historical[1:], &hb); err != nil {
			return nil, fmt.Errorf("historical bytes: %w", err)
		}
		if hb.AID != nil && hb.AID.RID == RIDPCSC {
			atr.Storage = hb.AID
		}
	}

	return atr, nil
}

// Describe renders the ATR the same way the nfc records render themselves.
func (a *ATR) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== ATR ===")
	tlv.WriteStructFields(&sb, "ATR", a)

	if len(a.Protocols) > 0 {
		protos := make([]string, len(a.Protocols))
		for i, p := range a.Protocols {
			protos[i] = fmt.Sprintf("T=%d", p)
		}
		sb.WriteString("\n    - ATR.Protocols: " + strings.Join(protos, ", "))
	}
	return sb.String()
}

// IsContactless reports whether the ATR was built by a PC/SC Part 3 reader for a card in
// its field: 3B 8n 80 01.
func (a *ATR) IsContactless() bool {
	return a.TS == 0x3B && bits.GetRange(a.T0, 8, 5) == 0x8 && slices.Equal(a.Protocols, []int{0, 1})
}
