package nfc

import (
	"fmt"
	"strconv"
)

// ModulationType is the discriminant of a Target. Values match the native driver's
// nfc_modulation_type enumeration.
type ModulationType int

// NFC modulation types
const (
	ISO14443a ModulationType = iota + 1
	Jewel                    // Innovision Jewel / Topaz
	ISO14443b
	ISO14443bi   // pre-ISO14443B aka ISO/IEC 14443 B' or Type B'
	ISO14443b2sr // ISO14443-2B ST SRx
	ISO14443b2ct // ISO14443-2B ASK CTx
	Felica
	DEP             // NFCIP-1 Data Exchange Protocol
	Barcode         // Thinfilm NFC Barcode
	ISO14443biClass // HID iClass 14443B mode
)

var modulationTypes = [...]string{
	0:               "Undefined",
	ISO14443a:       "ISO14443a",
	Jewel:           "Jewel",
	ISO14443b:       "ISO14443b",
	ISO14443bi:      "ISO14443bi",
	ISO14443b2sr:    "ISO14443b2sr",
	ISO14443b2ct:    "ISO14443b2ct",
	Felica:          "Felica",
	DEP:             "DEP",
	Barcode:         "Barcode",
	ISO14443biClass: "ISO14443biClass",
}

// String returns the name of the modulation type, or its number if unknown.
func (m ModulationType) String() string {
	if 0 <= m && int(m) < len(modulationTypes) {
		return modulationTypes[m]
	}
	return strconv.Itoa(int(m))
}

// Known reports whether m is one of the supported technologies.
func (m ModulationType) Known() bool {
	return m >= ISO14443a && m <= ISO14443biClass
}

// BaudRate is the bitrate shared by every technology. Values match nfc_baud_rate.
type BaudRate int

// NFC baud rates. Undefined is also a valid baud rate.
const (
	Nbr106 BaudRate = iota + 1
	Nbr212
	Nbr424
	Nbr847
)

var baudRates = [...]string{
	0:      "Undefined",
	Nbr106: "106",
	Nbr212: "212",
	Nbr424: "424",
	Nbr847: "847",
}

func (b BaudRate) String() string {
	if b == 0 {
		return baudRates[0]
	}
	if 0 < b && int(b) < len(baudRates) {
		return baudRates[b] + " kbps"
	}
	return strconv.Itoa(int(b))
}

// Undefined is the zero BaudRate and the zero DEPMode.
const Undefined = 0

// DEPMode is the NFCIP-1 active/passive mode of a DEP target.
type DEPMode int

const (
	Passive DEPMode = iota + 1
	Active
)

func (d DEPMode) String() string {
	switch d {
	case Undefined:
		return "Undefined"
	case Passive:
		return "Passive"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("DEPMode(%d)", int(d))
	}
}

// Modulation pairs a modulation type with a baud rate, like nfc_modulation.
type Modulation struct {
	Type     ModulationType
	BaudRate BaudRate
}

// String gives e.g. "ISO14443a (106 kbps)".
func (m Modulation) String() string {
	return m.Type.String() + " (" + m.BaudRate.String() + ")"
}

// GoString gives a Go expression for m, e.g.
// nfc.Modulation{Type: nfc.ISO14443a, BaudRate: nfc.Nbr106}.
func (m Modulation) GoString() string {
	typeStr := strconv.Itoa(int(m.Type))
	if 0 < m.Type && int(m.Type) < len(modulationTypes) {
		typeStr = "nfc." + modulationTypes[m.Type]
	}

	var brStr string
	switch {
	case m.BaudRate == 0:
		brStr = "nfc.Undefined"
	case 0 < m.BaudRate && int(m.BaudRate) < len(baudRates):
		brStr = "nfc.Nbr" + baudRates[m.BaudRate]
	default:
		brStr = strconv.Itoa(int(m.BaudRate))
	}

	return "nfc.Modulation{Type: " + typeStr + ", BaudRate: " + brStr + "}"
}
