package pcsc

import "fmt"

// StatusWord is the SW1-SW2 trailer of a response.
type StatusWord uint16

// Status words returned by PC/SC Part 3 readers for pseudo APDUs.
const (
	SWSuccess          StatusWord = 0x9000
	SWEndOfData        StatusWord = 0x6282
	SWNoInformation    StatusWord = 0x6300
	SWWrongLength      StatusWord = 0x6700
	SWFuncNotSupported StatusWord = 0x6A81
	SWWrongP1P2        StatusWord = 0x6B00
	SWInsNotSupported  StatusWord = 0x6D00
	SWClaNotSupported  StatusWord = 0x6E00
)

var statusWords = map[StatusWord]string{
	SWSuccess:          "Success",
	SWEndOfData:        "Warning: End of data reached before Le bytes",
	SWNoInformation:    "Error: Operation failed, no information given",
	SWWrongLength:      "Error: Wrong length",
	SWFuncNotSupported: "Error: Function not supported",
	SWWrongP1P2:        "Error: Wrong parameters P1-P2",
	SWInsNotSupported:  "Error: Instruction not supported",
	SWClaNotSupported:  "Error: Class not supported",
}

// NewStatusWord creates a StatusWord from SW1 and SW2.
func NewStatusWord(sw1, sw2 byte) StatusWord {
	return StatusWord(uint16(sw1)<<8 | uint16(sw2))
}

// SW1 returns the high byte.
func (sw StatusWord) SW1() byte {
	return byte(sw >> 8)
}

// SW2 returns the low byte.
func (sw StatusWord) SW2() byte {
	return byte(sw)
}

func (sw StatusWord) IsSuccess() bool {
	return sw == SWSuccess
}

func (sw StatusWord) IsWarning() bool {
	sw1 := sw.SW1()
	return sw1 == 0x62 || (sw1 == 0x63 && sw != SWNoInformation)
}

func (sw StatusWord) IsError() bool {
	return !sw.IsSuccess() && !sw.IsWarning()
}

// Verbose returns a human-readable description of the status word.
func (sw StatusWord) Verbose() string {
	if sw.SW1() == 0x6C {
		return fmt.Sprintf("[%04X] Error: Wrong length, correct Le is %d", uint16(sw), sw.SW2())
	}
	if desc, ok := statusWords[sw]; ok {
		return fmt.Sprintf("[%04X] %s", uint16(sw), desc)
	}
	return fmt.Sprintf("[%04X] Unknown Status", uint16(sw))
}

func (sw StatusWord) String() string {
	return fmt.Sprintf("%04X", uint16(sw))
}
