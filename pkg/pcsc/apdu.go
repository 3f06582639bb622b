package pcsc

import (
	"bytes"
	"fmt"
)

// Pseudo APDUs understood by PC/SC Part 3 readers. They always use the proprietary class FF
// and short length encoding.
const (
	ClassReader = 0xFF

	InsGetData = 0xCA

	// MaxShortLc is the largest data field of a short APDU.
	MaxShortLc = 255
	// MaxShortLe is the largest expected length of a short APDU, encoded as 00.
	MaxShortLe = 256
)

// Command is a pseudo APDU addressed to the reader.
type Command struct {
	Ins    byte
	P1, P2 byte
	Data   []byte
	Le     int // expected response length, 0 for none
}

// GetData is the GET DATA command. p1 selects the data object: 00 for the card identifier,
// 01 for the historical bytes of the ATS.
func GetData(p1 byte) *Command {
	return &Command{Ins: InsGetData, P1: p1, Le: MaxShortLe}
}

// Bytes encodes the command as a short C-APDU.
func (c *Command) Bytes() ([]byte, error) {
	if len(c.Data) > MaxShortLc {
		return nil, fmt.Errorf("data field of %d bytes does not fit a short APDU", len(c.Data))
	}
	if c.Le < 0 || c.Le > MaxShortLe {
		return nil, fmt.Errorf("Le %d does not fit a short APDU", c.Le)
	}

	buf := new(bytes.Buffer)
	buf.Write([]byte{ClassReader, c.Ins, c.P1, c.P2})

	if len(c.Data) > 0 {
		buf.WriteByte(byte(len(c.Data)))
		buf.Write(c.Data)
	}

	if c.Le > 0 {
		// 256 wraps to 00
		buf.WriteByte(byte(c.Le))
	}

	return buf.Bytes(), nil
}

func (c *Command) String() string {
	return fmt.Sprintf("INS: %02X | P1: %02X, P2: %02X | Lc: %d | Le: %d", c.Ins, c.P1, c.P2, len(c.Data), c.Le)
}

// Response is the reply of the reader (R-APDU).
type Response struct {
	Data   []byte
	Status StatusWord
}

// ParseResponse splits raw bytes into data and status word. It needs at least SW1 SW2.
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("response too short: length %d", len(raw))
	}

	n := len(raw) - 2
	return &Response{
		Data:   raw[:n],
		Status: NewStatusWord(raw[n], raw[n+1]),
	}, nil
}

func (r *Response) String() string {
	return fmt.Sprintf("Data (%d bytes) | Status: %s", len(r.Data), r.Status.Verbose())
}

// Transaction is one command and the response it got.
type Transaction struct {
	Command  *Command
	Response *Response
}

// IsSuccess reports whether the response status is 9000. It is false without a response.
func (t *Transaction) IsSuccess() bool {
	if t.Response == nil {
		return false
	}
	return t.Response.Status.IsSuccess()
}

// Trace is every transaction needed for one logical command, in order.
type Trace []Transaction

// Last returns the final transaction, or nil for an empty trace.
func (t Trace) Last() *Transaction {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// IsSuccess checks the final transaction only.
func (t Trace) IsSuccess() bool {
	last := t.Last()
	if last == nil {
		return false
	}
	return last.IsSuccess()
}
