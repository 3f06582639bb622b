// Package pcsc reads contactless cards through a PC/SC reader and turns what it learns into
// nfc records.
//
// PC/SC Part 3 readers hide the RF protocol behind pseudo APDUs (class FF). The reader builds
// an ATR for the card in the field: for storage cards its historical bytes carry a standard
// byte naming the technology and a card name. GET DATA returns the UID, PUPI or IDm.
//
// The Client handles the only transport behavior a reader exposes for these commands:
//
// "6C XX" (Wrong Length): the reader wants Le = XX. The client re-sends the command with the
// suggested Le and records both exchanges in the returned Trace.
package pcsc

import (
	"fmt"
)

// Card abstracts the reader connection. *scard.Card satisfies it.
type Card interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Client sends pseudo APDUs to a Card.
type Client struct {
	Card Card
}

// NewClient creates a new Client instance.
func NewClient(card Card) *Client {
	return &Client{Card: card}
}

// Send transmits a command and follows 6Cxx length corrections.
func (c *Client) Send(cmd *Command) (Trace, error) {
	rawCmd, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding error: %w", err)
	}

	rawResp, err := c.Card.Transmit(rawCmd)
	if err != nil {
		return nil, fmt.Errorf("transmission error: %w", err)
	}

	resp, err := ParseResponse(rawResp)
	if err != nil {
		return nil, err
	}

	trace := Trace{{Command: cmd, Response: resp}}

	if resp.Status.SW1() == 0x6C {
		le := int(resp.Status.SW2())
		if le == 0 {
			le = MaxShortLe
		}
		if le == cmd.Le {
			return trace, nil
		}

		retry := *cmd
		retry.Le = le

		subTrace, err := c.Send(&retry)
		if err != nil {
			return trace, err
		}
		trace = append(trace, subTrace...)
	}

	return trace, nil
}
