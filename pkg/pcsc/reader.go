package pcsc

import (
	"errors"
	"fmt"

	"github.com/gregLibert/nfctarget/pkg/nfc"
)

// ErrUnsupportedCard reports a card ReadTarget cannot describe as an nfc record.
var ErrUnsupportedCard = errors.New("pcsc: unsupported card")

// GetUID asks the reader for the identifier of the card in the field: UID for ISO14443A,
// PUPI for ISO14443B, IDm for FeliCa.
func GetUID(client *Client) ([]byte, error) {
	trace, err := client.Send(GetData(0x00))
	if err != nil {
		return nil, fmt.Errorf("GET DATA failed: %w", err)
	}

	last := trace.Last()
	if !last.IsSuccess() {
		return nil, fmt.Errorf("GET DATA failed with status: %s", last.Response.Status.Verbose())
	}
	return last.Response.Data, nil
}

// type A answers of well-known storage cards, keyed by their PC/SC card name
var iso14443aAnswers = map[CardName]struct {
	atqa [2]byte
	sak  byte
}{
	0x0001: {[2]byte{0x00, 0x04}, 0x08},
	0x0002: {[2]byte{0x00, 0x02}, 0x18},
	0x0003: {[2]byte{0x00, 0x44}, 0x00},
	0x0026: {[2]byte{0x00, 0x04}, 0x09},
	0x003A: {[2]byte{0x00, 0x44}, 0x00},
}

// ReadTarget identifies the storage card described by atr and reads its identifier.
// Only ISO14443A part 3, ISO14443B part 3 and FeliCa storage cards are supported.
func ReadTarget(card Card, atr *ATR) (nfc.Record, error) {
	if atr.Storage == nil {
		return nil, fmt.Errorf("%w: ATR %X does not describe a storage card", ErrUnsupportedCard, atr.Raw)
	}

	switch atr.Storage.Standard {
	case StandardISO14443A3, StandardISO14443B3, StandardFeliCa:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCard, atr.Storage)
	}

	uid, err := GetUID(NewClient(card))
	if err != nil {
		return nil, err
	}

	switch atr.Storage.Standard {
	case StandardISO14443A3:
		it := &nfc.ISO14443aTarget{Baud: nfc.Nbr106}
		if err := it.SetUID(uid); err != nil {
			return nil, fmt.Errorf("UID: %w", err)
		}
		if answer, ok := iso14443aAnswers[atr.Storage.Name]; ok {
			it.Atqa = answer.atqa
			it.Sak = answer.sak
		}
		return it, nil

	case StandardISO14443B3:
		bt := &nfc.ISO14443bTarget{Baud: nfc.Nbr106}
		if len(uid) != len(bt.Pupi) {
			return nil, fmt.Errorf("PUPI has %d bytes, want %d", len(uid), len(bt.Pupi))
		}
		copy(bt.Pupi[:], uid)
		return bt, nil

	default:
		ft := &nfc.FelicaTarget{Baud: nfc.Nbr212}
		if len(uid) != len(ft.ID) {
			return nil, fmt.Errorf("IDm has %d bytes, want %d", len(uid), len(ft.ID))
		}
		copy(ft.ID[:], uid)
		return ft, nil
	}
}
