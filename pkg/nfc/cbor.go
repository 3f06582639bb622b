package nfc

import (
	"errors"
	"fmt"

	"github.com/gregLibert/nfctarget/pkg/codec"
)

// wireTarget is the CBOR form of a Target: [type, baud, record]. record is the map encoding
// of the matching *XxxTarget, or null for an undefined type.
type wireTarget struct {
	_      struct{} `cbor:",toarray"`
	Type   ModulationType
	Baud   BaudRate
	Record codec.RawMessage
}

// MarshalCBOR implements cbor.Marshaler.
func (nt *Target) MarshalCBOR() ([]byte, error) {
	w := wireTarget{Type: nt.nm.Type, Baud: nt.nm.BaudRate}

	if nt.nm.Type != Undefined {
		r, err := UnmarshallTarget(nt)
		if err != nil {
			return nil, err
		}
		if w.Record, err = codec.Marshal(r); err != nil {
			return nil, fmt.Errorf("cbor encoding of %s failed: %w", nt.nm.Type, err)
		}
	}

	return codec.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler. Like UnmarshalBinary it reports bad input as
// errors, including lengths outside their arrays.
func (nt *Target) UnmarshalCBOR(data []byte) error {
	var w wireTarget
	if err := codec.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cbor decoding failed: %w", err)
	}

	if w.Type == Undefined {
		*nt = Target{nm: Modulation{BaudRate: w.Baud}}
		return nil
	}

	r, err := NewRecord(w.Type)
	if err != nil {
		return err
	}
	if err := codec.Unmarshal(w.Record, r); err != nil {
		return fmt.Errorf("cbor decoding of %s failed: %w", w.Type, err)
	}
	if got := r.Modulation().BaudRate; got != w.Baud {
		return fmt.Errorf("cbor decoding of %s failed: record baud %s, target baud %s", w.Type, got, w.Baud)
	}

	var decoded Target
	if err := tryMarshall(&decoded, r); err != nil {
		return err
	}
	*nt = decoded
	return nil
}

// tryMarshall is Record.Marshall with length overflows returned instead of raised.
func tryMarshall(nt *Target, r Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok && errors.Is(e, ErrLengthOverflow) {
				err = e
				return
			}
			panic(p)
		}
	}()

	r.Marshall(nt)
	return nil
}
