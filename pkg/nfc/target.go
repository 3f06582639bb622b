package nfc

import (
	"errors"
	"fmt"
)

var (
	// ErrModulationMismatch is raised (as a panic) when an unmarshaller is handed a Target
	// carrying a different technology.
	ErrModulationMismatch = errors.New("nfc: modulation type mismatch")

	// ErrLengthOverflow reports a length field outside its array's capacity.
	ErrLengthOverflow = errors.New("nfc: length exceeds capacity")

	// ErrUnknownModulation reports a modulation type no record exists for.
	ErrUnknownModulation = errors.New("nfc: unknown modulation type")
)

// Target is the tagged target value: a modulation (type and baud rate) and the payload of
// the technology named by the type. The zero Target has an undefined type and no payload.
//
// The fields are only written by the Marshall* functions, which keep type and payload in
// agreement. Target is a plain value; copy it freely.
type Target struct {
	nm  Modulation
	nti targetInfo
}

// targetInfo is the payload union. Each implementation mirrors one native nfc_*_info struct
// and is stored by value, so copies of a Target never share a payload.
type targetInfo interface {
	modulationType() ModulationType
	putNative(b []byte)
}

// Type returns the discriminant of the target.
func (nt *Target) Type() ModulationType {
	return nt.nm.Type
}

// Modulation returns the modulation type together with the shared baud rate.
func (nt *Target) Modulation() Modulation {
	return nt.nm
}

// ModulationOf returns the discriminant of nt. Use it to pick an unmarshaller.
func ModulationOf(nt *Target) ModulationType {
	return nt.Type()
}

func (nt *Target) String() string {
	return "Target " + nt.nm.String()
}

// set installs the payload, then the baud rate, then the type. Every marshaller ends here.
func (nt *Target) set(info targetInfo, baud BaudRate) {
	nt.nti = info
	nt.nm.BaudRate = baud
	nt.nm.Type = info.modulationType()
}

// info returns the active payload after checking that the target carries want.
func (nt *Target) info(want ModulationType) targetInfo {
	if nt.nm.Type != want || nt.nti == nil || nt.nti.modulationType() != want {
		panic(fmt.Errorf("%w: target is %s, want %s", ErrModulationMismatch, nt.nm.Type, want))
	}
	return nt.nti
}

// Record is a flat, technology-specific view of a Target. Every *XxxTarget type in this
// package implements it.
type Record interface {
	// Modulation reports the record's technology and its Baud field.
	Modulation() Modulation
	// Marshall writes the record into nt and stamps the record's modulation type.
	Marshall(nt *Target)
	// Unmarshall fills the record from nt. nt must carry the record's modulation type.
	Unmarshall(nt *Target)
	String() string
	Describe() string
}

// NewRecord returns a zero record for the modulation type m.
func NewRecord(m ModulationType) (Record, error) {
	switch m {
	case DEP:
		return &DEPTarget{}, nil
	case ISO14443a:
		return &ISO14443aTarget{}, nil
	case Felica:
		return &FelicaTarget{}, nil
	case ISO14443b:
		return &ISO14443bTarget{}, nil
	case ISO14443bi:
		return &ISO14443biTarget{}, nil
	case ISO14443b2sr:
		return &ISO14443b2srTarget{}, nil
	case ISO14443b2ct:
		return &ISO14443b2ctTarget{}, nil
	case Jewel:
		return &JewelTarget{}, nil
	case Barcode:
		return &BarcodeTarget{}, nil
	case ISO14443biClass:
		return &ISO14443biClassTarget{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownModulation, m)
	}
}

// UnmarshallTarget dispatches on the type of nt and returns the matching record. Unlike the
// per-technology unmarshallers it reports an undefined type as an error instead of panicking.
func UnmarshallTarget(nt *Target) (Record, error) {
	r, err := NewRecord(nt.Type())
	if err != nil {
		return nil, err
	}
	r.Unmarshall(nt)
	return r, nil
}

// checkLen panics unless 0 <= n <= capacity.
func checkLen(field string, n, capacity int) {
	if n < 0 || n > capacity {
		panic(fmt.Errorf("%w: %s = %d, capacity %d", ErrLengthOverflow, field, n, capacity))
	}
}

// setBounded copies src into dst, zeroes the rest of dst and returns the new length.
func setBounded(field string, dst []byte, src []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, fmt.Errorf("%w: %s has %d bytes, capacity %d", ErrLengthOverflow, field, len(src), len(dst))
	}
	n := copy(dst, src)
	clear(dst[n:])
	return n, nil
}

// validPrefix returns buf[:n], panicking on a length outside the array.
func validPrefix(field string, buf []byte, n int) []byte {
	checkLen(field, n, len(buf))
	return buf[:n]
}
