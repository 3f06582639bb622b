package nfc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Native layout of nfc_target as laid out by the driver (packed, no padding):
//
//	offset 0    nfc_target_info nti   union, sized by its largest member (nfc_iso14443a_info)
//	offset 283  nfc_modulation_type   4 bytes
//	offset 287  nfc_baud_rate         4 bytes
//
// Lengths that are size_t natively are written as SizeTWidth-byte integers. Go's int and the
// native ptrdiff_t/size_t have the same width on every 64-bit Go port, so lengths cross the
// boundary unchanged there. 32-bit hosts would need SizeTWidth = 4 and are not supported.
// Multi-byte scalars use host byte order; byte arrays are copied as they are.
const (
	SizeTWidth = 8
	enumWidth  = 4

	// NativeInfoSize is the size of the nfc_target_info union.
	NativeInfoSize = iso14443aInfoSize

	// NativeTargetSize is the size of a whole nfc_target.
	NativeTargetSize = NativeInfoSize + 2*enumWidth
)

// ErrBufferSize reports a native buffer that is not NativeTargetSize bytes long.
var ErrBufferSize = errors.New("nfc: wrong native target size")

var native = binary.NativeEndian

func putSize(b []byte, n int) {
	native.PutUint64(b[:SizeTWidth], uint64(n))
}

func getSize(field string, b []byte, capacity int) (int, error) {
	v := native.Uint64(b[:SizeTWidth])
	if v > uint64(capacity) {
		return 0, fmt.Errorf("%w: %s = %d, capacity %d", ErrLengthOverflow, field, v, capacity)
	}
	return int(v), nil
}

func putEnum(b []byte, v int) {
	native.PutUint32(b[:enumWidth], uint32(int32(v)))
}

func getEnum(b []byte) int {
	return int(int32(native.Uint32(b[:enumWidth])))
}

// MarshalBinary encodes nt in the native nfc_target layout. Bytes of the union not used by
// the active payload are zero. A Target with an undefined type encodes as an all-zero union.
func (nt *Target) MarshalBinary() ([]byte, error) {
	buf := make([]byte, NativeTargetSize)
	if nt.nti != nil {
		nt.nti.putNative(buf[:NativeInfoSize])
	}
	putEnum(buf[NativeInfoSize:], int(nt.nm.Type))
	putEnum(buf[NativeInfoSize+enumWidth:], int(nt.nm.BaudRate))
	return buf, nil
}

// UnmarshalBinary decodes a native nfc_target. This is where data from outside the process
// enters, so unlike the marshallers it reports malformed input as errors: wrong size, unknown
// type, or a length larger than its array.
func (nt *Target) UnmarshalBinary(data []byte) error {
	if len(data) != NativeTargetSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(data), NativeTargetSize)
	}

	m := ModulationType(getEnum(data[NativeInfoSize:]))
	baud := BaudRate(getEnum(data[NativeInfoSize+enumWidth:]))

	if m == Undefined {
		*nt = Target{nm: Modulation{BaudRate: baud}}
		return nil
	}

	info, err := decodeInfo(m, data[:NativeInfoSize])
	if err != nil {
		return err
	}

	nt.set(info, baud)
	return nil
}

func decodeInfo(m ModulationType, b []byte) (targetInfo, error) {
	switch m {
	case DEP:
		return getDEPInfo(b)
	case ISO14443a:
		return getISO14443aInfo(b)
	case Felica:
		return getFelicaInfo(b)
	case ISO14443b:
		return getISO14443bInfo(b), nil
	case ISO14443bi:
		return getISO14443biInfo(b)
	case ISO14443b2sr:
		return getISO14443b2srInfo(b), nil
	case ISO14443b2ct:
		return getISO14443b2ctInfo(b), nil
	case Jewel:
		return getJewelInfo(b), nil
	case Barcode:
		return getBarcodeInfo(b)
	case ISO14443biClass:
		return getISO14443biClassInfo(b), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownModulation, int(m))
	}
}

// unbounded is the capacity of a length field that has no paired array.
const unbounded = math.MaxInt
