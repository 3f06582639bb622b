// Package iso14443 holds the small ISO/IEC 14443 computations needed around target
// information: frame CRCs, the ATS layout and UID cascading.
package iso14443

import "github.com/gregLibert/nfctarget/pkg/bits"

// CascadeTag is the CT byte that prefixes a UID cascade level when more levels follow.
const CascadeTag = 0x88

// CRCA computes the ISO/IEC 14443-3 type A CRC of data, least significant byte first.
func CRCA(data []byte) [2]byte {
	return crc(data, 0x6363)
}

// CRCB computes the ISO/IEC 14443-3 type B CRC of data, least significant byte first.
func CRCB(data []byte) [2]byte {
	c := crc(data, 0xFFFF)
	return [2]byte{^c[0], ^c[1]}
}

// AppendCRCA appends the type A CRC of data to data.
func AppendCRCA(data []byte) []byte {
	c := CRCA(data)
	return append(data, c[0], c[1])
}

// AppendCRCB appends the type B CRC of data to data.
func AppendCRCB(data []byte) []byte {
	c := CRCB(data)
	return append(data, c[0], c[1])
}

// CheckCRCA reports whether frame ends with the type A CRC of what precedes it.
func CheckCRCA(frame []byte) bool {
	if len(frame) < 2 {
		return false
	}
	c := CRCA(frame[:len(frame)-2])
	return c[0] == frame[len(frame)-2] && c[1] == frame[len(frame)-1]
}

func crc(data []byte, init uint16) [2]byte {
	w := init
	for _, b := range data {
		b ^= byte(w)
		b ^= b << 4
		x := uint16(b)
		w = (w >> 8) ^ (x << 8) ^ (x << 3) ^ (x >> 4)
	}
	return [2]byte{byte(w), byte(w >> 8)}
}

// HistoricalBytes locates the historical bytes of an ATS (ISO/IEC 14443-4 5.2.7).
// ats starts with the format byte T0; the length byte TL is not part of it.
// It returns nil when the ATS carries no historical bytes or is too short.
func HistoricalBytes(ats []byte) []byte {
	if len(ats) == 0 {
		return nil
	}

	// T0 b5, b6, b7 announce TA(1), TB(1), TC(1)
	offset := 1 + bits.Count(ats[0], 5, 6, 7)
	if len(ats) <= offset {
		return nil
	}
	return ats[offset:]
}

// SakCompliant reports whether a SAK announces ISO/IEC 14443-4 support (b6 set).
func SakCompliant(sak byte) bool {
	return bits.IsSet(sak, 6)
}

// SakUIDIncomplete reports whether a SAK says another cascade level follows (b3 set).
func SakUIDIncomplete(sak byte) bool {
	return bits.IsSet(sak, 3)
}

// CascadeUID inserts cascade tags into a 7 or 10 byte UID, giving the bytes exchanged during
// anticollision (ISO/IEC 14443-3 6.5.4). Other sizes are returned as a copy.
func CascadeUID(uid []byte) []byte {
	switch len(uid) {
	case 7:
		out := make([]byte, 0, 8)
		out = append(out, CascadeTag)
		return append(out, uid...)
	case 10:
		out := make([]byte, 0, 12)
		out = append(out, CascadeTag)
		out = append(out, uid[:3]...)
		out = append(out, CascadeTag)
		return append(out, uid[3:]...)
	default:
		return append([]byte(nil), uid...)
	}
}
