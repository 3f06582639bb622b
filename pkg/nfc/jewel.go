package nfc

// JewelTarget is NFC Jewel (Topaz) tag information.
type JewelTarget struct {
	SensRes [2]byte
	ID      [4]byte
	Baud    BaudRate
}

type jewelInfo struct {
	sensRes [2]byte
	id      [4]byte
}

const (
	jewelSensRes = 0
	jewelID      = 2
)

func (jewelInfo) modulationType() ModulationType { return Jewel }

func (ji jewelInfo) putNative(b []byte) {
	copy(b[jewelSensRes:], ji.sensRes[:])
	copy(b[jewelID:], ji.id[:])
}

func getJewelInfo(b []byte) jewelInfo {
	var ji jewelInfo
	copy(ji.sensRes[:], b[jewelSensRes:])
	copy(ji.id[:], b[jewelID:])
	return ji
}

// UnmarshallJewel fills jt from nt, which must carry a Jewel payload.
func UnmarshallJewel(jt *JewelTarget, nt *Target) {
	ji := nt.info(Jewel).(jewelInfo)

	jt.SensRes = ji.sensRes
	jt.ID = ji.id

	jt.Baud = nt.nm.BaudRate
}

// MarshallJewel writes jt into nt and sets its type to Jewel.
func MarshallJewel(nt *Target, jt *JewelTarget) {
	nt.set(jewelInfo{sensRes: jt.SensRes, id: jt.ID}, jt.Baud)
}

// Modulation is always Jewel.
func (jt *JewelTarget) Modulation() Modulation {
	return Modulation{Jewel, jt.Baud}
}

func (jt *JewelTarget) Marshall(nt *Target)   { MarshallJewel(nt, jt) }
func (jt *JewelTarget) Unmarshall(nt *Target) { UnmarshallJewel(jt, nt) }

func (jt *JewelTarget) String() string   { return recordString(jt) }
func (jt *JewelTarget) Describe() string { return describeRecord(jt) }
