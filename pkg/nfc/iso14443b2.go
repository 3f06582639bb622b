package nfc

// ISO14443b2srTarget is NFC ISO14443-2B ST SRx tag information.
type ISO14443b2srTarget struct {
	UID  [8]byte
	Baud BaudRate
}

type iso14443b2srInfo struct {
	uid [8]byte
}

func (iso14443b2srInfo) modulationType() ModulationType { return ISO14443b2sr }

func (ii iso14443b2srInfo) putNative(b []byte) {
	copy(b, ii.uid[:])
}

func getISO14443b2srInfo(b []byte) iso14443b2srInfo {
	var ii iso14443b2srInfo
	copy(ii.uid[:], b)
	return ii
}

// UnmarshallISO14443b2sr fills it from nt, which must carry an ISO14443b2sr payload.
func UnmarshallISO14443b2sr(it *ISO14443b2srTarget, nt *Target) {
	ii := nt.info(ISO14443b2sr).(iso14443b2srInfo)

	it.UID = ii.uid

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443b2sr writes it into nt and sets its type to ISO14443b2sr.
func MarshallISO14443b2sr(nt *Target, it *ISO14443b2srTarget) {
	nt.set(iso14443b2srInfo{uid: it.UID}, it.Baud)
}

// Modulation is always ISO14443b2sr.
func (it *ISO14443b2srTarget) Modulation() Modulation {
	return Modulation{ISO14443b2sr, it.Baud}
}

func (it *ISO14443b2srTarget) Marshall(nt *Target)   { MarshallISO14443b2sr(nt, it) }
func (it *ISO14443b2srTarget) Unmarshall(nt *Target) { UnmarshallISO14443b2sr(it, nt) }

func (it *ISO14443b2srTarget) String() string   { return recordString(it) }
func (it *ISO14443b2srTarget) Describe() string { return describeRecord(it) }

// ISO14443b2ctTarget is NFC ISO14443-2B ASK CTx tag information.
type ISO14443b2ctTarget struct {
	UID      [4]byte
	ProdCode byte
	FabCode  byte
	Baud     BaudRate
}

type iso14443b2ctInfo struct {
	uid      [4]byte
	prodCode byte
	fabCode  byte
}

const (
	iso14443b2ctUID      = 0
	iso14443b2ctProdCode = 4
	iso14443b2ctFabCode  = 5
)

func (iso14443b2ctInfo) modulationType() ModulationType { return ISO14443b2ct }

func (ii iso14443b2ctInfo) putNative(b []byte) {
	copy(b[iso14443b2ctUID:], ii.uid[:])
	b[iso14443b2ctProdCode] = ii.prodCode
	b[iso14443b2ctFabCode] = ii.fabCode
}

func getISO14443b2ctInfo(b []byte) iso14443b2ctInfo {
	ii := iso14443b2ctInfo{prodCode: b[iso14443b2ctProdCode], fabCode: b[iso14443b2ctFabCode]}
	copy(ii.uid[:], b[iso14443b2ctUID:])
	return ii
}

// UnmarshallISO14443b2ct fills it from nt, which must carry an ISO14443b2ct payload.
func UnmarshallISO14443b2ct(it *ISO14443b2ctTarget, nt *Target) {
	ii := nt.info(ISO14443b2ct).(iso14443b2ctInfo)

	it.UID = ii.uid
	it.ProdCode = ii.prodCode
	it.FabCode = ii.fabCode

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443b2ct writes it into nt and sets its type to ISO14443b2ct.
func MarshallISO14443b2ct(nt *Target, it *ISO14443b2ctTarget) {
	nt.set(iso14443b2ctInfo{
		uid:      it.UID,
		prodCode: it.ProdCode,
		fabCode:  it.FabCode,
	}, it.Baud)
}

// Modulation is always ISO14443b2ct.
func (it *ISO14443b2ctTarget) Modulation() Modulation {
	return Modulation{ISO14443b2ct, it.Baud}
}

func (it *ISO14443b2ctTarget) Marshall(nt *Target)   { MarshallISO14443b2ct(nt, it) }
func (it *ISO14443b2ctTarget) Unmarshall(nt *Target) { UnmarshallISO14443b2ct(it, nt) }

func (it *ISO14443b2ctTarget) String() string   { return recordString(it) }
func (it *ISO14443b2ctTarget) Describe() string { return describeRecord(it) }
