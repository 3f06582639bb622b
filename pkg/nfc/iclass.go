package nfc

// ISO14443biClassTarget is HID iClass (ISO14443B mode) tag information.
type ISO14443biClassTarget struct {
	UID  [8]byte
	Baud BaudRate
}

type iso14443biClassInfo struct {
	uid [8]byte
}

func (iso14443biClassInfo) modulationType() ModulationType { return ISO14443biClass }

func (ii iso14443biClassInfo) putNative(b []byte) {
	copy(b, ii.uid[:])
}

func getISO14443biClassInfo(b []byte) iso14443biClassInfo {
	var ii iso14443biClassInfo
	copy(ii.uid[:], b)
	return ii
}

// UnmarshallISO14443biClass fills it from nt, which must carry an ISO14443biClass payload.
func UnmarshallISO14443biClass(it *ISO14443biClassTarget, nt *Target) {
	ii := nt.info(ISO14443biClass).(iso14443biClassInfo)

	it.UID = ii.uid

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443biClass writes it into nt and sets its type to ISO14443biClass.
func MarshallISO14443biClass(nt *Target, it *ISO14443biClassTarget) {
	nt.set(iso14443biClassInfo{uid: it.UID}, it.Baud)
}

// Modulation is always ISO14443biClass.
func (it *ISO14443biClassTarget) Modulation() Modulation {
	return Modulation{ISO14443biClass, it.Baud}
}

func (it *ISO14443biClassTarget) Marshall(nt *Target)   { MarshallISO14443biClass(nt, it) }
func (it *ISO14443biClassTarget) Unmarshall(nt *Target) { UnmarshallISO14443biClass(it, nt) }

func (it *ISO14443biClassTarget) String() string   { return recordString(it) }
func (it *ISO14443biClassTarget) Describe() string { return describeRecord(it) }
