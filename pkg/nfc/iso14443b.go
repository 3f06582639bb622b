package nfc

// ISO14443bTarget is NFC ISO14443B tag information. The first three arrays come from the
// ATQB, see ISO/IEC 14443-3.
type ISO14443bTarget struct {
	Pupi            [4]byte
	ApplicationData [4]byte
	ProtocolInfo    [3]byte
	CardIdentifier  byte // CID assigned by the reader
	Baud            BaudRate
}

type iso14443bInfo struct {
	pupi            [4]byte
	applicationData [4]byte
	protocolInfo    [3]byte
	cardIdentifier  byte
}

const (
	iso14443bPupi     = 0
	iso14443bAppData  = 4
	iso14443bProtInfo = 8
	iso14443bCID      = 11
	iso14443bSize     = 12
)

func (iso14443bInfo) modulationType() ModulationType { return ISO14443b }

func (ii iso14443bInfo) putNative(b []byte) {
	copy(b[iso14443bPupi:], ii.pupi[:])
	copy(b[iso14443bAppData:], ii.applicationData[:])
	copy(b[iso14443bProtInfo:], ii.protocolInfo[:])
	b[iso14443bCID] = ii.cardIdentifier
}

func getISO14443bInfo(b []byte) iso14443bInfo {
	ii := iso14443bInfo{cardIdentifier: b[iso14443bCID]}
	copy(ii.pupi[:], b[iso14443bPupi:])
	copy(ii.applicationData[:], b[iso14443bAppData:])
	copy(ii.protocolInfo[:], b[iso14443bProtInfo:])
	return ii
}

// UnmarshallISO14443b fills it from nt, which must carry an ISO14443b payload.
func UnmarshallISO14443b(it *ISO14443bTarget, nt *Target) {
	ii := nt.info(ISO14443b).(iso14443bInfo)

	it.Pupi = ii.pupi
	it.ApplicationData = ii.applicationData
	it.ProtocolInfo = ii.protocolInfo
	it.CardIdentifier = ii.cardIdentifier

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443b writes it into nt and sets its type to ISO14443b.
func MarshallISO14443b(nt *Target, it *ISO14443bTarget) {
	nt.set(iso14443bInfo{
		pupi:            it.Pupi,
		applicationData: it.ApplicationData,
		protocolInfo:    it.ProtocolInfo,
		cardIdentifier:  it.CardIdentifier,
	}, it.Baud)
}

// Modulation is always ISO14443b.
func (it *ISO14443bTarget) Modulation() Modulation {
	return Modulation{ISO14443b, it.Baud}
}

func (it *ISO14443bTarget) Marshall(nt *Target)   { MarshallISO14443b(nt, it) }
func (it *ISO14443bTarget) Unmarshall(nt *Target) { UnmarshallISO14443b(it, nt) }

func (it *ISO14443bTarget) String() string   { return recordString(it) }
func (it *ISO14443bTarget) Describe() string { return describeRecord(it) }
