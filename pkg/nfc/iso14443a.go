package nfc

import "github.com/gregLibert/nfctarget/pkg/iso14443"

// ISO14443aTarget is NFC ISO14443A tag (MIFARE) information. It mirrors nfc_iso14443a_info.
type ISO14443aTarget struct {
	Atqa   [2]byte
	Sak    byte
	UIDLen int
	UID    [10]byte `len:"UIDLen"` // 4, 7 or 10 bytes
	AtsLen int
	Ats    [254]byte `len:"AtsLen"` // without the TL byte; FSD 256 leaves 254
	Baud   BaudRate
}

type iso14443aInfo struct {
	atqa     [2]byte
	sak      byte
	szUidLen int
	uid      [10]byte
	szAtsLen int
	ats      [254]byte
}

// native offsets inside nfc_iso14443a_info
const (
	iso14443aAtqa     = 0
	iso14443aSak      = 2
	iso14443aSzUidLen = 3
	iso14443aUID      = iso14443aSzUidLen + SizeTWidth
	iso14443aSzAtsLen = iso14443aUID + 10
	iso14443aAts      = iso14443aSzAtsLen + SizeTWidth
	iso14443aInfoSize = iso14443aAts + 254
)

func (iso14443aInfo) modulationType() ModulationType { return ISO14443a }

func (ii iso14443aInfo) putNative(b []byte) {
	copy(b[iso14443aAtqa:], ii.atqa[:])
	b[iso14443aSak] = ii.sak
	putSize(b[iso14443aSzUidLen:], ii.szUidLen)
	copy(b[iso14443aUID:], ii.uid[:])
	putSize(b[iso14443aSzAtsLen:], ii.szAtsLen)
	copy(b[iso14443aAts:], ii.ats[:])
}

func getISO14443aInfo(b []byte) (iso14443aInfo, error) {
	var ii iso14443aInfo
	copy(ii.atqa[:], b[iso14443aAtqa:])
	ii.sak = b[iso14443aSak]
	copy(ii.uid[:], b[iso14443aUID:])
	copy(ii.ats[:], b[iso14443aAts:])

	var err error
	if ii.szUidLen, err = getSize("ISO14443a szUidLen", b[iso14443aSzUidLen:], len(ii.uid)); err != nil {
		return iso14443aInfo{}, err
	}
	if ii.szAtsLen, err = getSize("ISO14443a szAtsLen", b[iso14443aSzAtsLen:], len(ii.ats)); err != nil {
		return iso14443aInfo{}, err
	}
	return ii, nil
}

// UnmarshallISO14443a fills it from nt, which must carry an ISO14443a payload.
func UnmarshallISO14443a(it *ISO14443aTarget, nt *Target) {
	ii := nt.info(ISO14443a).(iso14443aInfo)

	it.Atqa = ii.atqa
	it.Sak = ii.sak
	it.UIDLen = ii.szUidLen
	it.UID = ii.uid
	it.AtsLen = ii.szAtsLen
	it.Ats = ii.ats

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443a writes it into nt and sets its type to ISO14443a.
// It panics if UIDLen or AtsLen is outside its array.
func MarshallISO14443a(nt *Target, it *ISO14443aTarget) {
	checkLen("UIDLen", it.UIDLen, len(it.UID))
	checkLen("AtsLen", it.AtsLen, len(it.Ats))

	nt.set(iso14443aInfo{
		atqa:     it.Atqa,
		sak:      it.Sak,
		szUidLen: it.UIDLen,
		uid:      it.UID,
		szAtsLen: it.AtsLen,
		ats:      it.Ats,
	}, it.Baud)
}

// Modulation is always ISO14443a.
func (it *ISO14443aTarget) Modulation() Modulation {
	return Modulation{ISO14443a, it.Baud}
}

func (it *ISO14443aTarget) Marshall(nt *Target)   { MarshallISO14443a(nt, it) }
func (it *ISO14443aTarget) Unmarshall(nt *Target) { UnmarshallISO14443a(it, nt) }

// UIDBytes returns the valid part of UID.
func (it *ISO14443aTarget) UIDBytes() []byte {
	return validPrefix("UIDLen", it.UID[:], it.UIDLen)
}

// SetUID stores uid in UID and updates UIDLen.
func (it *ISO14443aTarget) SetUID(uid []byte) error {
	n, err := setBounded("UID", it.UID[:], uid)
	if err != nil {
		return err
	}
	it.UIDLen = n
	return nil
}

// AtsBytes returns the valid part of Ats.
func (it *ISO14443aTarget) AtsBytes() []byte {
	return validPrefix("AtsLen", it.Ats[:], it.AtsLen)
}

// SetAts stores ats in Ats and updates AtsLen.
func (it *ISO14443aTarget) SetAts(ats []byte) error {
	n, err := setBounded("Ats", it.Ats[:], ats)
	if err != nil {
		return err
	}
	it.AtsLen = n
	return nil
}

// HistoricalBytes returns the historical bytes of the ATS, or nil if there are none.
func (it *ISO14443aTarget) HistoricalBytes() []byte {
	return iso14443.HistoricalBytes(it.AtsBytes())
}

// IsISO14443_4 reports whether the SAK announces an ISO/IEC 14443-4 compliant card.
func (it *ISO14443aTarget) IsISO14443_4() bool {
	return iso14443.SakCompliant(it.Sak)
}

func (it *ISO14443aTarget) String() string   { return recordString(it) }
func (it *ISO14443aTarget) Describe() string { return describeRecord(it) }
