package nfc

// ISO14443biTarget is NFC ISO14443B' tag information.
type ISO14443biTarget struct {
	DIV    [4]byte  // 4 LSBytes of tag serial number
	VerLog byte     // Software version & type of REPGEN
	Config byte     // Config Byte, present if long REPGEN
	AtrLen int      // number of valid bytes in Atr
	Atr    [33]byte `len:"AtrLen"` // ATR, if any
	Baud   BaudRate
}

type iso14443biInfo struct {
	div      [4]byte
	verLog   byte
	config   byte
	szAtrLen int
	atr      [33]byte
}

const (
	iso14443biDIV      = 0
	iso14443biVerLog   = 4
	iso14443biConfig   = 5
	iso14443biSzAtrLen = 6
	iso14443biAtr      = iso14443biSzAtrLen + SizeTWidth
	iso14443biSize     = iso14443biAtr + 33
)

func (iso14443biInfo) modulationType() ModulationType { return ISO14443bi }

func (ii iso14443biInfo) putNative(b []byte) {
	copy(b[iso14443biDIV:], ii.div[:])
	b[iso14443biVerLog] = ii.verLog
	b[iso14443biConfig] = ii.config
	putSize(b[iso14443biSzAtrLen:], ii.szAtrLen)
	copy(b[iso14443biAtr:], ii.atr[:])
}

func getISO14443biInfo(b []byte) (iso14443biInfo, error) {
	ii := iso14443biInfo{verLog: b[iso14443biVerLog], config: b[iso14443biConfig]}
	copy(ii.div[:], b[iso14443biDIV:])
	copy(ii.atr[:], b[iso14443biAtr:])

	n, err := getSize("ISO14443bi szAtrLen", b[iso14443biSzAtrLen:], len(ii.atr))
	if err != nil {
		return iso14443biInfo{}, err
	}
	ii.szAtrLen = n
	return ii, nil
}

// UnmarshallISO14443bi fills it from nt, which must carry an ISO14443bi payload.
func UnmarshallISO14443bi(it *ISO14443biTarget, nt *Target) {
	ii := nt.info(ISO14443bi).(iso14443biInfo)

	it.DIV = ii.div
	it.VerLog = ii.verLog
	it.Config = ii.config
	it.AtrLen = ii.szAtrLen
	it.Atr = ii.atr

	it.Baud = nt.nm.BaudRate
}

// MarshallISO14443bi writes it into nt and sets its type to ISO14443bi.
// It panics if AtrLen is outside Atr.
func MarshallISO14443bi(nt *Target, it *ISO14443biTarget) {
	checkLen("AtrLen", it.AtrLen, len(it.Atr))

	nt.set(iso14443biInfo{
		div:      it.DIV,
		verLog:   it.VerLog,
		config:   it.Config,
		szAtrLen: it.AtrLen,
		atr:      it.Atr,
	}, it.Baud)
}

// Modulation is always ISO14443bi.
func (it *ISO14443biTarget) Modulation() Modulation {
	return Modulation{ISO14443bi, it.Baud}
}

func (it *ISO14443biTarget) Marshall(nt *Target)   { MarshallISO14443bi(nt, it) }
func (it *ISO14443biTarget) Unmarshall(nt *Target) { UnmarshallISO14443bi(it, nt) }

// AtrBytes returns the valid part of Atr.
func (it *ISO14443biTarget) AtrBytes() []byte {
	return validPrefix("AtrLen", it.Atr[:], it.AtrLen)
}

// SetAtr stores atr in Atr and updates AtrLen.
func (it *ISO14443biTarget) SetAtr(atr []byte) error {
	n, err := setBounded("Atr", it.Atr[:], atr)
	if err != nil {
		return err
	}
	it.AtrLen = n
	return nil
}

func (it *ISO14443biTarget) String() string   { return recordString(it) }
func (it *ISO14443biTarget) Describe() string { return describeRecord(it) }
