package nfc

// FelicaTarget is NFC FeLiCa tag information. It mirrors nfc_felica_info.
type FelicaTarget struct {
	Len     int // polling response length as reported by the reader
	ResCode byte
	ID      [8]byte // manufacture ID (IDm)
	Pad     [8]byte // manufacture parameter (PMm)
	SysCode [2]byte
	Baud    BaudRate
}

type felicaInfo struct {
	szLen   int
	resCode byte
	id      [8]byte
	pad     [8]byte
	sysCode [2]byte
}

const (
	felicaSzLen   = 0
	felicaResCode = felicaSzLen + SizeTWidth
	felicaID      = felicaResCode + 1
	felicaPad     = felicaID + 8
	felicaSysCode = felicaPad + 8
	felicaSize    = felicaSysCode + 2
)

func (felicaInfo) modulationType() ModulationType { return Felica }

func (fi felicaInfo) putNative(b []byte) {
	putSize(b[felicaSzLen:], fi.szLen)
	b[felicaResCode] = fi.resCode
	copy(b[felicaID:], fi.id[:])
	copy(b[felicaPad:], fi.pad[:])
	copy(b[felicaSysCode:], fi.sysCode[:])
}

func getFelicaInfo(b []byte) (felicaInfo, error) {
	n, err := getSize("Felica szLen", b[felicaSzLen:], unbounded)
	if err != nil {
		return felicaInfo{}, err
	}

	fi := felicaInfo{szLen: n, resCode: b[felicaResCode]}
	copy(fi.id[:], b[felicaID:])
	copy(fi.pad[:], b[felicaPad:])
	copy(fi.sysCode[:], b[felicaSysCode:])
	return fi, nil
}

// UnmarshallFelica fills ft from nt, which must carry a Felica payload.
func UnmarshallFelica(ft *FelicaTarget, nt *Target) {
	fi := nt.info(Felica).(felicaInfo)

	ft.Len = fi.szLen
	ft.ResCode = fi.resCode
	ft.ID = fi.id
	ft.Pad = fi.pad
	ft.SysCode = fi.sysCode

	ft.Baud = nt.nm.BaudRate
}

// MarshallFelica writes ft into nt and sets its type to Felica.
// It panics if ft.Len is negative.
func MarshallFelica(nt *Target, ft *FelicaTarget) {
	checkLen("Len", ft.Len, unbounded)

	nt.set(felicaInfo{
		szLen:   ft.Len,
		resCode: ft.ResCode,
		id:      ft.ID,
		pad:     ft.Pad,
		sysCode: ft.SysCode,
	}, ft.Baud)
}

// Modulation is always Felica.
func (ft *FelicaTarget) Modulation() Modulation {
	return Modulation{Felica, ft.Baud}
}

func (ft *FelicaTarget) Marshall(nt *Target)   { MarshallFelica(nt, ft) }
func (ft *FelicaTarget) Unmarshall(nt *Target) { UnmarshallFelica(ft, nt) }

func (ft *FelicaTarget) String() string   { return recordString(ft) }
func (ft *FelicaTarget) Describe() string { return describeRecord(ft) }
