package nfc

// DEPTarget is NFC target information in D.E.P. (Data Exchange Protocol), see ISO/IEC 18092
// (NFCIP-1). It mirrors nfc_dep_info.
type DEPTarget struct {
	NFCID3  [10]byte
	DID     byte     // device identifier
	BS      byte     // send bit rates the target supports
	BR      byte     // receive bit rates the target supports
	TO      byte     // response waiting time
	PP      byte     // optional parameters: frame length, GB and NAD presence
	GB      [48]byte `len:"GBLen"`
	GBLen   int
	DepMode DEPMode
	Baud    BaudRate
}

type depInfo struct {
	nfcid3 [10]byte
	did    byte
	bs     byte
	br     byte
	to     byte
	pp     byte
	gb     [48]byte
	szGB   int
	ndm    DEPMode
}

// native offsets inside nfc_dep_info
const (
	depNFCID3 = 0
	depDID    = 10
	depBS     = 11
	depBR     = 12
	depTO     = 13
	depPP     = 14
	depGB     = 15
	depSzGB   = depGB + 48
	depNDM    = depSzGB + SizeTWidth
	depSize   = depNDM + enumWidth
)

func (depInfo) modulationType() ModulationType { return DEP }

func (di depInfo) putNative(b []byte) {
	copy(b[depNFCID3:], di.nfcid3[:])
	b[depDID] = di.did
	b[depBS] = di.bs
	b[depBR] = di.br
	b[depTO] = di.to
	b[depPP] = di.pp
	copy(b[depGB:], di.gb[:])
	putSize(b[depSzGB:], di.szGB)
	putEnum(b[depNDM:], int(di.ndm))
}

func getDEPInfo(b []byte) (depInfo, error) {
	var di depInfo
	copy(di.nfcid3[:], b[depNFCID3:])
	di.did = b[depDID]
	di.bs = b[depBS]
	di.br = b[depBR]
	di.to = b[depTO]
	di.pp = b[depPP]
	copy(di.gb[:], b[depGB:])
	n, err := getSize("DEP szGB", b[depSzGB:], len(di.gb))
	if err != nil {
		return depInfo{}, err
	}
	di.szGB = n
	di.ndm = DEPMode(getEnum(b[depNDM:]))
	return di, nil
}

// UnmarshallDEP fills dt from nt, which must carry a DEP payload.
func UnmarshallDEP(dt *DEPTarget, nt *Target) {
	di := nt.info(DEP).(depInfo)

	dt.NFCID3 = di.nfcid3
	dt.DID = di.did
	dt.BS = di.bs
	dt.BR = di.br
	dt.TO = di.to
	dt.PP = di.pp
	dt.GB = di.gb
	dt.GBLen = di.szGB
	dt.DepMode = di.ndm

	dt.Baud = nt.nm.BaudRate
}

// MarshallDEP writes dt into nt and sets its type to DEP.
// It panics if dt.GBLen is outside GB.
func MarshallDEP(nt *Target, dt *DEPTarget) {
	checkLen("GBLen", dt.GBLen, len(dt.GB))

	nt.set(depInfo{
		nfcid3: dt.NFCID3,
		did:    dt.DID,
		bs:     dt.BS,
		br:     dt.BR,
		to:     dt.TO,
		pp:     dt.PP,
		gb:     dt.GB,
		szGB:   dt.GBLen,
		ndm:    dt.DepMode,
	}, dt.Baud)
}

// Modulation is always DEP.
func (dt *DEPTarget) Modulation() Modulation {
	return Modulation{DEP, dt.Baud}
}

func (dt *DEPTarget) Marshall(nt *Target)   { MarshallDEP(nt, dt) }
func (dt *DEPTarget) Unmarshall(nt *Target) { UnmarshallDEP(dt, nt) }

// GeneralBytes returns the valid part of GB.
func (dt *DEPTarget) GeneralBytes() []byte {
	return validPrefix("GBLen", dt.GB[:], dt.GBLen)
}

// SetGeneralBytes stores gb in GB and updates GBLen.
func (dt *DEPTarget) SetGeneralBytes(gb []byte) error {
	n, err := setBounded("GB", dt.GB[:], gb)
	if err != nil {
		return err
	}
	dt.GBLen = n
	return nil
}

func (dt *DEPTarget) String() string   { return recordString(dt) }
func (dt *DEPTarget) Describe() string { return describeRecord(dt) }
