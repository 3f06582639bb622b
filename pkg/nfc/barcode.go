package nfc

// BarcodeDataSize is the capacity of the native barcode buffer.
const BarcodeDataSize = 32

// BarcodeTarget is Thinfilm NFC Barcode information. It mirrors nfc_barcode_info.
type BarcodeTarget struct {
	DataLen int                   // number of valid bytes in Data
	Data    [BarcodeDataSize]byte `len:"DataLen"`
	Baud    BaudRate
}

type barcodeInfo struct {
	szDataLen int
	data      [BarcodeDataSize]byte
}

const (
	barcodeSzDataLen = 0
	barcodeData      = barcodeSzDataLen + SizeTWidth
	barcodeSize      = barcodeData + BarcodeDataSize
)

func (barcodeInfo) modulationType() ModulationType { return Barcode }

func (bi barcodeInfo) putNative(b []byte) {
	putSize(b[barcodeSzDataLen:], bi.szDataLen)
	copy(b[barcodeData:], bi.data[:])
}

func getBarcodeInfo(b []byte) (barcodeInfo, error) {
	var bi barcodeInfo
	copy(bi.data[:], b[barcodeData:])

	n, err := getSize("Barcode szDataLen", b[barcodeSzDataLen:], len(bi.data))
	if err != nil {
		return barcodeInfo{}, err
	}
	bi.szDataLen = n
	return bi, nil
}

// UnmarshallBarcode fills bt from nt, which must carry a Barcode payload.
func UnmarshallBarcode(bt *BarcodeTarget, nt *Target) {
	bi := nt.info(Barcode).(barcodeInfo)

	bt.DataLen = bi.szDataLen
	bt.Data = bi.data

	bt.Baud = nt.nm.BaudRate
}

// MarshallBarcode writes bt into nt and sets its type to Barcode.
// It panics if DataLen is outside Data.
func MarshallBarcode(nt *Target, bt *BarcodeTarget) {
	checkLen("DataLen", bt.DataLen, len(bt.Data))

	nt.set(barcodeInfo{szDataLen: bt.DataLen, data: bt.Data}, bt.Baud)
}

// Modulation is always Barcode.
func (bt *BarcodeTarget) Modulation() Modulation {
	return Modulation{Barcode, bt.Baud}
}

func (bt *BarcodeTarget) Marshall(nt *Target)   { MarshallBarcode(nt, bt) }
func (bt *BarcodeTarget) Unmarshall(nt *Target) { UnmarshallBarcode(bt, nt) }

// DataBytes returns the valid part of Data.
func (bt *BarcodeTarget) DataBytes() []byte {
	return validPrefix("DataLen", bt.Data[:], bt.DataLen)
}

// SetData stores data in Data and updates DataLen.
func (bt *BarcodeTarget) SetData(data []byte) error {
	n, err := setBounded("Data", bt.Data[:], data)
	if err != nil {
		return err
	}
	bt.DataLen = n
	return nil
}

func (bt *BarcodeTarget) String() string   { return recordString(bt) }
func (bt *BarcodeTarget) Describe() string { return describeRecord(bt) }
