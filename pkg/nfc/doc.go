/*
Package nfc converts between the tagged target value produced by an NFC reader driver and flat,
per-technology records.

A reader driver describes the card it found as a single tagged value: a modulation type (the
discriminant), a baud rate shared by every technology, and one technology-specific payload. Go
code is easier to write against a plain struct per technology, so this package provides one
record type per card technology and a marshaller/unmarshaller pair between each record and the
tagged value.

# Technologies

	Type             Record                  Arrays (capacity)                      Lengths
	ISO14443a        ISO14443aTarget         Atqa(2) UID(10) Ats(254)               UIDLen AtsLen
	Jewel            JewelTarget             SensRes(2) ID(4)                       -
	ISO14443b        ISO14443bTarget         Pupi(4) ApplicationData(4) ProtocolInfo(3) -
	ISO14443bi       ISO14443biTarget        DIV(4) Atr(33)                         AtrLen
	ISO14443b2sr     ISO14443b2srTarget      UID(8)                                 -
	ISO14443b2ct     ISO14443b2ctTarget      UID(4)                                 -
	Felica           FelicaTarget            ID(8) Pad(8) SysCode(2)                Len
	DEP              DEPTarget               NFCID3(10) GB(48)                      GBLen
	Barcode          BarcodeTarget           Data(32)                               DataLen
	ISO14443biClass  ISO14443biClassTarget   UID(8)                                 -

# Contract

Marshallers copy every record field into the payload, then the baud rate, then the modulation
type. A Target is therefore only ever observed with a matching tag and payload. Nothing is
synchronised: share a Target between goroutines only behind your own lock.

Unmarshallers require the Target to carry their technology. Dispatch with Type first:

	switch nt.Type() {
	case nfc.ISO14443a:
	    var it nfc.ISO14443aTarget
	    nfc.UnmarshallISO14443a(&it, &nt)
	    fmt.Printf("UID: %X\n", it.UIDBytes())
	}

or let UnmarshallTarget pick the record type. Calling the wrong unmarshaller panics with
ErrModulationMismatch. Marshalling a record whose length field exceeds its array panics with
ErrLengthOverflow. Neither condition is repaired silently.

# Native layout

MarshalBinary and UnmarshalBinary use the packed nfc_target layout of the native driver. Length
fields that are size_t on the native side are written as 8-byte integers in host byte order.
See SizeTWidth.
*/
package nfc
