package nfc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/nfctarget/pkg/tlv"
	"gopkg.in/yaml.v3"
)

func sampleISO14443a() *ISO14443aTarget {
	it := &ISO14443aTarget{Sak: 0x08, Baud: Nbr106}
	copy(it.Atqa[:], tlv.Hex("00 04"))
	_ = it.SetUID(tlv.Hex("DE AD BE EF"))
	return it
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		name string
		r    Record
		want string
	}{
		{"ISO14443a", sampleISO14443a(), "ISO14443a (106 kbps) UID: DEADBEEF"},
		{"Jewel", &JewelTarget{ID: [4]byte{1, 2, 3, 4}}, "Jewel (Undefined) ID: 01020304"},
		{"Barcode", &BarcodeTarget{DataLen: 2, Data: [BarcodeDataSize]byte{0xAB, 0xCD}, Baud: Nbr106}, "Barcode (106 kbps) Data: ABCD"},
		{"Bad length", &ISO14443aTarget{UIDLen: 12}, "ISO14443a (Undefined) UID: 00000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	got := sampleISO14443a().Describe()

	want := []string{
		"=== ISO14443A TARGET (106 kbps) ===",
		"    - ISO14443a.Atqa: 0004",
		"    - ISO14443a.Sak: 08",
		"    - ISO14443a.UIDLen: 4",
		"    - ISO14443a.UID: DEADBEEF",
		"    - ISO14443a.AtsLen: 0",
		"    - ISO14443a.Ats: (empty)",
	}
	if diff := cmp.Diff(want, strings.Split(got, "\n")); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeDEP(t *testing.T) {
	dt := &DEPTarget{DepMode: Passive, Baud: Nbr424}
	_ = dt.SetGeneralBytes(tlv.Hex("46 66 6D"))

	got := dt.Describe()
	for _, line := range []string{
		"=== DEP TARGET (424 kbps) ===",
		"    - DEP.GB: 46666D",
		"    - DEP.GBLen: 3",
		"    - DEP.DepMode: Passive",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("Describe() = %q\nmissing %q", got, line)
		}
	}
	if strings.Contains(got, "Baud") {
		t.Errorf("Describe() repeats the baud rate as a field:\n%s", got)
	}
}

func TestReportYAML(t *testing.T) {
	rep := NewReport(sampleISO14443a())
	if rep.Modulation != "ISO14443a (106 kbps)" {
		t.Errorf("Modulation = %q", rep.Modulation)
	}

	out, err := rep.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if diff := cmp.Diff(rep, decoded); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), "value: DEADBEEF") {
		t.Errorf("YAML output misses the UID:\n%s", out)
	}
}
