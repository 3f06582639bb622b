package tlv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/moov-io/bertlv"
)

type MockTemplate struct {
	FileID     []byte `tlv:"84"`
	Label      []byte `tlv:"50" fmt:"ascii"`
	Priority   []byte `tlv:"87" fmt:"int"`
	RawData    []byte // No tag
	EmptyField []byte `tlv:"99"`
	Unknown    []bertlv.TLV
}

func TestWriteStructFields(t *testing.T) {
	mock := MockTemplate{
		FileID:   []byte{0xA0, 0x00, 0x01},
		Label:    []byte{'V', 'I', 'S', 'A', 0x00},
		Priority: []byte{0x01},
		RawData:  []byte{0xCA, 0xFE},
		Unknown: []bertlv.TLV{
			{Tag: "9F01", Value: []byte{0x12, 0x34}},
		},
	}

	tests := []struct {
		name          string
		prefix        string
		input         interface{}
		expectedLines []string
	}{
		{
			name:   "Struct Pointer Input",
			prefix: "Test",
			input:  &mock,
			expectedLines: []string{
				"    - Test.FileID (84): A00001",
				`    - Test.Label (50): 5649534100 ("VISA.")`,
				"    - Test.Priority (87): 01 (Dec: 1)",
				"    - Test.RawData: CAFE",
				"    - Test.Unknown Tag 9F01: 1234",
			},
		},
		{
			name:   "Struct Value Input",
			prefix: "Val",
			input:  mock,
			expectedLines: []string{
				"    - Val.FileID (84): A00001",
				`    - Val.Label (50): 5649534100 ("VISA.")`,
				"    - Val.Priority (87): 01 (Dec: 1)",
				"    - Val.RawData: CAFE",
				"    - Val.Unknown Tag 9F01: 1234",
			},
		},
		{
			name:          "Nil Pointer",
			prefix:        "Nil",
			input:         (*MockTemplate)(nil),
			expectedLines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			WriteStructFields(&sb, tt.prefix, tt.input)
			actualLines := strings.Split(sb.String(), "\n")

			if diff := cmp.Diff(tt.expectedLines, actualLines); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMakeSafeASCII(t *testing.T) {
	input := []byte{0x41, 0x42, 0x00, 0x1F, 0x7F, 0x43} // AB, null, US, DEL, C
	want := "AB...C"                                    // 0x7F (127) is > 126, so it becomes dot

	got := MakeSafeASCII(input)
	if got != want {
		t.Errorf("MakeSafeASCII() = %q, want %q", got, want)
	}
}

type level int

func (l level) String() string { return [...]string{"low", "high"}[l] }

type boundedTemplate struct {
	UIDLen  int
	UID     [7]byte `len:"UIDLen"`
	Ats     [4]byte `len:"AtsLen"`
	AtsLen  int
	Fixed   [2]byte
	Sak     byte
	Counter uint16
	Enabled bool
	Level   level
	Next    *level
	hidden  byte
}

func TestStructFieldsBounded(t *testing.T) {
	tmpl := boundedTemplate{
		UIDLen:  4,
		UID:     [7]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x11, 0x22, 0x33},
		Ats:     [4]byte{1, 2, 3, 4},
		AtsLen:  9,
		Fixed:   [2]byte{0x00, 0x04},
		Sak:     0x08,
		Counter: 300,
		Enabled: true,
		Level:   1,
		hidden:  0xFF,
	}

	want := []Field{
		{Name: "UIDLen", Value: "4"},
		{Name: "UID", Value: "DEADBEEF"},
		{Name: "Ats", Value: "01020304 (invalid AtsLen 9)"},
		{Name: "AtsLen", Value: "9"},
		{Name: "Fixed", Value: "0004"},
		{Name: "Sak", Value: "08"},
		{Name: "Counter", Value: "300"},
		{Name: "Enabled", Value: "true"},
		{Name: "Level", Value: "high"},
	}

	if diff := cmp.Diff(want, StructFields(&tmpl)); diff != "" {
		t.Errorf("StructFields mismatch (-want +got):\n%s", diff)
	}

	tmpl.UIDLen = 0
	fields := StructFields(tmpl)
	if fields[1] != (Field{Name: "UID", Value: "(empty)"}) {
		t.Errorf("empty UID rendered as %+v", fields[1])
	}
}

func TestWriteFields(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("=== HEADER ===")
	WriteFields(&sb, "P", []Field{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}})
	WriteFields(&sb, "P", nil)

	want := "=== HEADER ===\n    - P.A: 1\n    - P.B: 2"
	if got := sb.String(); got != want {
		t.Errorf("WriteFields() = %q, want %q", got, want)
	}
}
