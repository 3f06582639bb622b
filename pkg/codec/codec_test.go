package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sampleCard struct {
	UID    [4]byte
	Sak    byte
	AtsLen int
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleCard{UID: [4]byte{0xDE, 0xAD, 0xBE, 0xEF}, Sak: 0x08, AtsLen: 5}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleCard
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(map[string]int{"c": 3, "a": 1, "b": 2})
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestByteArrayIsByteString(t *testing.T) {
	data, err := Marshal([4]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// major type 2, length 4
	want := []byte{0x44, 0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(data, want) {
		t.Errorf("got %X, want %X", data, want)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		// {"Sak": 8, "Extra": 1}
		{"Unknown field", []byte{0xA2, 0x63, 'S', 'a', 'k', 0x08, 0x65, 'E', 'x', 't', 'r', 'a', 0x01}},
		// {"Sak": 8, "Sak": 9}
		{"Duplicate key", []byte{0xA2, 0x63, 'S', 'a', 'k', 0x08, 0x63, 'S', 'a', 'k', 0x09}},
		{"Invalid CBOR", []byte{0xFF, 0xFE, 0xFD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var card sampleCard
			if err := Unmarshal(tt.data, &card); err == nil {
				t.Errorf("Unmarshal(%X) should fail", tt.data)
			}
		})
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	cards := []sampleCard{
		{UID: [4]byte{1, 2, 3, 4}, Sak: 0x20},
		{UID: [4]byte{5, 6, 7, 8}, Sak: 0x08, AtsLen: 1},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, card := range cards {
		if err := encoder.Encode(card); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range cards {
		var got sampleCard
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode card %d: %v", i, err)
		}
		if got != want {
			t.Errorf("card %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(sampleCard{Sak: 0x08})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"Sak"`) {
		t.Errorf("notation %q does not contain \"Sak\"", notation)
	}
}
