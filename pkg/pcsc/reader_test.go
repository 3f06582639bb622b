package pcsc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/nfctarget/pkg/nfc"
	"github.com/gregLibert/nfctarget/pkg/tlv"
)

func mustParseATR(t *testing.T, s string) *ATR {
	t.Helper()
	atr, err := ParseATR(tlv.Hex(s))
	if err != nil {
		t.Fatalf("ParseATR(%s): %v", s, err)
	}
	return atr
}

func TestGetUID(t *testing.T) {
	card := &mockCard{responses: [][]byte{tlv.Hex("DEADBEEF 9000")}}
	uid, err := GetUID(NewClient(card))
	if err != nil {
		t.Fatalf("GetUID: %v", err)
	}
	if diff := cmp.Diff(tlv.Hex("DEADBEEF"), uid); diff != "" {
		t.Errorf("UID mismatch (-want +got):\n%s", diff)
	}

	card = &mockCard{responses: [][]byte{tlv.Hex("6A 81")}}
	if _, err := GetUID(NewClient(card)); err == nil {
		t.Error("GetUID should fail on 6A81")
	}
}

func TestReadTarget(t *testing.T) {
	tests := []struct {
		name     string
		atr      string
		response string
		want     nfc.Record
	}{
		{
			name:     "MIFARE Classic 1K",
			atr:      atrMifare1K,
			response: "DEADBEEF 9000",
			want: &nfc.ISO14443aTarget{
				Atqa:   [2]byte{0x00, 0x04},
				Sak:    0x08,
				UIDLen: 4,
				UID:    [10]byte{0xDE, 0xAD, 0xBE, 0xEF},
				Baud:   nfc.Nbr106,
			},
		},
		{
			name:     "MIFARE Ultralight",
			atr:      atrUltralight,
			response: "04 11 22 33 44 55 66 9000",
			want: &nfc.ISO14443aTarget{
				Atqa:   [2]byte{0x00, 0x44},
				UIDLen: 7,
				UID:    [10]byte{0x04, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
				Baud:   nfc.Nbr106,
			},
		},
		{
			name:     "FeliCa",
			atr:      atrFelica,
			response: "01 2E 3D 4C 5B 6A 79 88 9000",
			want: &nfc.FelicaTarget{
				ID:   [8]byte{0x01, 0x2E, 0x3D, 0x4C, 0x5B, 0x6A, 0x79, 0x88},
				Baud: nfc.Nbr212,
			},
		},
		{
			name:     "ISO14443B",
			atr:      atrTypeB,
			response: "CA FE BA BE 9000",
			want: &nfc.ISO14443bTarget{
				Pupi: [4]byte{0xCA, 0xFE, 0xBA, 0xBE},
				Baud: nfc.Nbr106,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &mockCard{responses: [][]byte{tlv.Hex(tt.response)}}

			got, err := ReadTarget(card, mustParseATR(t, tt.atr))
			if err != nil {
				t.Fatalf("ReadTarget: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadTarget mismatch (-want +got):\n%s", diff)
			}

			// the record must survive a trip through the tagged target
			var nt nfc.Target
			got.Marshall(&nt)
			back, err := nfc.UnmarshallTarget(&nt)
			if err != nil {
				t.Fatalf("UnmarshallTarget: %v", err)
			}
			if diff := cmp.Diff(got, back); diff != "" {
				t.Errorf("target round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadTargetErrors(t *testing.T) {
	tests := []struct {
		name     string
		atr      string
		response string
		wantErr  error
	}{
		{"ISO14443-4 card", atrDESFire, "", ErrUnsupportedCard},
		{"ISO15693 card", atrISO15693, "", ErrUnsupportedCard},
		{"UID too long", atrMifare1K, "0102030405060708090A0B 9000", nfc.ErrLengthOverflow},
		{"PUPI wrong size", atrTypeB, "CAFE 9000", nil},
		{"IDm wrong size", atrFelica, "0102 9000", nil},
		{"Reader error", atrMifare1K, "63 00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &mockCard{}
			if tt.response != "" {
				card.responses = [][]byte{tlv.Hex(tt.response)}
			}

			_, err := ReadTarget(card, mustParseATR(t, tt.atr))
			if err == nil {
				t.Fatal("ReadTarget should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if errors.Is(tt.wantErr, ErrUnsupportedCard) && len(card.sent) != 0 {
				t.Errorf("unsupported card was sent %d commands", len(card.sent))
			}
		})
	}
}
