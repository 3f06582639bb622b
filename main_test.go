package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/nfctarget/pkg/codec"
	"github.com/gregLibert/nfctarget/pkg/nfc"
	"github.com/gregLibert/nfctarget/pkg/tlv"
)

func sampleTarget(t *testing.T) *nfc.Target {
	t.Helper()
	it := &nfc.ISO14443aTarget{Sak: 0x08, Baud: nfc.Nbr106}
	copy(it.Atqa[:], tlv.Hex("00 04"))
	if err := it.SetUID(tlv.Hex("DE AD BE EF")); err != nil {
		t.Fatal(err)
	}

	var nt nfc.Target
	it.Marshall(&nt)
	return &nt
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"Defaults", nil, options{format: "text"}, false},
		{"All flags", []string{"--reader", "1", "--format", "yaml"}, options{reader: 1, format: "yaml"}, false},
		{"Decode", []string{"--decode", "00", "--format=native"}, options{format: "native", decode: "00"}, false},
		{"Unknown format", []string{"--format", "xml"}, options{}, true},
		{"Extra argument", []string{"extra"}, options{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("parseFlags() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintTarget(t *testing.T) {
	nt := sampleTarget(t)

	tests := []struct {
		format string
		want   string
	}{
		{"text", "=== ISO14443A TARGET (106 kbps) ===\n    - ISO14443a.Atqa: 0004\n"},
		{"yaml", "modulation: ISO14443a (106 kbps)\n"},
		{"cbor", "830101A"},
		{"native", "000408"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printTarget(&buf, nt, tt.format); err != nil {
				t.Fatalf("printTarget: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Errorf("printTarget(%s) = %q, want prefix %q", tt.format, buf.String(), tt.want)
			}
		})
	}

	var zero nfc.Target
	if err := printTarget(&bytes.Buffer{}, &zero, "text"); !errors.Is(err, nfc.ErrUnknownModulation) {
		t.Errorf("printTarget(zero) error = %v, want ErrUnknownModulation", err)
	}
}

func TestDecodeTarget(t *testing.T) {
	nt := sampleTarget(t)

	native, err := nt.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	cbor, err := codec.Marshal(nt)
	if err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"native": native, "cbor": cbor} {
		t.Run(name, func(t *testing.T) {
			// reader logs space the bytes out
			got, err := decodeTarget(strings.ToLower(fmt.Sprintf("% X", data)))
			if err != nil {
				t.Fatalf("decodeTarget: %v", err)
			}
			want, _ := nfc.UnmarshallTarget(nt)
			back, err := nfc.UnmarshallTarget(got)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, back); diff != "" {
				t.Errorf("decodeTarget mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := decodeTarget("zz"); err == nil {
		t.Error("decodeTarget accepted invalid hex")
	}
}
