package nfc

import (
	"fmt"
	"strings"

	"github.com/gregLibert/nfctarget/pkg/tlv"
	"gopkg.in/yaml.v3"
)

// Report is a serialisable, human-oriented view of a record.
type Report struct {
	Modulation string      `yaml:"modulation"`
	Fields     []tlv.Field `yaml:"fields"`
}

// NewReport builds the report of r. Bounded arrays only show their valid prefix.
func NewReport(r Record) Report {
	fields := tlv.StructFields(r)
	kept := fields[:0]
	for _, f := range fields {
		if f.Name != "Baud" {
			kept = append(kept, f)
		}
	}
	return Report{Modulation: r.Modulation().String(), Fields: kept}
}

// YAML encodes the report with gopkg.in/yaml.v3.
func (rep Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("yaml encoding failed: %w", err)
	}
	return out, nil
}

// describeRecord renders the multi-line report used by every record's Describe method.
func describeRecord(r Record) string {
	var sb strings.Builder

	m := r.Modulation()
	sb.WriteString(fmt.Sprintf("=== %s TARGET (%s) ===", strings.ToUpper(m.Type.String()), m.BaudRate))
	tlv.WriteFields(&sb, m.Type.String(), NewReport(r).Fields)

	return sb.String()
}

// recordString is the one-line form: modulation and the identifier of the card.
func recordString(r Record) string {
	var label string
	var id []byte

	switch t := r.(type) {
	case *DEPTarget:
		label, id = "NFCID3", t.NFCID3[:]
	case *ISO14443aTarget:
		label, id = "UID", displayPrefix(t.UID[:], t.UIDLen)
	case *FelicaTarget:
		label, id = "ID", t.ID[:]
	case *ISO14443bTarget:
		label, id = "PUPI", t.Pupi[:]
	case *ISO14443biTarget:
		label, id = "DIV", t.DIV[:]
	case *ISO14443b2srTarget:
		label, id = "UID", t.UID[:]
	case *ISO14443b2ctTarget:
		label, id = "UID", t.UID[:]
	case *JewelTarget:
		label, id = "ID", t.ID[:]
	case *BarcodeTarget:
		label, id = "Data", displayPrefix(t.Data[:], t.DataLen)
	case *ISO14443biClassTarget:
		label, id = "UID", t.UID[:]
	}

	return fmt.Sprintf("%s %s: %X", r.Modulation(), label, id)
}

// displayPrefix is validPrefix for display only: a bad length shows the whole array.
func displayPrefix(buf []byte, n int) []byte {
	if n < 0 || n > len(buf) {
		return buf
	}
	return buf[:n]
}
