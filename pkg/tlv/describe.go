package tlv

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/moov-io/bertlv"
)

// Field is one reportable struct field: its display name and formatted value.
type Field struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// WriteStructFields writes one "    - prefix.Name: value" line per field of s.
// A non-empty builder gets a separating newline first. No trailing newline is written.
func WriteStructFields(sb *strings.Builder, prefix string, s interface{}) {
	WriteFields(sb, prefix, StructFields(s))
}

// WriteFields writes pre-collected fields with the same layout as WriteStructFields.
func WriteFields(sb *strings.Builder, prefix string, fields []Field) {
	if len(fields) == 0 {
		return
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("    - %s.%s: %s", prefix, f.Name, f.Value))
	}

	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(lines, "\n"))
}

// StructFields returns the reportable fields of a struct (or pointer to struct) in
// declaration order.
//
// Supported field kinds:
//   - []byte: skipped when empty; formatted according to the `fmt` tag ("ascii", "int" or hex).
//   - [N]byte: always reported. A `len:"Other"` tag names an int field holding the number of
//     valid bytes; only that prefix is shown.
//   - fmt.Stringer (nil pointers are skipped), byte, integer and bool scalars.
//   - []bertlv.TLV: one entry per unknown tag.
func StructFields(s interface{}) []Field {
	val := reflect.ValueOf(s)

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	typ := val.Type()
	var fields []Field

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		switch {
		case field.Type() == reflect.TypeOf([]bertlv.TLV{}):
			fields = append(fields, formatUnknownField(field)...)

		case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.Uint8:
			if f, ok := formatByteSliceField(field, fieldType); ok {
				fields = append(fields, f)
			}

		case field.Kind() == reflect.Array && field.Type().Elem().Kind() == reflect.Uint8:
			fields = append(fields, formatByteArrayField(val, field, fieldType))

		default:
			if f, ok := formatScalarField(field, fieldType); ok {
				fields = append(fields, f)
			}
		}
	}

	return fields
}

func fieldName(fieldType reflect.StructField) string {
	if tlvTag := fieldType.Tag.Get("tlv"); tlvTag != "" && !strings.HasPrefix(tlvTag, ",") {
		return fmt.Sprintf("%s (%s)", fieldType.Name, tlvTag)
	}
	return fieldType.Name
}

func formatByteSliceField(field reflect.Value, fieldType reflect.StructField) (Field, bool) {
	if field.IsNil() || field.Len() == 0 {
		return Field{}, false
	}

	return Field{
		Name:  fieldName(fieldType),
		Value: formatByteValue(field.Bytes(), fieldType.Tag.Get("fmt")),
	}, true
}

func formatByteArrayField(parent, field reflect.Value, fieldType reflect.StructField) Field {
	data := make([]byte, field.Len())
	reflect.Copy(reflect.ValueOf(data), field)

	name := fieldName(fieldType)
	lenTag := fieldType.Tag.Get("len")
	if lenTag == "" {
		return Field{Name: name, Value: formatByteValue(data, fieldType.Tag.Get("fmt"))}
	}

	lenField := parent.FieldByName(lenTag)
	if !lenField.IsValid() || !lenField.CanInt() {
		return Field{Name: name, Value: formatByteValue(data, fieldType.Tag.Get("fmt"))}
	}

	n := lenField.Int()
	if n < 0 || n > int64(len(data)) {
		return Field{
			Name:  name,
			Value: fmt.Sprintf("%X (invalid %s %d)", data, lenTag, n),
		}
	}
	if n == 0 {
		return Field{Name: name, Value: "(empty)"}
	}

	return Field{Name: name, Value: formatByteValue(data[:n], fieldType.Tag.Get("fmt"))}
}

func formatScalarField(field reflect.Value, fieldType reflect.StructField) (Field, bool) {
	name := fieldName(fieldType)

	if field.Kind() == reflect.Ptr && field.IsNil() {
		return Field{}, false
	}
	if s, ok := field.Interface().(fmt.Stringer); ok {
		return Field{Name: name, Value: s.String()}, true
	}

	switch field.Kind() {
	case reflect.Uint8:
		return Field{Name: name, Value: fmt.Sprintf("%02X", field.Uint())}, true
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Field{Name: name, Value: fmt.Sprintf("%d", field.Uint())}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Field{Name: name, Value: fmt.Sprintf("%d", field.Int())}, true
	case reflect.Bool:
		return Field{Name: name, Value: fmt.Sprintf("%t", field.Bool())}, true
	default:
		return Field{}, false
	}
}

func formatUnknownField(field reflect.Value) []Field {
	if field.IsNil() || field.Len() == 0 {
		return nil
	}

	var fields []Field
	tlvs := field.Interface().([]bertlv.TLV)
	for _, t := range tlvs {
		fields = append(fields, Field{
			Name:  "Unknown Tag " + t.Tag,
			Value: strings.ToUpper(hex.EncodeToString(t.Value)),
		})
	}
	return fields
}

func formatByteValue(data []byte, format string) string {
	switch format {
	case "ascii":
		return fmt.Sprintf("%X (%q)", data, MakeSafeASCII(data))
	case "int":
		var integer int
		for _, b := range data {
			integer = (integer << 8) | int(b)
		}
		return fmt.Sprintf("%X (Dec: %d)", data, integer)
	default:
		return strings.ToUpper(hex.EncodeToString(data))
	}
}

// MakeSafeASCII replaces every non-printable byte with '.'.
func MakeSafeASCII(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 && r <= 126 {
			return r
		}
		return '.'
	}, string(data))
}
