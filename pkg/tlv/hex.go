package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// hexSeparators are dropped before decoding so fixtures can be pasted from reader logs
// ("3B 8F 80", "3B:8F:80") or wrapped over several lines.
var hexSeparators = strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "")

// Hex constructs a byte slice from a series of hex strings. It panics on invalid input.
func Hex(parts ...string) []byte {
	cleanHex := hexSeparators.Replace(strings.Join(parts, ""))

	data, err := hex.DecodeString(cleanHex)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", cleanHex, err))
	}
	return data
}

// ParseHex is Hex for untrusted input: it returns an error instead of panicking.
func ParseHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(hexSeparators.Replace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return data, nil
}
