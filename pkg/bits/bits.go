// Package bits names bits the way ISO/IEC 7816 and 14443 tables do: b8 is the most
// significant bit, b1 the least.
package bits

// Bit returns a byte with only the n-th bit set (1 to 8).
func Bit(n uint) byte {
	if n < 1 || n > 8 {
		return 0
	}
	return 1 << (n - 1)
}

// IsSet checks if the n-th bit is set (1 to 8).
func IsSet(b byte, n uint) bool {
	return b&Bit(n) != 0
}

// GetRange extracts the value from a range of bits (e.g., bits 4 to 3).
// Example: GetRange(0b00001100, 4, 3) returns 3 (0b11)
func GetRange(b byte, high, low uint) byte {
	if high < low || high > 8 || low < 1 {
		return 0
	}

	width := high - low + 1
	mask := byte((1 << width) - 1)

	return (b >> (low - 1)) & mask
}

// Set returns b with bit n set.
func Set(b byte, n uint) byte {
	return b | Bit(n)
}

// Clear returns b with bit n cleared.
func Clear(b byte, n uint) byte {
	return b &^ Bit(n)
}

// Count returns how many of the given bits are set in b.
// ATR and ATS interface bytes are present once per set indicator bit.
func Count(b byte, ns ...uint) int {
	c := 0
	for _, n := range ns {
		if IsSet(b, n) {
			c++
		}
	}
	return c
}

// Nibbles splits b into its high (b8-b5) and low (b4-b1) halves.
func Nibbles(b byte) (high, low byte) {
	return GetRange(b, 8, 5), GetRange(b, 4, 1)
}
