package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Derived key types exercise the reflect fallback in Fingerprint.
type wordKey uint16

type textKey string

func TestFingerprintIntegers(t *testing.T) {
	tests := []struct {
		name string
		key  int
		want byte
	}{
		{"zero", 0, 0x00},
		{"single byte", 5, 0x05},
		{"all ones byte", 255, 0xFF},
		{"multi byte", 0x12345678, 0x08},
		{"bytes cancel", 0x00FF00FF, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.key))
		})
	}
}

func TestFingerprintStrings(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want byte
	}{
		{"empty", "", 0x00},
		{"single char", "A", 0x41},
		{"two chars", "AB", 0x03},
		{"chars cancel", "aa", 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.key))
		})
	}
}

func TestFingerprintDerivedTypes(t *testing.T) {
	assert.Equal(t, byte(0x40), Fingerprint(wordKey(0x0141)))
	assert.Equal(t, byte(0x41), Fingerprint(textKey("A")))
	assert.Equal(t, Fingerprint(255), Fingerprint(uint8(255)))
}

func TestShouldPromoteSequences(t *testing.T) {
	// Key 5 is 00000101: heads on even bit positions 0 and 2 only.
	assert.True(t, ShouldPromote(5, 0))
	assert.False(t, ShouldPromote(5, 1))
	assert.True(t, ShouldPromote(5, 2))
	assert.False(t, ShouldPromote(5, 3))

	// Key 7 is 00000111: three heads, then tails.
	for attempt := 0; attempt < 3; attempt++ {
		assert.True(t, ShouldPromote(7, attempt))
	}
	assert.False(t, ShouldPromote(7, 3))

	// Key 0 never flips heads; key 255 always does.
	for attempt := 0; attempt < 2*flipPeriod; attempt++ {
		assert.False(t, ShouldPromote(0, attempt))
		assert.True(t, ShouldPromote(255, attempt))
	}
}

func TestShouldPromoteIsPure(t *testing.T) {
	for _, key := range []int{0, 1, 5, 7, 42, 255, 0x12345678} {
		for attempt := 0; attempt < flipPeriod; attempt++ {
			first := ShouldPromote(key, attempt)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, ShouldPromote(key, attempt),
					"key %d attempt %d", key, attempt)
			}
			// Bit selection wraps, so the sequence has period flipPeriod.
			assert.Equal(t, first, ShouldPromote(key, attempt+flipPeriod))
		}
	}
}
