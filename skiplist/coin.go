package skiplist

import (
	"encoding/binary"
	"reflect"
)

// Key is the set of types the index can order and fingerprint: the builtin
// integer types and strings, including locally defined types based on them.
// Floats are deliberately absent; the fingerprint is defined over integer
// bit patterns and text bytes only.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~string
}

// flipPeriod is the cycle length of ShouldPromote in the attempt index: the
// fingerprint has eight bits, so bit selection wraps every eight attempts.
const flipPeriod = 8

// Fingerprint reduces a key to a single byte by XOR-folding its byte
// representation. Integer keys fold the four big-endian bytes of their
// 32-bit image (wider values fold their low 32 bits); string keys fold
// every byte. Equal keys always produce equal fingerprints, which is what
// makes the layer structure reproducible run to run.
func Fingerprint[K Key](key K) byte {
	switch k := any(key).(type) {
	case int:
		return foldWord(uint32(k))
	case int8:
		return foldWord(uint32(k))
	case int16:
		return foldWord(uint32(k))
	case int32:
		return foldWord(uint32(k))
	case int64:
		return foldWord(uint32(k))
	case uint:
		return foldWord(uint32(k))
	case uint8:
		return foldWord(uint32(k))
	case uint16:
		return foldWord(uint32(k))
	case uint32:
		return foldWord(k)
	case uint64:
		return foldWord(uint32(k))
	case uintptr:
		return foldWord(uint32(k))
	case string:
		return foldString(k)
	default:
		// Key types derived from the builtins miss the concrete cases
		// above, so fall back to their underlying kind.
		rv := reflect.ValueOf(key)
		switch rv.Kind() {
		case reflect.String:
			return foldString(rv.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return foldWord(uint32(rv.Int()))
		default:
			return foldWord(uint32(rv.Uint()))
		}
	}
}

// ShouldPromote simulates a deterministic coin flip: it reports whether key
// should occupy one more layer after attempt previous promotions, by testing
// bit attempt%flipPeriod of the key's fingerprint. The function is pure, so
// the same key always promotes through the same sequence of layers. A key
// whose fingerprint is all ones flips heads forever; insertion bounds the
// number of promotions to compensate.
func ShouldPromote[K Key](key K, attempt int) bool {
	return Fingerprint(key)&(1<<(attempt%flipPeriod)) != 0
}

func foldWord(w uint32) byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], w)
	return buf[0] ^ buf[1] ^ buf[2] ^ buf[3]
}

func foldString(s string) byte {
	var c byte
	for i := 0; i < len(s); i++ {
		c ^= s[i]
	}
	return c
}
