package methods

import (
	"go.mau.fi/util/random"
)

// GenerateTrackingId produces the 16-byte tracking id Voyager expects on
// created entities, encoded the way the web client does (raw bytes widened
// to runes, invalid UTF-8 included).
func GenerateTrackingId() string {
	randByteArray := random.Bytes(16)
	charArray := make([]rune, len(randByteArray))
	for i, b := range randByteArray {
		charArray[i] = rune(b)
	}
	return string(charArray)
}
