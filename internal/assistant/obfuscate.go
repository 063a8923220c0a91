package assistant

import (
	"encoding/base64"
	"fmt"
)

// Obfuscate XORs text byte-wise with the key (repeated to length) and
// base64-encodes the result. This is a reversible transform, not
// encryption: anyone holding the key (or willing to guess it) can undo
// it. Its only purpose is keeping symptom-derived cleartext out of
// transit logs. The key must be non-empty.
func Obfuscate(text, key string) string {
	data := []byte(text)
	k := []byte(key)

	for i := range data {
		data[i] ^= k[i%len(k)]
	}

	return base64.StdEncoding.EncodeToString(data)
}

// Deobfuscate reverses Obfuscate with the same key.
func Deobfuscate(encoded, key string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64.DecodeString: %w", err)
	}

	k := []byte(key)
	for i := range data {
		data[i] ^= k[i%len(k)]
	}

	return string(data), nil
}
