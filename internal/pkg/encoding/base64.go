package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// BytesToBase64 encodes data as standard padded Base64 (RFC 4648).
func BytesToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64ToBytes decodes standard padded Base64.
func Base64ToBytes(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return data, nil
}

// BytesToHex encodes data as lowercase hex.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// BytesToText decodes data as UTF-8, replacing invalid sequences with U+FFFD.
func BytesToText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
