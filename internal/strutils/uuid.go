package strutils

import (
	"fmt"
	"strings"
)

const strippedUUIDLength = 32

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// NormalizeUUID removes dashes and lowercases the uuid. Accepts both the
// dashed and undashed forms the API hands out.
func NormalizeUUID(uuid string) (string, error) {
	var normalized strings.Builder
	normalized.Grow(strippedUUIDLength)

	for _, r := range uuid {
		switch {
		case r == '-':
			continue
		case isHexDigit(r):
			normalized.WriteRune(toLowerHex(r))
		default:
			return "", fmt.Errorf("invalid character in UUID. input: '%s'", uuid)
		}
	}

	if normalized.Len() != strippedUUIDLength {
		return "", fmt.Errorf("normalized UUID has incorrect length. input: '%s'", uuid)
	}
	return normalized.String(), nil
}

func toLowerHex(r rune) rune {
	if r >= 'A' && r <= 'F' {
		return r + ('a' - 'A')
	}
	return r
}

func UUIDIsNormalized(uuid string) bool {
	normalized, err := NormalizeUUID(uuid)
	if err != nil {
		return false
	}
	return normalized == uuid
}
