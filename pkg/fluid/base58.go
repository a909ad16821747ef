package fluid

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// base58Alphabet excludes the visually ambiguous glyphs 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func encodeBase58(id uint64) string {
	if id == 0 {
		return ""
	}
	// 58^11 > 2^64, so eleven digits always suffice.
	var digits [11]byte
	i := len(digits)
	for id > 0 {
		i--
		digits[i] = base58Alphabet[id%58]
		id /= 58
	}
	return string(digits[i:])
}

func decodeBase58(s string) (uint64, error) {
	body := s
	for _, sigil := range []string{Sigil, asciiSigil} {
		if strings.HasPrefix(body, sigil) {
			body = body[len(sigil):]
			break
		}
	}
	var id uint64
	for _, r := range body {
		digit := strings.IndexRune(base58Alphabet, r)
		if digit < 0 {
			return 0, parseError(s, Base58, errors.Errorf("invalid base58 character %q", r))
		}
		if id > (math.MaxUint64-uint64(digit))/58 {
			return 0, parseError(s, Base58, errors.New("value overflows 64 bits"))
		}
		id = id*58 + uint64(digit)
	}
	return id, nil
}
