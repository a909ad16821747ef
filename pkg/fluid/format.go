package fluid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies one of the five textual representations of a FLUID.
type Format int8

const (
	// Base58 is the sigil-prefixed base-58 form, e.g. "ƒuZZybuNNy".
	Base58 Format = iota
	// Hex is "0x" followed by minimal lowercase hex digits.
	Hex
	// DotHex is four dot-separated, zero-padded groups of four hex digits.
	DotHex
	// Words is the mnemonic word form, two groups of three words, e.g.
	// "reform-remote-galileo--heart-package-academy".
	Words
	// Decimal is minimal base-10 digits.
	Decimal
)

// Formats lists every representation, in detection precedence order.
var Formats = []Format{DotHex, Words, Base58, Hex, Decimal}

func (f Format) String() string {
	switch f {
	case Base58:
		return "base58"
	case Hex:
		return "hex"
	case DotHex:
		return "dothex"
	case Words:
		return "words"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// ParseFormat converts a format name, as printed by Format.String, back into
// a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "base58":
		return Base58, nil
	case "hex":
		return Hex, nil
	case "dothex":
		return DotHex, nil
	case "words":
		return Words, nil
	case "decimal":
		return Decimal, nil
	default:
		return 0, errors.Errorf("unknown FLUID format %q", s)
	}
}
