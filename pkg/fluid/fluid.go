// Package fluid converts 64-bit job identifiers issued by the Flux scheduler
// (FLUIDs, see Flux RFC 19) between their five textual representations:
// decimal, hex, dotted hex, base58 and mnemonic words. Encoding never fails
// for any uint64; decoding malformed input returns a *ParseError.
//
// The package is pure and stateless apart from the immutable word table, so
// all operations are safe for concurrent use without locking.
package fluid

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ratelproject/ratel-runner/pkg/fluid/mnemonicode"
)

const (
	// Sigil is the character prefixed to the base58 form.
	Sigil = "ƒ"
	// asciiSigil is accepted on decode for input that cannot carry the
	// Unicode sigil, e.g. identifiers typed on a plain terminal.
	asciiSigil = "f"
)

// fluidBytes is the width of a FLUID's byte serialization.
const fluidBytes = 8

// Codec converts FLUIDs between their textual representations. The zero
// value is not usable; construct one with New, or use the package-level
// functions, which are backed by the compiled-in word table.
type Codec struct {
	mnemonic *mnemonicode.Codec
}

// New returns a codec whose word form is backed by the given word table.
func New(list *mnemonicode.WordList) *Codec {
	return &Codec{mnemonic: mnemonicode.New(list)}
}

var defaultCodec = &Codec{mnemonic: mnemonicode.Default()}

// Encode renders id in the requested format using the compiled-in word table.
func Encode(id uint64, format Format) string {
	return defaultCodec.Encode(id, format)
}

// Decode guesses the format of s and parses it using the compiled-in word
// table.
func Decode(s string) (uint64, error) {
	return defaultCodec.Decode(s)
}

// DecodeAs parses s in the given format using the compiled-in word table.
func DecodeAs(s string, format Format) (uint64, error) {
	return defaultCodec.DecodeAs(s, format)
}

// Encode renders id in the requested format.
func (c *Codec) Encode(id uint64, format Format) string {
	switch format {
	case Base58:
		return Sigil + encodeBase58(id)
	case Hex:
		return fmt.Sprintf("0x%x", id)
	case DotHex:
		return fmt.Sprintf("%04x.%04x.%04x.%04x",
			id>>48&0xffff, id>>32&0xffff, id>>16&0xffff, id&0xffff)
	case Words:
		var buf [fluidBytes]byte
		binary.LittleEndian.PutUint64(buf[:], id)
		return c.mnemonic.EncodeToString(buf[:])
	case Decimal:
		return strconv.FormatUint(id, 10)
	default:
		panic(fmt.Sprintf("cannot encode FLUID in unknown format %d", int8(format)))
	}
}

// Decode guesses the format of s and parses it.
func (c *Codec) Decode(s string) (uint64, error) {
	return c.DecodeAs(s, Guess(s))
}

// DecodeAs parses s in the given format, bypassing detection.
func (c *Codec) DecodeAs(s string, format Format) (uint64, error) {
	switch format {
	case Base58:
		return decodeBase58(s)
	case Hex:
		if !strings.HasPrefix(s, "0x") {
			return 0, parseError(s, format, errors.New(`missing "0x" prefix`))
		}
		id, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, parseError(s, format, err)
		}
		return id, nil
	case DotHex:
		return decodeDotHex(s)
	case Words:
		return c.decodeWords(s)
	case Decimal:
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, parseError(s, format, err)
		}
		return id, nil
	default:
		return 0, parseError(s, format, errors.New("unknown format"))
	}
}

func decodeDotHex(s string) (uint64, error) {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return 0, parseError(s, DotHex, errors.Errorf("want 4 dot-separated groups, got %d", len(groups)))
	}
	var id uint64
	for _, group := range groups {
		if len(group) != 4 {
			return 0, parseError(s, DotHex, errors.Errorf("group %q must be exactly 4 hex digits", group))
		}
		word, err := strconv.ParseUint(group, 16, 64)
		if err != nil {
			return 0, parseError(s, DotHex, err)
		}
		id = id<<16 | word
	}
	return id, nil
}

func (c *Codec) decodeWords(s string) (uint64, error) {
	data, err := c.mnemonic.DecodeString(s)
	if err != nil {
		return 0, parseError(s, Words, err)
	}
	if len(data) != fluidBytes {
		return 0, parseError(s, Words, errors.Errorf("decodes to %d bytes, want %d", len(data), fluidBytes))
	}
	return binary.LittleEndian.Uint64(data), nil
}

// Guess infers the format of an encoded FLUID from its syntax alone. The
// rules are applied in a fixed order, first match wins; the ordering matters
// because the character sets of the formats overlap.
func Guess(s string) Format {
	switch {
	case strings.Contains(s, "."):
		return DotHex
	case strings.Contains(s, "-"):
		return Words
	case strings.HasPrefix(s, Sigil) || strings.HasPrefix(s, asciiSigil):
		return Base58
	case strings.HasPrefix(s, "0x"):
		return Hex
	default:
		return Decimal
	}
}
