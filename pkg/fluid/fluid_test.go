package fluid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratelproject/ratel-runner/pkg/fluid/mnemonicode"
)

const testID = uint64(6731191091817518)

func TestCrossFormatFixtures(t *testing.T) {
	tests := map[Format]string{
		Base58:  "ƒuZZybuNNy",
		Hex:     "0x17e9fb8df16c2e",
		DotHex:  "0017.e9fb.8df1.6c2e",
		Words:   "reform-remote-galileo--heart-package-academy",
		Decimal: "6731191091817518",
	}
	for format, encoded := range tests {
		t.Run(format.String(), func(t *testing.T) {
			assert.Equal(t, encoded, Encode(testID, format))

			id, err := DecodeAs(encoded, format)
			require.NoError(t, err)
			assert.Equal(t, testID, id)

			id, err = Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, testID, id)
		})
	}
}

func TestAsciiSigil(t *testing.T) {
	id, err := Decode("fuZZybuNNy")
	require.NoError(t, err)
	assert.Equal(t, testID, id)
}

func TestBoundaryValues(t *testing.T) {
	tests := map[string]struct {
		id       uint64
		expected map[Format]string
	}{
		"zero": {
			id: 0,
			expected: map[Format]string{
				Base58:  "ƒ",
				Hex:     "0x0",
				DotHex:  "0000.0000.0000.0000",
				Words:   "academy-academy-academy--academy-academy-academy",
				Decimal: "0",
			},
		},
		"max": {
			id: math.MaxUint64,
			expected: map[Format]string{
				Base58:  "ƒjpXCZedGfVQ",
				Hex:     "0xffffffffffffffff",
				DotHex:  "ffff.ffff.ffff.ffff",
				Words:   "natural-analyze-verbal--natural-analyze-verbal",
				Decimal: "18446744073709551615",
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for format, encoded := range tc.expected {
				assert.Equal(t, encoded, Encode(tc.id, format))

				id, err := Decode(encoded)
				require.NoError(t, err)
				assert.Equal(t, tc.id, id)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 57, 58, 255, 65535, 65536, 1 << 24, 1<<32 - 1, 1 << 32, testID, math.MaxUint64}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ids = append(ids, rng.Uint64())
	}
	for _, format := range Formats {
		for _, id := range ids {
			decoded, err := Decode(Encode(id, format))
			require.NoError(t, err)
			require.Equal(t, id, decoded)
		}
	}
}

func TestGuessIsIdempotent(t *testing.T) {
	ids := []uint64{0, 1, 58, 65536, testID, math.MaxUint64}
	for _, format := range Formats {
		for _, id := range ids {
			assert.Equal(t, format, Guess(Encode(id, format)))
		}
	}
}

func TestGuessPrecedence(t *testing.T) {
	tests := map[string]Format{
		"0017.e9fb.8df1.6c2e": DotHex,
		"reform-remote-galileo--heart-package-academy": Words,
		"ƒuZZybuNNy":       Base58,
		"fuZZybuNNy":       Base58,
		"0x17e9fb8df16c2e": Hex,
		"6731191091817518": Decimal,
		// A bare hex string has no 0x prefix and is treated as decimal.
		"17e9fb8df16c2e": Decimal,
	}
	for input, format := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, format, Guess(input))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]struct {
		input  string
		format Format
	}{
		"unknown word":              {"reform-bogus-galileo--heart-package-academy", Words},
		"too few word groups":       {"reform-remote-galileo", Words},
		"short dothex group":        {"17.e9fb.8df1.6c2e", DotHex},
		"dothex bad digit":          {"zzzz.e9fb.8df1.6c2e", DotHex},
		"invalid base58 character":  {"ƒu0Oy", Base58},
		"base58 overflow":           {"ƒzzzzzzzzzzzz", Base58},
		"hex overflow":              {"0xffffffffffffffffff", Hex},
		"decimal overflow":          {"18446744073709551616", Decimal},
		"bare hex is not a decimal": {"17e9fb8df16c2e", Decimal},
		"empty decimal":             {"", Decimal},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(tc.input)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.input, parseErr.Input)
			assert.Equal(t, tc.format, parseErr.Format)
			assert.ErrorContains(t, err, tc.input)
		})
	}
}

func TestDecodeAsMissingHexPrefix(t *testing.T) {
	_, err := DecodeAs("17e9fb8df16c2e", Hex)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, Hex, parseErr.Format)
}

func TestInjectedWordList(t *testing.T) {
	codec := New(mnemonicode.DefaultWordList())
	encoded := codec.Encode(testID, Words)
	assert.Equal(t, "reform-remote-galileo--heart-package-academy", encoded)

	id, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, testID, id)
}

func TestParseFormat(t *testing.T) {
	for _, format := range Formats {
		parsed, err := ParseFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	_, err := ParseFormat("morse")
	assert.Error(t, err)
}
