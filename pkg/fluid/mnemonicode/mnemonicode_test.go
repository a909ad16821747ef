package mnemonicode

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownStrings(t *testing.T) {
	tests := map[string]string{
		"avocado":  "bicycle-visible-robert--cloud-unicorn-jet",
		"cucumber": "paris-pearl-ultra--gentle-press-total",
		"tomato":   "scoop-limit-recycle--ferrari-album",
		"potato":   "turtle-special-recycle--ferrari-album",
	}
	c := Default()
	for data, encoded := range tests {
		t.Run(data, func(t *testing.T) {
			assert.Equal(t, encoded, c.EncodeToString([]byte(data)))

			decoded, err := c.DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, []byte(data), decoded)
		})
	}
}

func TestEmptyString(t *testing.T) {
	c := Default()
	assert.Equal(t, "", c.EncodeToString(nil))

	decoded, err := c.DecodeString("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

// A three byte block and a four byte block with the same leading digits must
// decode to their respective lengths; only the terminal word differs.
func TestBlockDisambiguation(t *testing.T) {
	c := Default()

	threeByte := []byte{1, 2, 3}
	fourByte := []byte{1, 2, 3, 0}

	threeEncoded := c.EncodeToString(threeByte)
	fourEncoded := c.EncodeToString(fourByte)
	assert.Equal(t, "kayak-cement-ego", threeEncoded)
	assert.Equal(t, "kayak-cement-academy", fourEncoded)

	decoded, err := c.DecodeString(threeEncoded)
	require.NoError(t, err)
	assert.Equal(t, threeByte, decoded)

	decoded, err = c.DecodeString(fourEncoded)
	require.NoError(t, err)
	assert.Equal(t, fourByte, decoded)
}

func TestShortTrailingBlocks(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want string
	}{
		"one byte":            {[]byte{7}, "africa"},
		"two bytes":           {[]byte{1, 2}, "opera-academy"},
		"five bytes":          {[]byte{255, 255, 255, 255, 255}, "natural-analyze-verbal--exact"},
		"full four byte tail": {[]byte{255, 255, 255, 255}, "natural-analyze-verbal"},
	}
	c := Default()
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			encoded := c.EncodeToString(tc.data)
			assert.Equal(t, tc.want, encoded)

			decoded, err := c.DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.data, decoded)
		})
	}
}

func TestRoundTripRandomBytes(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewSource(42))
	for length := 0; length <= 13; length++ {
		for i := 0; i < 50; i++ {
			data := make([]byte, length)
			rng.Read(data)

			decoded, err := c.DecodeString(c.EncodeToString(data))
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"unrecognized word":               "reform-bogus-galileo",
		"too many words":                  "academy-academy-academy-academy",
		"empty group":                     "reform--",
		"remainder word leading":          "ego-academy",
		"remainder word in two word group": "academy-ego",
		"remainder word alone":            "ego",
		"group value too large":           "verbal-verbal",
	}
	c := Default()
	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.DecodeString(encoded)
			assert.Error(t, err)
		})
	}
}

func TestNewWordList(t *testing.T) {
	words := make([]string, defaultWordList.Len())
	for i := range words {
		words[i] = defaultWordList.Word(i)
	}

	list, err := NewWordList(words)
	require.NoError(t, err)
	assert.Equal(t, totalWords, list.Len())

	_, err = NewWordList(words[:100])
	assert.Error(t, err)

	words[1] = words[0]
	_, err = NewWordList(words)
	assert.Error(t, err)
}

func TestWordListIndex(t *testing.T) {
	list := DefaultWordList()

	i, ok := list.Index("academy")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "academy", list.Word(0))

	_, ok = list.Index("bogus")
	assert.False(t, ok)
}
