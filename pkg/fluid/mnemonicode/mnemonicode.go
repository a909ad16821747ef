// Package mnemonicode converts byte strings to and from sequences of short
// English words. It implements the word encoding used for FLUID job
// identifiers: the input is split into four byte blocks (the final block may
// be shorter), each block is written as base-1626 digits, least significant
// first, and each digit selects one word from the table.
//
// Three and four byte blocks both map to three words. The terminal word of a
// three byte group is drawn from the remainder range of the word table so the
// two cases can be told apart on decode.
package mnemonicode

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// WordSeparator joins the words within a group.
	WordSeparator = "-"
	// GroupSeparator joins the groups representing consecutive blocks.
	GroupSeparator = "--"
)

const blockSize = 4

// wordsPerBlock[n] is the number of words encoding an n byte block.
var wordsPerBlock = [blockSize + 1]int{0, 1, 2, 3, 3}

// Codec converts byte strings to and from word groups using an injected word
// table. It is stateless apart from the immutable table and safe for
// concurrent use.
type Codec struct {
	list *WordList
}

// New returns a codec backed by the given word table.
func New(list *WordList) *Codec {
	return &Codec{list: list}
}

// Default returns a codec backed by the compiled-in word table.
func Default() *Codec {
	return &Codec{list: defaultWordList}
}

// Encode converts data into groups of one to three words, one group per
// block.
func (c *Codec) Encode(data []byte) [][]string {
	groups := make([][]string, 0, (len(data)+blockSize-1)/blockSize)
	for offset := 0; offset < len(data); offset += blockSize {
		end := offset + blockSize
		if end > len(data) {
			end = len(data)
		}
		groups = append(groups, c.encodeBlock(data[offset:end]))
	}
	return groups
}

// EncodeToString converts data into a single string of words, joined by
// WordSeparator within a group and GroupSeparator between groups.
func (c *Codec) EncodeToString(data []byte) string {
	groups := c.Encode(data)
	joined := make([]string, len(groups))
	for i, group := range groups {
		joined[i] = strings.Join(group, WordSeparator)
	}
	return strings.Join(joined, GroupSeparator)
}

func (c *Codec) encodeBlock(block []byte) []string {
	// Blocks are little-endian numbers.
	var num uint64
	for i := len(block) - 1; i >= 0; i-- {
		num = num<<8 | uint64(block[i])
	}

	indices := make([]int, wordsPerBlock[len(block)])
	for i := range indices {
		indices[i] = int(num % Base)
		num /= Base
	}

	// The third byte of a block leaks into the third word. Offsetting the
	// terminal digit into the remainder range distinguishes a three byte
	// block from a four byte one.
	if len(block) == 3 {
		indices[len(indices)-1] += Base
	}

	words := make([]string, len(indices))
	for i, index := range indices {
		words[i] = c.list.Word(index)
	}
	return words
}

// Decode converts groups of words back into the byte string they encode.
func (c *Codec) Decode(groups [][]string) ([]byte, error) {
	data := make([]byte, 0, len(groups)*blockSize)
	for _, group := range groups {
		block, err := c.decodeGroup(group)
		if err != nil {
			return nil, err
		}
		data = append(data, block...)
	}
	return data, nil
}

// DecodeString converts a string produced by EncodeToString back into bytes.
// The empty string decodes to an empty byte string.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	groups := strings.Split(s, GroupSeparator)
	split := make([][]string, len(groups))
	for i, group := range groups {
		split[i] = strings.Split(group, WordSeparator)
	}
	return c.Decode(split)
}

func (c *Codec) decodeGroup(words []string) ([]byte, error) {
	if len(words) == 0 || len(words) == 1 && words[0] == "" {
		return nil, errors.New("empty word group")
	}
	if len(words) > 3 {
		return nil, errors.Errorf("word group has %d words, want at most 3", len(words))
	}

	indices := make([]int, len(words))
	for i, word := range words {
		index, ok := c.list.Index(word)
		if !ok {
			return nil, errors.Errorf("unrecognized word %q", word)
		}
		indices[i] = index
	}

	// Three and four byte blocks both decode from three words; the range of
	// the terminal word carries the true block length.
	length := len(words)
	if len(words) == 3 {
		if indices[2] >= Base {
			indices[2] -= Base
		} else {
			length = 4
		}
	}

	// Remainder words are valid only as the terminal word of a three word
	// group, which the adjustment above has already consumed.
	for i, index := range indices {
		if index >= Base {
			return nil, errors.Errorf("misplaced remainder word %q", words[i])
		}
	}

	var num uint64
	for i := len(indices) - 1; i >= 0; i-- {
		num = num*Base + uint64(indices[i])
	}

	block := make([]byte, length)
	for i := range block {
		block[i] = byte(num)
		num >>= 8
	}
	if num != 0 {
		return nil, errors.Errorf("word group %q does not fit in %d bytes",
			strings.Join(words, WordSeparator), length)
	}
	return block, nil
}
