package mnemonicode

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"

	"github.com/pkg/errors"
)

// Base is the radix of the word encoding: every word in the primary range
// represents one base-1626 digit.
const Base = 1626

// remainderWords is the number of words reserved for the terminal word of a
// group encoding a three byte block. A three byte block value is below 2^24,
// so its most significant base-1626 digit is at most 6.
const remainderWords = 7

const totalWords = Base + remainderWords

//go:embed words.txt
var wordData []byte

// WordList is an immutable word table backing the mnemonic encoding. Indices
// [0, Base) form the primary range, valid in any word position; indices
// [Base, Base+remainderWords) form the remainder range, valid only as the
// terminal word of a three word group encoding a three byte block.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList builds a word table from the given words, validating the word
// count and that no word appears twice.
func NewWordList(words []string) (*WordList, error) {
	if len(words) != totalWords {
		return nil, errors.Errorf("wordlist must contain %d words, got %d", totalWords, len(words))
	}
	index := make(map[string]int, len(words))
	for i, word := range words {
		if _, ok := index[word]; ok {
			return nil, errors.Errorf("duplicate word %q in wordlist", word)
		}
		index[word] = i
	}
	return &WordList{words: words, index: index}, nil
}

// Word returns the word at index i.
func (l *WordList) Word(i int) string {
	return l.words[i]
}

// Index returns the index of word and whether the word is in the table.
func (l *WordList) Index(word string) (int, bool) {
	i, ok := l.index[word]
	return i, ok
}

// Len returns the number of words in the table.
func (l *WordList) Len() int {
	return len(l.words)
}

var defaultWordList = mustLoadWordList()

// DefaultWordList returns the compiled-in word table (Tirosh wordlist,
// version 0.7).
func DefaultWordList() *WordList {
	return defaultWordList
}

func mustLoadWordList() *WordList {
	scanner := bufio.NewScanner(bytes.NewReader(wordData))
	words := make([]string, 0, totalWords)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	list, err := NewWordList(words)
	if err != nil {
		panic(err)
	}
	return list
}
