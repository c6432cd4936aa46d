package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord    = regexp.MustCompile(`[^\w\s]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Preprocess lowercases text, turns punctuation into spaces and collapses whitespace.
func Preprocess(text string) string {
	text = strings.ToLower(text)
	text = reNonWord.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize returns the preprocessed words of text that are longer than one
// character and not stopwords. Repeated words are kept.
func Tokenize(text string) []string {
	tokens := []string{}
	for _, word := range strings.Split(Preprocess(text), " ") {
		if len(word) > 1 && !stopwords.has(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// CountWords counts whitespace separated words in the raw text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
