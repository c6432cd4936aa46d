package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSummarySentences is the summary length used by the API.
	DefaultSummarySentences = 3

	minSentenceLength  = 20
	firstSentenceBoost = 1.5
	lastSentenceBoost  = 1.2
)

var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on runs of '.', '!' or '?', trims each piece and keeps
// only pieces longer than 20 characters, in document order.
func SplitSentences(text string) []string {
	sentences := []string{}
	for _, part := range reSentenceEnd.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > minSentenceLength {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

type scoredSentence struct {
	index    int
	score    float64
	sentence string
}

// Summarize picks the numSentences highest scoring sentences of text and returns
// them in their original reading order. Texts with no more than numSentences
// qualifying sentences are returned unscored.
func Summarize(text string, numSentences int) []string {
	if numSentences < 0 {
		numSentences = 0
	}

	sentences := SplitSentences(text)
	if len(sentences) <= numSentences {
		return sentences
	}

	tfidf := ComputeTfIdf(sentences)

	scored := make([]scoredSentence, len(sentences))
	for idx, sentence := range sentences {
		score := tfidf[idx].Total()
		if idx == 0 {
			score *= firstSentenceBoost
		}
		if idx == len(sentences)-1 {
			score *= lastSentenceBoost
		}
		scored[idx] = scoredSentence{index: idx, score: score, sentence: sentence}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	top := scored[:numSentences]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	summary := make([]string, 0, len(top))
	for _, s := range top {
		summary = append(summary, s.sentence)
	}
	return summary
}
