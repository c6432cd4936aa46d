package nlp

import (
	"math"
	"sort"
)

// TermWeightMap maps a token to its TF-IDF weight within one sentence.
type TermWeightMap map[string]float64

// Total sums the weights in a fixed (lexical) term order so the result does not
// depend on map iteration order.
func (m TermWeightMap) Total() float64 {
	terms := make([]string, 0, len(m))
	for term := range m {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	total := 0.0
	for _, term := range terms {
		total += m[term]
	}
	return total
}

// ComputeTfIdf weights every token of every sentence, treating each sentence as a
// document: TF is the raw count in the sentence and the inverse frequency is
// ln(len(sentences) / number of sentences containing the term).
func ComputeTfIdf(sentences []string) []TermWeightMap {
	documentFrequency := make(map[string]int)
	termFrequencies := make([]map[string]int, 0, len(sentences))

	for _, sentence := range sentences {
		tokens := Tokenize(sentence)
		tf := make(map[string]int, len(tokens))
		for _, token := range tokens {
			tf[token]++
		}
		termFrequencies = append(termFrequencies, tf)

		for token := range tf {
			documentFrequency[token]++
		}
	}

	numDocs := float64(len(sentences))
	scores := make([]TermWeightMap, 0, len(sentences))
	for _, tf := range termFrequencies {
		weights := make(TermWeightMap, len(tf))
		for term, freq := range tf {
			df := documentFrequency[term]
			if df == 0 {
				df = 1
			}
			weights[term] = float64(freq) * math.Log(numDocs/float64(df))
		}
		scores = append(scores, weights)
	}

	return scores
}
