package nlp

import "golang-warga-nlp/internal/entity"

const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
)

// AnalyzeSentiment counts lexicon hits among the tokens of text and classifies the
// positive share: above 0.6 is positif, below 0.4 is negatif, anything between is
// netral. Text without any lexicon word is netral with score 0 and confidence 0.5.
func AnalyzeSentiment(text string) entity.SentimentResult {
	positive, negative := 0, 0
	for _, token := range Tokenize(text) {
		if positiveWords.has(token) {
			positive++
		}
		if negativeWords.has(token) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return entity.SentimentResult{Label: entity.SentimentNeutral, Score: 0, Confidence: 0.5}
	}

	positiveRatio := float64(positive) / float64(total)
	switch {
	case positiveRatio > positiveThreshold:
		return newSentiment(entity.SentimentPositive, positiveRatio)
	case positiveRatio < negativeThreshold:
		return newSentiment(entity.SentimentNegative, 1-positiveRatio)
	default:
		return newSentiment(entity.SentimentNeutral, 0.5)
	}
}

// newSentiment keeps score and confidence identical.
func newSentiment(label string, score float64) entity.SentimentResult {
	return entity.SentimentResult{Label: label, Score: score, Confidence: score}
}
