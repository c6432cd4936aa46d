package entity

// Task selects which part of the NLP pipeline runs for a request.
type Task string

const (
	TaskSummarization Task = "summarization"
	TaskSentiment     Task = "sentiment"
	TaskNER           Task = "ner"
	TaskFull          Task = "full"
)

// Context is the domain a document belongs to. It only changes the recommendation
// paragraph of the generated conclusion.
type Context string

const (
	ContextGeneral      Context = "general"
	ContextKeuangan     Context = "keuangan"
	ContextKeamanan     Context = "keamanan"
	ContextAdministrasi Context = "administrasi"
)

// Sentiment labels.
const (
	SentimentPositive = "positif"
	SentimentNeutral  = "netral"
	SentimentNegative = "negatif"
)

// SentimentResult is the output of the lexicon classifier. Score and Confidence are always equal.
type SentimentResult struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// EntityType is the kind of pattern that produced an Entity.
type EntityType string

const (
	EntityDate     EntityType = "DATE"
	EntityMoney    EntityType = "MONEY"
	EntityLocation EntityType = "LOCATION"
	EntityPhone    EntityType = "PHONE"
)

// Entity is a single regex match in the source document.
// Position is the character (rune) offset of the match.
type Entity struct {
	Type     EntityType `json:"type"`
	Value    string     `json:"value"`
	Position int        `json:"position"`
}

// AnalysisResult aggregates every output of a full analysis.
type AnalysisResult struct {
	Summary    []string        `json:"summary"`
	Sentiment  SentimentResult `json:"sentiment"`
	Entities   []Entity        `json:"entities"`
	Conclusion string          `json:"conclusion"`
	WordCount  int             `json:"wordCount"`
	TokenCount int             `json:"tokenCount"`
}
