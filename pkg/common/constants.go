package common

const (
	RedisStreamAnalysisRequest = "nlp.analysis.request"
	RedisStreamAnalysisResult  = "nlp.analysis.result"

	RedisStreamGroup    = "analysis-worker-group"
	RedisStreamConsumer = "analysis-worker"

	// PayloadField is the stream message field carrying the JSON body.
	PayloadField = "payload"
)
