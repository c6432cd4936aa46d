package nlp

import (
	"fmt"
	"math"
	"strings"

	"golang-warga-nlp/internal/entity"
)

var sentimentPhrases = map[string]string{
	entity.SentimentPositive: "menunjukkan kondisi yang baik",
	entity.SentimentNegative: "mengindikasikan adanya permasalahan yang perlu ditangani",
	entity.SentimentNeutral:  "menunjukkan kondisi yang stabil",
}

const defaultRecommendation = "Data ini memberikan gambaran kondisi terkini yang dapat menjadi dasar pengambilan keputusan."

var recommendations = map[entity.Context]string{
	entity.ContextKeuangan:     "Berdasarkan analisis data keuangan, pengelolaan dana RT perlu terus dipantau untuk menjaga transparansi dan akuntabilitas.",
	entity.ContextKeamanan:     "Situasi keamanan lingkungan memerlukan perhatian bersama. Koordinasi dengan warga dan petugas keamanan tetap diperlukan.",
	entity.ContextAdministrasi: "Layanan administrasi RT terus ditingkatkan untuk memberikan pelayanan yang lebih baik kepada warga.",
}

// Recommendation returns the recommendation paragraph for a context, falling back
// to the general one for unknown contexts.
func Recommendation(ctx entity.Context) string {
	if text, ok := recommendations[ctx]; ok {
		return text
	}
	return defaultRecommendation
}

// KnownContext reports whether ctx has its own recommendation paragraph.
func KnownContext(ctx entity.Context) bool {
	_, ok := recommendations[ctx]
	return ok
}

// GenerateConclusion renders the Markdown report combining the summary, sentiment
// and entities of one analysis.
func GenerateConclusion(summary []string, sentiment entity.SentimentResult, entities []entity.Entity, ctx entity.Context) string {
	sentimentText, ok := sentimentPhrases[sentiment.Label]
	if !ok {
		sentimentText = sentimentPhrases[entity.SentimentNeutral]
	}

	entitySummary := "Tidak ada entitas khusus yang terdeteksi."
	if len(entities) > 0 {
		entitySummary = fmt.Sprintf("Teridentifikasi %d entitas penting dalam laporan ini.", len(entities))
	}

	lines := make([]string, 0, len(summary))
	for i, s := range summary {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}

	var b strings.Builder
	b.WriteString("**Kesimpulan Analisis NLP:**\n\n")
	b.WriteString("📊 **Ringkasan:**\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n📈 **Analisis Sentimen:**\n")
	fmt.Fprintf(&b, "Konten %s dengan tingkat kepercayaan %d%%.\n\n", sentimentText, int(math.Round(sentiment.Score*100)))
	b.WriteString("🏷️ **Entitas Terdeteksi:**\n")
	b.WriteString(entitySummary)
	b.WriteString("\n\n💡 **Rekomendasi:**\n")
	b.WriteString(Recommendation(ctx))
	b.WriteString("\n\n---\n")
	b.WriteString("*Analisis menggunakan metode TF-IDF, leksikon sentimen, dan pola regex untuk ekstraksi informasi.*")
	return b.String()
}
