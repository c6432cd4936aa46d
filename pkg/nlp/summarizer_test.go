package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reportText = "Warga melaporkan pompa air rusak parah. " +
	"Warga warga warga warga warga! " +
	"Warga meminta perbaikan jembatan kayu? " +
	"Warga berharap lampu jalan segera menyala."

func TestSplitSentences(t *testing.T) {
	text := "Pendek. Kalimat ini cukup panjang untuk diambil!! Juga pendek? Kalimat kedua juga lebih dari dua puluh karakter"
	assert.Equal(t, []string{
		"Kalimat ini cukup panjang untuk diambil",
		"Kalimat kedua juga lebih dari dua puluh karakter",
	}, SplitSentences(text))
}

func TestSplitSentences_ExactlyTwentyCharactersDropped(t *testing.T) {
	assert.Empty(t, SplitSentences("abcdefghij abcdefghi."))
	assert.Len(t, SplitSentences("abcdefghij abcdefghij."), 1)
}

func TestSummarize_ShortTextReturnedUnchanged(t *testing.T) {
	text := "Rapat koordinasi bulanan dilaksanakan hari Sabtu. Kerja bakti dijadwalkan Minggu pagi."
	assert.Equal(t, SplitSentences(text), Summarize(text, 3))
}

func TestSummarize_DropsZeroScoreSentence(t *testing.T) {
	summary := Summarize(reportText, 3)
	assert.Equal(t, []string{
		"Warga melaporkan pompa air rusak parah",
		"Warga meminta perbaikan jembatan kayu",
		"Warga berharap lampu jalan segera menyala",
	}, summary)
}

func TestSummarize_PreservesDocumentOrder(t *testing.T) {
	text := strings.Join([]string{
		"Kucing tetangga tidur siang di atas pagar rumah",
		"Banjir besar merendam jalan utama kompleks perumahan",
		"Banjir merusak taman bermain anak dan pos ronda",
		"Petugas kebersihan membersihkan saluran air setiap pagi",
		"Rapat warga membahas perbaikan saluran air dan taman",
		"Lampu jalan blok C padam sejak kemarin malam",
	}, ". ") + "."

	sentences := SplitSentences(text)
	summary := Summarize(text, 3)
	require.Len(t, summary, 3)

	last := -1
	for _, s := range summary {
		idx := indexOf(sentences, s)
		require.GreaterOrEqual(t, idx, 0, "summary sentence must come from the text")
		assert.Greater(t, idx, last, "summary must keep reading order")
		last = idx
	}
}

func TestSummarize_Cardinality(t *testing.T) {
	sentences := SplitSentences(reportText)
	for n := 0; n <= 6; n++ {
		want := n
		if len(sentences) < n {
			want = len(sentences)
		}
		assert.Len(t, Summarize(reportText, n), want, "n=%d", n)
	}
	assert.Empty(t, Summarize(reportText, -1))
}

func TestSummarize_Idempotent(t *testing.T) {
	assert.Equal(t, Summarize(reportText, 2), Summarize(reportText, 2))
}

func TestSummarize_EmptyText(t *testing.T) {
	summary := Summarize("", DefaultSummarySentences)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
