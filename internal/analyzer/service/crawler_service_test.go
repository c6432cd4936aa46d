package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/repository"
	"golang-warga-nlp/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCrawler() CrawlerService {
	log := logger.NewNop()
	cfg := &config.Config{NLP: config.NLP{SummarySentences: 3}}
	repo := repository.NewSourceRepository(config.Crawler{Timeout: time.Second, CacheTTL: time.Minute}, log)
	return NewCrawlerService(log, repo, NewAnalysisService(cfg, log, DefaultStrategies(3)))
}

func TestCrawlerService_ListSourcesHidesSampleData(t *testing.T) {
	list := newTestCrawler().ListSources()

	require.Len(t, list.AvailableSources, 4)
	for _, src := range list.AvailableSources {
		assert.NotEmpty(t, src.Name)
		assert.Nil(t, src.SampleData)
	}
}

func TestCrawlerService_CrawlSource(t *testing.T) {
	data, err := newTestCrawler().CrawlSource(context.Background(), "keamanan")
	require.NoError(t, err)

	assert.Equal(t, "keamanan", data.Source)
	assert.Equal(t, "Laporan Keamanan Lingkungan", data.Metadata.Source)
	assert.Len(t, strings.Split(data.Content, "\n"), 4)
	assert.True(t, strings.HasPrefix(data.Content, "Situasi keamanan lingkungan RT 04"))
}

func TestCrawlerService_CrawlSourceUnknown(t *testing.T) {
	_, err := newTestCrawler().CrawlSource(context.Background(), "cuaca")
	assert.ErrorIs(t, err, repository.ErrSourceNotFound)
}

func TestCrawlerService_CrawlAll(t *testing.T) {
	data, err := newTestCrawler().CrawlAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"keuangan", "keamanan", "administrasi", "berita"}, data.Sources)
	assert.Equal(t, 12+8+5+15, data.TotalDocuments)
	assert.Len(t, data.SourceMetadata, 4)
	assert.Equal(t, 3, strings.Count(data.CombinedContent, "\n\n"))
	assert.False(t, strings.HasSuffix(data.CombinedContent, "\n"))
}

func TestCrawlerService_Extract(t *testing.T) {
	data, err := newTestCrawler().Extract(context.Background())
	require.NoError(t, err)

	info := data.ExtractedData
	assert.Len(t, info.FinancialData, 4)
	assert.Len(t, info.SecurityData, 4)
	assert.Len(t, info.AdministrationData, 4)
	assert.Len(t, info.NewsData, 4)
	assert.Contains(t, info.AdministrationData, "Pendaftaran vaksinasi booster dibuka untuk warga lansia dan balita.")
	assert.Contains(t, info.NewsData, "Program gotong royong dilaksanakan setiap minggu kedua dan keempat.")
}

func TestExtractKeyInfo_FirstBucketWins(t *testing.T) {
	info := ExtractKeyInfo("Iuran keamanan warga naik\n\n   \nPatroli warga malam ini\nLomba tujuh belasan")

	assert.Equal(t, []string{"Iuran keamanan warga naik"}, info.FinancialData)
	assert.Equal(t, []string{"Patroli warga malam ini"}, info.SecurityData)
	assert.Empty(t, info.AdministrationData)
	assert.Equal(t, []string{"Lomba tujuh belasan"}, info.NewsData)
}

func TestCrawlerService_Report(t *testing.T) {
	data, err := newTestCrawler().Report(context.Background(), []string{"berita", "keuangan"})
	require.NoError(t, err)

	assert.Equal(t, []string{"berita", "keuangan"}, data.Sources)
	assert.Equal(t, 27, data.TotalDocuments)
	assert.Len(t, data.ExtractedInfo.FinancialData, 4)

	all, err := newTestCrawler().Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Sources, 4)
}

func TestCrawlerService_AnalyzeUsesSourceContext(t *testing.T) {
	data, err := newTestCrawler().Analyze(context.Background(), "keuangan", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"keuangan"}, data.Sources)
	assert.Equal(t, "keuangan", data.Context)
	assert.Contains(t, data.Analysis.Conclusion, "pengelolaan dana RT perlu terus dipantau")
	assert.NotEmpty(t, data.Analysis.Entities)
}

func TestCrawlerService_AnalyzeAllDefaultsToGeneral(t *testing.T) {
	data, err := newTestCrawler().Analyze(context.Background(), "", "")
	require.NoError(t, err)

	assert.Len(t, data.Sources, 4)
	assert.Equal(t, "general", data.Context)
	assert.Len(t, data.Analysis.Summary, 3)
}

func TestCrawlerService_AnalyzeUnknownSource(t *testing.T) {
	_, err := newTestCrawler().Analyze(context.Background(), "cuaca", "")
	assert.ErrorIs(t, err, repository.ErrSourceNotFound)
}
