package service

import (
	"context"
	"strings"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/repository"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/nlp"
	"golang-warga-nlp/pkg/utils"
)

var (
	financialKeywords = []string{"iuran", "pengeluaran", "saldo", "dana", "rp", "rupiah", "kas"}
	securityKeywords  = []string{"keamanan", "patrol", "kejadian", "aman", "waspada", "kriminal"}
	adminKeywords     = []string{"warga", "kk", "surat", "layanan", "administrasi", "pendaftaran"}
)

// CrawlerService collects community documents from the data sources.
type CrawlerService interface {
	ListSources() dto.SourceListData
	CrawlSource(ctx context.Context, id string) (*dto.SourceCrawlData, error)
	CrawlAll(ctx context.Context) (*dto.AggregateCrawlData, error)
	Extract(ctx context.Context) (*dto.ExtractData, error)
	Report(ctx context.Context, ids []string) (*dto.CrawlReportData, error)
	Analyze(ctx context.Context, id string, analysisContext string) (*dto.CrawlAnalysisData, error)
}

type crawlerService struct {
	log        *logger.Logger
	sourceRepo repository.SourceRepository
	analysis   AnalysisService
}

// NewCrawlerService creates a new CrawlerService.
func NewCrawlerService(log *logger.Logger, sourceRepo repository.SourceRepository, analysis AnalysisService) CrawlerService {
	return &crawlerService{
		log:        log,
		sourceRepo: sourceRepo,
		analysis:   analysis,
	}
}

// ListSources returns every source without its sample lines.
func (s *crawlerService) ListSources() dto.SourceListData {
	sources := s.sourceRepo.List()
	for i := range sources {
		sources[i].SampleData = nil
	}
	return dto.SourceListData{AvailableSources: sources}
}

func (s *crawlerService) CrawlSource(ctx context.Context, id string) (*dto.SourceCrawlData, error) {
	doc, err := s.sourceRepo.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SourceCrawlData{
		Source:    doc.SourceID,
		Content:   strings.Join(doc.Lines, "\n"),
		Metadata:  doc.Metadata,
		CrawledAt: doc.CrawledAt,
	}, nil
}

func (s *crawlerService) CrawlAll(ctx context.Context) (*dto.AggregateCrawlData, error) {
	agg, err := s.aggregate(ctx, s.sourceIDs())
	if err != nil {
		return nil, err
	}
	return &dto.AggregateCrawlData{
		Sources:         agg.ids,
		CombinedContent: agg.content,
		SourceMetadata:  agg.metadata,
		TotalDocuments:  agg.totalDocuments,
		CrawledAt:       utils.TimeNowWIB(),
	}, nil
}

func (s *crawlerService) Extract(ctx context.Context) (*dto.ExtractData, error) {
	agg, err := s.aggregate(ctx, s.sourceIDs())
	if err != nil {
		return nil, err
	}
	return &dto.ExtractData{
		ExtractedData: ExtractKeyInfo(agg.content),
		ExtractedAt:   utils.TimeNowWIB(),
	}, nil
}

// Report aggregates the given sources, or all of them when ids is empty, and
// buckets the combined lines.
func (s *crawlerService) Report(ctx context.Context, ids []string) (*dto.CrawlReportData, error) {
	if len(ids) == 0 {
		ids = s.sourceIDs()
	}
	agg, err := s.aggregate(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &dto.CrawlReportData{
		Sources:         agg.ids,
		TotalDocuments:  agg.totalDocuments,
		CombinedContent: agg.content,
		ExtractedInfo:   ExtractKeyInfo(agg.content),
		SourceMetadata:  agg.metadata,
		CrawledAt:       utils.TimeNowWIB(),
	}, nil
}

// Analyze runs the full pipeline over one source, or every source when id is
// empty. Without an explicit context a source whose id is a known context uses it.
func (s *crawlerService) Analyze(ctx context.Context, id string, analysisContext string) (*dto.CrawlAnalysisData, error) {
	ids := s.sourceIDs()
	if id != "" {
		ids = []string{id}
	}

	agg, err := s.aggregate(ctx, ids)
	if err != nil {
		return nil, err
	}

	if analysisContext == "" && id != "" && nlp.KnownContext(entity.Context(id)) {
		analysisContext = id
	}

	output, err := s.analysis.Analyze(ctx, &dto.AnalyzeRequest{
		Text:    agg.content,
		Context: analysisContext,
		Task:    string(entity.TaskFull),
	})
	if err != nil {
		s.log.Error("Failed to analyze crawled content", logger.ErrorField(err), logger.StringField("source", id))
		return nil, err
	}

	result, ok := output.Data.(entity.AnalysisResult)
	if !ok {
		return nil, &InternalError{Cause: errUnexpectedResult}
	}

	return &dto.CrawlAnalysisData{
		Sources:    agg.ids,
		Context:    string(output.Context),
		Analysis:   result,
		AnalyzedAt: utils.TimeNowWIB(),
	}, nil
}

type aggregation struct {
	ids            []string
	content        string
	metadata       []entity.SourceMetadata
	totalDocuments int
}

// aggregate joins the lines of each source with newlines and separates sources
// with a blank line.
func (s *crawlerService) aggregate(ctx context.Context, ids []string) (*aggregation, error) {
	agg := &aggregation{
		ids:      make([]string, 0, len(ids)),
		metadata: make([]entity.SourceMetadata, 0, len(ids)),
	}

	blocks := make([]string, 0, len(ids))
	for _, id := range ids {
		if !utils.ShouldContinue(ctx, s.log) {
			return nil, ctx.Err()
		}

		doc, err := s.sourceRepo.Fetch(ctx, id)
		if err != nil {
			return nil, err
		}

		agg.ids = append(agg.ids, doc.SourceID)
		agg.metadata = append(agg.metadata, doc.Metadata)
		agg.totalDocuments += doc.Metadata.DocumentCount
		blocks = append(blocks, strings.Join(doc.Lines, "\n"))
	}

	agg.content = strings.TrimSpace(strings.Join(blocks, "\n\n"))
	return agg, nil
}

func (s *crawlerService) sourceIDs() []string {
	sources := s.sourceRepo.List()
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID)
	}
	return ids
}

// ExtractKeyInfo puts every non-blank line of content in the first matching
// bucket: financial, security, administration, otherwise news.
// Keywords match as case-insensitive substrings.
func ExtractKeyInfo(content string) dto.ExtractedInfo {
	info := dto.ExtractedInfo{
		FinancialData:      []string{},
		SecurityData:       []string{},
		AdministrationData: []string{},
		NewsData:           []string{},
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case containsAny(lower, financialKeywords):
			info.FinancialData = append(info.FinancialData, line)
		case containsAny(lower, securityKeywords):
			info.SecurityData = append(info.SecurityData, line)
		case containsAny(lower, adminKeywords):
			info.AdministrationData = append(info.AdministrationData, line)
		default:
			info.NewsData = append(info.NewsData, line)
		}
	}
	return info
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
