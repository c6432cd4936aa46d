package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
)

// ErrSourceNotFound is returned when a source id is not configured.
var ErrSourceNotFound = errors.New("source not found")

const defaultCacheTTL = 5 * time.Minute

// SourceRepository gives access to the configured data sources and their content.
type SourceRepository interface {
	List() []entity.DataSource
	Get(id string) (entity.DataSource, error)
	Fetch(ctx context.Context, id string) (*entity.SourceDocument, error)
}

type sourceRepository struct {
	log       *logger.Logger
	sources   []entity.DataSource
	index     map[string]int
	client    *http.Client
	userAgent string
	cache     *cache.Cache
}

// NewSourceRepository creates a SourceRepository. When cfg.Sources is empty the
// built-in sources are used.
func NewSourceRepository(cfg config.Crawler, log *logger.Logger) SourceRepository {
	sources := cfg.Sources
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	repo := &sourceRepository{
		log:       log,
		index:     make(map[string]int, len(sources)),
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
	}
	for _, src := range sources {
		if _, exists := repo.index[src.ID]; exists {
			log.Warn("Duplicate data source ignored", logger.StringField("source", src.ID))
			continue
		}
		repo.index[src.ID] = len(repo.sources)
		repo.sources = append(repo.sources, src)
	}
	return repo
}

// List returns the sources in configuration order.
func (r *sourceRepository) List() []entity.DataSource {
	list := make([]entity.DataSource, len(r.sources))
	copy(list, r.sources)
	return list
}

func (r *sourceRepository) Get(id string) (entity.DataSource, error) {
	i, ok := r.index[id]
	if !ok {
		return entity.DataSource{}, fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}
	return r.sources[i], nil
}

// Fetch returns the static sample lines of a source followed by any lines read
// from its feed or page. Remote failures are logged and skipped.
func (r *sourceRepository) Fetch(ctx context.Context, id string) (*entity.SourceDocument, error) {
	src, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(src.SampleData))
	lines = append(lines, src.SampleData...)

	if src.FeedURL != "" {
		feedLines, err := r.cached(ctx, "feed:"+src.ID, src.FeedURL, r.fetchFeed)
		if err != nil {
			r.log.Warn("Failed to fetch source feed", logger.ErrorField(err), logger.StringField("source", src.ID), logger.StringField("url", src.FeedURL))
		}
		lines = append(lines, feedLines...)
	}

	if src.PageURL != "" {
		pageLines, err := r.cached(ctx, "page:"+src.ID, src.PageURL, r.fetchPage)
		if err != nil {
			r.log.Warn("Failed to fetch source page", logger.ErrorField(err), logger.StringField("source", src.ID), logger.StringField("url", src.PageURL))
		}
		lines = append(lines, pageLines...)
	}

	now := utils.TimeNowWIB()
	return &entity.SourceDocument{
		SourceID: src.ID,
		Lines:    lines,
		Metadata: entity.SourceMetadata{
			Source:        src.Name,
			Description:   src.Description,
			DocumentCount: src.DocumentCount,
			LastCrawl:     now,
		},
		CrawledAt: now,
	}, nil
}

func (r *sourceRepository) cached(ctx context.Context, key, url string, fetch func(context.Context, string) ([]string, error)) ([]string, error) {
	if cached, found := r.cache.Get(key); found {
		return cached.([]string), nil
	}

	lines, err := fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, lines, cache.DefaultExpiration)
	return lines, nil
}

// fetchFeed turns every feed item into one line: its title followed by its
// description with markup removed.
func (r *sourceRepository) fetchFeed(ctx context.Context, url string) ([]string, error) {
	fp := gofeed.NewParser()
	fp.Client = r.client
	if r.userAgent != "" {
		fp.UserAgent = r.userAgent
	}

	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	lines := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := normalizeSpace(item.Title)
		description := normalizeSpace(stripHTML(item.Description))

		var line string
		switch {
		case title != "" && description != "":
			line = strings.TrimRight(title, ".") + ". " + description
		case title != "":
			line = title
		default:
			line = description
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// fetchPage downloads an article page and returns its readable paragraphs.
func (r *sourceRepository) fetchPage(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read page body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page content: %w", err)
	}

	html, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page content: %w", err)
	}

	var lines []string
	html.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		if text := normalizeSpace(html.Text()); text != "" {
			lines = append(lines, text)
		}
	}
	return lines, nil
}

func stripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DefaultSources returns the built-in RT 04 data sources.
func DefaultSources() []entity.DataSource {
	return []entity.DataSource{
		{
			ID:            "keuangan",
			Name:          "Laporan Keuangan RT",
			Description:   "Data transaksi dan laporan keuangan bulanan",
			DocumentCount: 12,
			SampleData: []string{
				"Iuran warga bulan Januari 2026 terkumpul Rp 450.000 dari 45 KK.",
				"Pengeluaran kebersihan bulan ini mencapai Rp 400.000 untuk gaji petugas.",
				"Dana operasional pos digunakan untuk pembelian ATK sebesar Rp 50.000.",
				"Saldo kas RT per 24 Januari 2026 sebesar Rp 2.500.000.",
			},
		},
		{
			ID:            "keamanan",
			Name:          "Laporan Keamanan Lingkungan",
			Description:   "Data kejadian keamanan dan patrol",
			DocumentCount: 8,
			SampleData: []string{
				"Situasi keamanan lingkungan RT 04 dalam kondisi baik dan aman.",
				"Patrol malam dilaksanakan setiap hari dari pukul 22.00 hingga 05.00.",
				"Tidak ada laporan kejadian kriminal selama bulan Januari 2026.",
				"Warga diminta untuk tetap waspada dan melaporkan aktivitas mencurigakan.",
			},
		},
		{
			ID:            "administrasi",
			Name:          "Data Administrasi Warga",
			Description:   "Statistik kependudukan dan layanan",
			DocumentCount: 5,
			SampleData: []string{
				"Total warga terdaftar di RT 04 sebanyak 150 jiwa dari 45 KK.",
				"Layanan pembuatan surat pengantar telah melayani 23 permohonan bulan ini.",
				"Tingkat kehadiran rapat warga mencapai 85% dari total undangan.",
				"Program gotong royong dilaksanakan setiap minggu kedua dan keempat.",
			},
		},
		{
			ID:            "berita",
			Name:          "Berita dan Pengumuman RT",
			Description:   "Informasi terkini seputar RT 04",
			DocumentCount: 15,
			SampleData: []string{
				"Rapat koordinasi bulanan akan dilaksanakan pada Sabtu, 25 Januari 2026.",
				"Pendaftaran vaksinasi booster dibuka untuk warga lansia dan balita.",
				"Peringatan HUT RI ke-81 akan dilaksanakan dengan berbagai lomba.",
				"Kerja bakti pembersihan selokan dijadwalkan Minggu pagi pukul 07.00.",
			},
		},
	}
}
