package http

import (
	"errors"
	"net/http"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/repository"
	"golang-warga-nlp/internal/analyzer/service"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"

	"github.com/labstack/echo/v4"
)

const (
	actionList    = "list"
	actionCrawl   = "crawl"
	actionExtract = "extract"
	actionAnalyze = "analyze"
)

// CrawlerHandler handles HTTP requests for the data-source crawler.
type CrawlerHandler struct {
	crawlerService service.CrawlerService
	logger         *logger.Logger
}

// NewCrawlerHandler creates a new CrawlerHandler.
func NewCrawlerHandler(crawlerService service.CrawlerService, logger *logger.Logger) *CrawlerHandler {
	return &CrawlerHandler{crawlerService: crawlerService, logger: logger}
}

// RegisterRoutes registers the crawler routes to the Echo group.
func (h *CrawlerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Crawl)
	g.POST("", h.Report)
}

// Crawl godoc
// @Summary Crawl community data sources
// @Description list: available sources; crawl: one source or all; extract: bucket lines by topic; analyze: full NLP over crawled content
// @Tags crawler
// @Produce  json
// @Param   action   query   string  false  "Action"  Enums(list, crawl, extract, analyze)  default(list)
// @Param   source   query   string  false  "Source id"
// @Param   context  query   string  false  "Analysis context for the analyze action"
// @Success 200 {object} dto.CrawlerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler [get]
func (h *CrawlerHandler) Crawl(c echo.Context) error {
	var query dto.CrawlerQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters"))
	}
	if query.Action == "" {
		query.Action = actionList
	}

	ctx := c.Request().Context()

	var (
		data interface{}
		err  error
	)
	switch query.Action {
	case actionList:
		data = h.crawlerService.ListSources()
	case actionCrawl:
		if query.Source != "" {
			data, err = h.crawlerService.CrawlSource(ctx, query.Source)
		} else {
			data, err = h.crawlerService.CrawlAll(ctx)
		}
	case actionExtract:
		data, err = h.crawlerService.Extract(ctx)
	case actionAnalyze:
		data, err = h.crawlerService.Analyze(ctx, query.Source, query.Context)
	default:
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid action"))
	}
	if err != nil {
		return h.crawlError(c, err, query.Source)
	}

	return c.JSON(http.StatusOK, dto.CrawlerResponse{
		Success:   true,
		Action:    query.Action,
		Data:      data,
		Timestamp: utils.TimeNowWIB(),
	})
}

// Report godoc
// @Summary Aggregate and bucket data sources
// @Description Crawl the given sources (all when empty) and bucket their lines by topic
// @Tags crawler
// @Accept  json
// @Produce  json
// @Param   request  body    dto.CrawlReportRequest   false    "Sources to crawl"
// @Success 200 {object} dto.CrawlerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler [post]
func (h *CrawlerHandler) Report(c echo.Context) error {
	var req dto.CrawlReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
	}

	data, err := h.crawlerService.Report(c.Request().Context(), req.Sources)
	if err != nil {
		return h.crawlError(c, err, "")
	}

	return c.JSON(http.StatusOK, dto.CrawlerResponse{
		Success:   true,
		Action:    "report",
		Data:      data,
		Timestamp: utils.TimeNowWIB(),
	})
}

func (h *CrawlerHandler) crawlError(c echo.Context, err error, source string) error {
	switch {
	case errors.Is(err, repository.ErrSourceNotFound):
		return c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrMissingText):
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Source has no content to analyze"))
	case errors.Is(err, service.ErrTextTooLong):
		return c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(err.Error()))
	}

	h.logger.Error("Data crawling failed", logger.ErrorField(err), logger.StringField("source", source))
	return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Data crawling failed"))
}
