package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/amishk599/jobpulse/internal/filter"
	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/recommend"
	"github.com/amishk599/jobpulse/internal/report"
)

// JobsHandler serves both views over one loaded table.
type JobsHandler struct {
	table       *model.Table
	recommender *recommend.Recommender
	topN        int
	exportName  string
	logger      *slog.Logger
}

// NewJobsHandler creates the handler. The table must not be modified afterwards.
func NewJobsHandler(table *model.Table, limit, topN int, exportName string, logger *slog.Logger) *JobsHandler {
	if exportName == "" {
		exportName = dataset.DefaultExportName
	}
	return &JobsHandler{
		table:       table,
		recommender: recommend.NewRecommender(table, limit, report.NewNopReporter(), logger),
		topN:        topN,
		exportName:  exportName,
		logger:      logger,
	}
}

// RecommendResponse is the JSON body of GET /api/recommend.
type RecommendResponse struct {
	Total   int                 `json:"total"`
	Jobs    []map[string]string `json:"jobs"`
	Message string              `json:"message,omitempty"`
}

// TableResponse is the JSON body of GET /api/jobs.
type TableResponse struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

func (h *JobsHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ListJobs returns the full table as loaded.
func (h *JobsHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, TableResponse{
		Columns: h.table.Columns,
		Rows:    postingMaps(h.table.Rows, h.table.Columns),
	})
}

// GetJob returns one row by its zero-based position.
func (h *JobsHandler) GetJob(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if idx < 0 || idx >= h.table.Len() {
		writeError(c, fmt.Errorf("index %d: %w", idx, model.ErrRowNotFound))
		return
	}
	c.JSON(http.StatusOK, postingMap(h.table.Rows[idx], h.table.Columns))
}

// Recommend filters by the skills, location and function query parameters.
func (h *JobsHandler) Recommend(c *gin.Context) {
	criteria := filter.Criteria{
		Skills:   c.Query("skills"),
		Location: c.Query("location"),
		Function: c.Query("function"),
	}

	res, err := h.recommender.Recommend(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendResponse{
		Total:   res.Total,
		Jobs:    postingMaps(res.Postings, model.DisplayColumns),
		Message: res.Message,
	})
}

// Insights returns the dashboard metrics and charts.
func (h *JobsHandler) Insights(c *gin.Context) {
	d, err := insights.Build(h.table, h.topN)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Export sends the full table as a CSV attachment.
func (h *JobsHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, h.table); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportName))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrRowNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrMissingColumn):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func postingMap(p model.Posting, columns []string) map[string]string {
	m := make(map[string]string, len(columns))
	for _, col := range columns {
		m[col] = p.Field(col)
	}
	return m
}

func postingMaps(postings []model.Posting, columns []string) []map[string]string {
	out := make([]map[string]string, 0, len(postings))
	for _, p := range postings {
		out = append(out, postingMap(p, columns))
	}
	return out
}
