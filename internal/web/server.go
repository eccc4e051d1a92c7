// Package web serves reports as a small local HTML dashboard. Every request
// runs a full parse-and-aggregate pass over the input files, so the page
// always reflects what is on disk; requests are independent and share no
// state.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/blackwell-systems/trackdown/internal/ingest"
	"github.com/blackwell-systems/trackdown/internal/period"
	"github.com/blackwell-systems/trackdown/internal/render"
	"github.com/blackwell-systems/trackdown/internal/report"
	"github.com/blackwell-systems/trackdown/internal/track"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

// Server renders the dashboard for one configured input location.
type Server struct {
	input string
	exts  []string
	limit float64
	clock period.Clock
	tmpl  *template.Template
}

// NewServer builds a dashboard server over the given input path.
func NewServer(input string, exts []string, limit float64, clock period.Clock) (*Server, error) {
	tmpl, err := template.New("dashboard.html.tmpl").
		Funcs(template.FuncMap{"minutes": render.FormatMinutes}).
		ParseFS(templateFS, "templates/dashboard.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard template: %w", err)
	}
	return &Server{
		input: input,
		exts:  exts,
		limit: limit,
		clock: clock,
		tmpl:  tmpl,
	}, nil
}

// Handler returns the HTTP handler for the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	// Equivalent of registering "GET /" on a Go 1.22+ ServeMux, spelled
	// out for toolchains without method patterns: GET and HEAD reach the
	// dashboard, everything else is 405 with an Allow header.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		s.handleDashboard(w, r)
	})
	return mux
}

// dashboardData is the template payload for one rendered page.
type dashboardData struct {
	Title       string
	PeriodExpr  string
	Project     string
	Limited     bool
	Hidden      int
	Period      *report.TrackingPeriod
	Total       int
	Average     int
	Totals      []report.TimeTotal
	Groups      []report.BreakdownGroup
	Errors      []track.Located
	Sources     int
	GeneratedAt time.Time
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	expr := r.URL.Query().Get("period")
	project := r.URL.Query().Get("project")
	limited := r.URL.Query().Get("limit") != ""

	var filters []track.Filter
	unit := report.UnitMonth
	if expr != "" {
		p, err := period.Parse(expr, s.clock)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filters = append(filters, track.RangeFilter{Range: p.DateRange()})
		unit = report.AutoUnit(p.Kind)
	}
	if project != "" {
		filters = append(filters, track.ProjectFilter{Name: project})
	}
	var filter track.Filter
	if len(filters) > 0 {
		filter = track.And(filters...)
	}

	res, sources, err := ingest.ParsePath(s.input, s.exts, filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totals := report.Totals(res)
	hidden := 0
	if limited {
		kept := report.LimitTotals(totals, s.limit)
		hidden = len(totals) - len(kept)
		totals = kept
	}

	data := dashboardData{
		Title:       "trackdown",
		PeriodExpr:  expr,
		Project:     project,
		Limited:     limited,
		Hidden:      hidden,
		Total:       res.TotalMinutes(),
		Average:     report.AveragePerDay(res),
		Totals:      totals,
		Groups:      report.Breakdown(res, unit),
		Errors:      res.Errors,
		Sources:     sources,
		GeneratedAt: time.Now(),
	}
	if tp, ok := report.Tracking(res); ok {
		data.Period = &tp
	}

	// Render to a buffer first so a template failure yields a clean 500
	// instead of a half-written page.
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
