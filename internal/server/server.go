// Package server exposes the analysis engine over a small JSON HTTP API.
package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/covergap/covergap/internal/calculation"
	"github.com/covergap/covergap/internal/domain"
	"github.com/covergap/covergap/internal/recorder"
)

// Server routes API requests to the analysis engine and records completed
// runs through the configured Recorder.
type Server struct {
	engine   *calculation.AnalysisEngine
	recorder recorder.Recorder
	logger   calculation.Logger
}

// NewServer builds a Server. A nil recorder falls back to the no-op
// implementation; a nil logger is silenced the same way.
func NewServer(engine *calculation.AnalysisEngine, rec recorder.Recorder, logger calculation.Logger) *Server {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{engine: engine, recorder: rec, logger: logger}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("API server listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler is the root fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/api/analyze":
		s.handleAnalyze(ctx)
	case "/api/project":
		s.handleProject(ctx)
	case "/api/history":
		s.handleHistory(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

// analyzeRequest is the POST /api/analyze body.
type analyzeRequest struct {
	Mode    domain.Mode    `json:"mode"`
	Profile domain.Profile `json:"profile"`
}

func (s *Server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = domain.ModeInsurance
	}
	if err := req.Profile.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	report, err := s.engine.RunAnalysis(ctx, &req.Profile, req.Mode)
	if err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	snap := &recorder.RunSnapshot{
		UserName: req.Profile.User.Name,
		Age:      req.Profile.User.Age,
		Gender:   req.Profile.User.Gender,
		Mode:     req.Mode,
		Score:    int64(report.Analysis.Score),
		GapCount: report.Analysis.GapCount,
		Risks:    report.HealthRisks,
		Report:   report,
	}
	if err := s.recorder.RecordRun(snap); err != nil {
		s.logger.Warnf("failed to record analysis run: %v", err)
	}

	writeJSON(ctx, fasthttp.StatusOK, report)
}

// projectRequest is the POST /api/project body.
type projectRequest struct {
	Finance domain.FinanceState `json:"finance"`
}

type projectResponse struct {
	Points []domain.ProjectionPoint `json:"points"`
}

func (s *Server) handleProject(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req projectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Finance.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid finance state: "+err.Error())
		return
	}

	points := calculation.ProjectNetWorth(req.Finance)
	writeJSON(ctx, fasthttp.StatusOK, projectResponse{Points: points})
}

func (s *Server) handleHistory(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "GET required")
		return
	}

	limit := ctx.QueryArgs().GetUintOrZero("limit")
	runs, err := s.recorder.RecentRuns(limit)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("read history: %v", err))
		return
	}
	if runs == nil {
		runs = []recorder.RunRecord{}
	}
	writeJSON(ctx, fasthttp.StatusOK, runs)
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"encode response"}`)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Status: status, Message: message})
}
