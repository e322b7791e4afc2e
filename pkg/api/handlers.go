package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arkapriyo/closestpair/pkg/buildinfo"
	"github.com/arkapriyo/closestpair/pkg/closest"
	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
	pointio "github.com/arkapriyo/closestpair/pkg/io"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

type closestRequest struct {
	Points    json.RawMessage `json:"points"`
	Algorithm string          `json:"algorithm"`
}

type closestResponse struct {
	ID string `json:"id"`
	pipeline.Run
}

type generateRequest struct {
	Count        int     `json:"count"`
	Distribution string  `json:"distribution"`
	Clusters     int     `json:"clusters"`
	Spread       float64 `json:"spread"`
	Extent       float64 `json:"extent"`
	Seed         uint64  `json:"seed"`
}

type compareRequest struct {
	Points         json.RawMessage  `json:"points"`
	Generate       *generateRequest `json:"generate"`
	SkipBruteForce bool             `json:"skip_brute_force"`
	Tolerance      float64          `json:"tolerance"`
}

type errorResponse struct {
	Code    cperrors.Code `json:"code"`
	Message string        `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, cperrors.New(cperrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleClosest(w http.ResponseWriter, r *http.Request) {
	var req closestRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	algo, err := closest.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	points, err := s.decodePoints(req.Points)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if limit := s.opts.BruteForceLimit; algo == closest.Brute && limit > 0 && len(points) > limit {
		s.writeError(w, r, cperrors.New(cperrors.ErrCodeTooLarge,
			"brute force is limited to %d points, got %d (use the dc algorithm)", limit, len(points)))
		return
	}

	run, err := s.runner.Solve(r.Context(), algo, points)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, closestResponse{ID: RequestIDFrom(r.Context()), Run: run})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		SkipBruteForce:  req.SkipBruteForce,
		Tolerance:       req.Tolerance,
		MaxPoints:       s.opts.MaxPoints,
		BruteForceLimit: s.opts.BruteForceLimit,
		Logger:          s.logger,
	}
	switch {
	case len(req.Points) > 0 && req.Generate != nil:
		s.writeError(w, r, cperrors.New(cperrors.ErrCodeInvalidInput, `"points" and "generate" are mutually exclusive`))
		return
	case len(req.Points) > 0:
		points, err := s.decodePoints(req.Points)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Points = points
	case req.Generate != nil:
		g := req.Generate
		opts.Count = g.Count
		opts.Distribution = g.Distribution
		opts.Clusters = g.Clusters
		opts.Spread = g.Spread
		opts.Extent = g.Extent
		opts.Seed = g.Seed
	default:
		s.writeError(w, r, cperrors.New(cperrors.ErrCodeInvalidInput, `one of "points" or "generate" is required`))
		return
	}

	report, err := s.runner.Compare(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// decode reads a JSON body into v, enforcing the body size limit.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return cperrors.Wrap(cperrors.ErrCodeTooLarge, err, "request body exceeds %d bytes", maxErr.Limit)
		}
		return cperrors.Wrap(cperrors.ErrCodeInvalidFormat, err, "decode request")
	}
	return nil
}

func (s *Server) decodePoints(raw json.RawMessage) ([]geom.Point, error) {
	if len(raw) == 0 {
		return nil, cperrors.New(cperrors.ErrCodeInvalidInput, `"points" is required`)
	}
	points, err := pointio.ReadPoints(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if err := cperrors.ValidateLimit("points", len(points), s.opts.MaxPoints); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := cperrors.GetCode(err)
	msg := cperrors.UserMessage(err)
	if code == "" {
		code = cperrors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func statusFor(err error) int {
	switch {
	case cperrors.IsInvalid(err):
		return http.StatusBadRequest
	case cperrors.Is(err, cperrors.ErrCodeTooLarge):
		return http.StatusRequestEntityTooLarge
	case cperrors.Is(err, cperrors.ErrCodeNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
