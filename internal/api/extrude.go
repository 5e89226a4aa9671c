package api

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/pixelextrude/pkg/core/document"
	"github.com/matzehuels/pixelextrude/pkg/errors"
	"github.com/matzehuels/pixelextrude/pkg/pipeline"
)

// Response headers set on successful extrusions.
const (
	HeaderJobID     = "X-Job-ID"
	HeaderCache     = "X-Cache"
	HeaderBackRects = "X-Back-Rects"
)

func (s *Server) extrude(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := document.ModeCombined
	if v := q.Get("mode"); v != "" {
		m, err := document.ParseMode(v)
		if err != nil {
			s.writeError(w, err)
			return
		}
		mode = m
	}

	opts, err := s.options(q)
	if err != nil {
		s.writeError(w, err)
		return
	}

	name := "upload"
	if v := q.Get("name"); v != "" {
		if err := errors.ValidateStem(v); err != nil {
			s.writeError(w, err)
			return
		}
		name = v
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(body) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request body is empty"))
		return
	}

	jobID := uuid.NewString()
	res, err := s.runner.Extrude(r.Context(), jobID, body, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheHit {
		cacheStatus = "hit"
	}
	h := w.Header()
	h.Set("Content-Type", "image/svg+xml")
	h.Set("Content-Disposition", `inline; filename="`+pipeline.OutputName(name+pipeline.DefaultExt, mode)+`"`)
	h.Set(HeaderJobID, jobID)
	h.Set(HeaderCache, cacheStatus)
	h.Set(HeaderBackRects, strconv.Itoa(res.Stats.BackRects))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[mode])
}

// options overlays query parameters on the server's base options.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	opts := s.base
	if err := intParam(q, "depth", &opts.Depth); err != nil {
		return opts, err
	}
	if err := intParam(q, "indent", &opts.Indent); err != nil {
		return opts, err
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"dx", &opts.DX},
		{"dy", &opts.DY},
		{"far", &opts.FarFactor},
		{"near", &opts.NearFactor},
		{"skip_alpha_le", &opts.SkipAlphaLE},
	}
	for _, f := range floats {
		if err := floatParam(q, f.key, f.dst); err != nil {
			return opts, err
		}
	}
	if v := q.Get("declaration"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidOption, "declaration must be a boolean, got %q", v)
		}
		opts.Declaration = b
	}
	return opts, opts.Validate()
}

func intParam(q url.Values, key string, dst *int) error {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidOption, "%s must be an integer, got %q", key, v)
	}
	*dst = n
	return nil
}

func floatParam(q url.Values, key string, dst *float64) error {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidOption, "%s must be a number, got %q", key, v)
	}
	*dst = f
	return nil
}
