// Package api exposes label generation over HTTP: clients POST a location
// table and receive the rendered PDF. Rendered documents are cached by the
// content hash of the uploaded table, so repeated uploads of the same table
// are served without re-rendering.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/shelfmark/shelfmark/pkg/cache"
	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/label"
	"github.com/shelfmark/shelfmark/pkg/layout"
	"github.com/shelfmark/shelfmark/pkg/pipeline"
	"github.com/shelfmark/shelfmark/pkg/source"
)

const (
	// maxUploadBytes bounds the multipart form size.
	maxUploadBytes = 32 << 20

	// renderCacheTTL is how long rendered documents stay cached.
	renderCacheTTL = time.Hour
)

// Server handles HTTP label-generation requests.
type Server struct {
	runner  *pipeline.Runner
	cache   cache.Cache
	cfg     layout.Config
	cfgHash string
	logger  *log.Logger
}

// NewServer creates a Server rendering with the given sheet geometry.
// A nil cache disables response caching; a nil logger disables request logging.
func NewServer(c cache.Cache, cfg layout.Config, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		runner:  pipeline.NewRunner(c, logger),
		cache:   c,
		cfg:     cfg,
		cfgHash: cache.Hash([]byte(fmt.Sprintf("%+v", cfg))),
		logger:  logger,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/labels", s.handleLabels)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleLabels accepts a multipart upload with a "table" file field (CSV or
// XLSX) and responds with the rendered PDF.
func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse upload"))
		return
	}

	file, header, err := r.FormFile("table")
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, `missing "table" file field`))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "read upload"))
		return
	}

	// Cache lookup by table content and geometry. Servers sharing a redis
	// backend may run different layouts, so both go into the key.
	key := "render:" + s.cfgHash[:16] + ":" + cache.Hash(data)
	if pdf, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.logger.Debug("render cache hit", "key", key)
		s.writePDF(w, pdf)
		return
	}

	records, err := s.readUpload(header.Filename, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(records) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "table has no records"))
		return
	}

	var buf bytes.Buffer
	pages, err := s.runner.Render(r.Context(), records, s.cfg, &buf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	_ = s.cache.Set(r.Context(), key, buf.Bytes(), renderCacheTTL)

	w.Header().Set("X-Label-Count", strconv.Itoa(len(records)))
	w.Header().Set("X-Page-Count", strconv.Itoa(pages))
	s.writePDF(w, buf.Bytes())
}

// readUpload stages the uploaded table in a temporary file so the source
// package can dispatch on its extension. The file is removed before
// returning on every path.
func (s *Server) readUpload(filename string, data []byte) ([]label.Record, error) {
	ext := filepath.Ext(filename)
	tmp, err := os.CreateTemp("", "shelfmark-upload-*"+ext)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stage upload")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stage upload")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stage upload")
	}

	return source.Read(tmp.Name())
}

func (s *Server) writePDF(w http.ResponseWriter, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}

// writeError maps structured error codes onto HTTP status codes and emits a
// JSON error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeUnsupportedFormat,
		errors.ErrCodeMissingField,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidRatios,
		errors.ErrCodeFileNotFound:
		status = http.StatusBadRequest
	}

	s.logger.Error("request failed", "path", r.URL.Path, "status", status, "err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
