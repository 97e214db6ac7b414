package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/wordcollect/internal/collection"
	"github.com/dgallion1/wordcollect/internal/parser"
	"github.com/dgallion1/wordcollect/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	res, err := s.conv.Build(bytes.NewReader(data), filename)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, parser.ErrInvalidEncoding) || errors.Is(err, parser.ErrUnsupportedFormat) {
			code = http.StatusUnprocessableEntity
		}
		s.log.Warn("collection build failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), code)
		return
	}

	entry := s.store.Put(filename, res)
	s.log.Info("collection stored",
		"id", entry.ID,
		"filename", filename,
		"paragraphs", res.Collection.Total(),
		"skipped", len(res.Skipped),
	)

	skipped := res.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":           entry.ID,
		"filename":     entry.Filename,
		"content_hash": res.Fingerprint.SHA256,
		"counts":       tierCounts(res.Collection),
		"skipped":      skipped,
	})
}

func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(w, r)
	if entry == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := pipeline.Encode(w, entry.Result.Collection, pipeline.FormatJSON); err != nil {
		s.log.Error("encode collection", "id", entry.ID, "error", err)
	}
}

func (s *Server) handleCollectionStats(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(w, r)
	if entry == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":    entry.ID,
		"tiers": entry.Result.Collection.Stats(),
	})
}

func (s *Server) handleGetTier(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(w, r)
	if entry == nil {
		return
	}
	tier, ok := tierParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":       tier,
		"paragraphs": entry.Result.Collection.Paragraphs(tier),
	})
}

func (s *Server) handleRandomPassage(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(w, r)
	if entry == nil {
		return
	}
	tier, ok := tierParam(w, r)
	if !ok {
		return
	}
	paragraphs := entry.Result.Collection.Paragraphs(tier)
	if len(paragraphs) == 0 {
		jsonError(w, fmt.Sprintf("tier %s has no paragraphs", tier), http.StatusNotFound)
		return
	}
	text := paragraphs[rand.IntN(len(paragraphs))]
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":       tier,
		"text":       text,
		"word_count": collection.WordCount(text),
	})
}

// tierCount is one entry of the ordered per-tier paragraph counts.
type tierCount struct {
	Tier       collection.Tier `json:"tier"`
	Paragraphs int             `json:"paragraphs"`
}

func tierCounts(c *collection.Collection) []tierCount {
	out := make([]tierCount, 0, len(collection.Tiers))
	for _, t := range collection.Tiers {
		out = append(out, tierCount{Tier: t, Paragraphs: c.Count(t)})
	}
	return out
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *pipeline.Entry {
	id := chi.URLParam(r, "id")
	entry := s.store.Get(id)
	if entry == nil {
		jsonError(w, "collection not found", http.StatusNotFound)
		return nil
	}
	return entry
}

func tierParam(w http.ResponseWriter, r *http.Request) (collection.Tier, bool) {
	tier, err := collection.ParseTier(chi.URLParam(r, "tier"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return tier, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
