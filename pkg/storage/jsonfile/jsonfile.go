// Package jsonfile implements storage.Storage on top of a single JSON document
// of the form {"reports": [...]}, oldest entry first.
//
// All appends are serialized behind a write lock that covers the whole
// read-modify-write cycle. Reads share a read lock. The document is replaced
// through a temp file and a rename, so a reader never sees a half-written file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bangsafe/pkg/domain"
	"bangsafe/pkg/logger"
	"bangsafe/pkg/serrors"
	"bangsafe/pkg/storage"
)

// DefaultPath is used when Options.Path is empty.
const DefaultPath = "reports.json"

// Options configures the JSON document store.
type Options struct {
	// Path is the location of the reports document.
	Path string
}

// Store is a storage.Storage persisting reports into a JSON document.
type Store struct {
	path string

	mu     sync.RWMutex
	closed bool
}

var _ storage.Storage = (*Store)(nil)

type entry struct {
	ID   string  `json:"id"`
	URL  string  `json:"url"`
	Note string  `json:"note"`
	TS   float64 `json:"ts"`
}

type document struct {
	Reports []entry `json:"reports"`
}

// New opens the document at options.Path, creating it as {"reports": []} when
// it does not exist yet. An existing document is left untouched.
func New(ctx context.Context, options Options) (*Store, error) {
	path := options.Path
	if path == "" {
		path = DefaultPath
	}

	s := &Store{path: path}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create reports directory: %w", err)
		}
		if err := s.write(document{Reports: []entry{}}); err != nil {
			return nil, err
		}
		logger.Info(ctx, "initialized reports document", zap.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("could not stat reports document: %w", err)
	}

	return s, nil
}

// Path returns the location of the reports document.
func (s *Store) Path() string {
	return s.path
}

// AppendReport adds report at the end of the document. A corrupt document is
// replaced by a fresh one holding only the new report.
func (s *Store) AppendReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrClosed
	}

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	doc.Reports = append(doc.Reports, entry{
		ID:   report.ID.String(),
		URL:  report.URL,
		Note: report.Note,
		TS:   domain.EpochSeconds(report.CreatedAt),
	})
	if err := s.write(doc); err != nil {
		return nil, err
	}

	return &report, nil
}

// LatestReports returns at most limit reports, newest first.
func (s *Store) LatestReports(ctx context.Context, limit uint) ([]domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrClosed
	}

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Report, 0, min(limit, uint(len(doc.Reports))))
	for i := len(doc.Reports) - 1; i >= 0 && uint(len(out)) < limit; i-- {
		e := doc.Reports[i]
		id, err := uuid.Parse(e.ID)
		if err != nil {
			logger.Warn(ctx, "skipping report with invalid id", zap.String("id", e.ID), zap.Error(err))

			continue
		}

		out = append(out, domain.Report{
			ID:        domain.ReportID(id),
			URL:       e.URL,
			Note:      e.Note,
			CreatedAt: domain.FromEpochSeconds(e.TS),
		})
	}

	return out, nil
}

// Close marks the store closed. The document itself stays on disk.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

// load reads the document, treating a missing or corrupt one as empty.
func (s *Store) load(ctx context.Context) (document, error) {
	doc, err := s.read()
	if err == nil {
		return doc, nil
	}
	if errors.Is(err, serrors.ErrStoreCorrupt) {
		logger.Warn(ctx, "reports document is corrupt, treating it as empty",
			zap.String("path", s.path), zap.Error(err))

		return document{}, nil
	}

	return document{}, err
}

func (s *Store) read() (document, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("could not read reports document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return document{}, serrors.Wrap(serrors.ErrStoreCorrupt, err, "could not decode reports document")
	}

	return doc, nil
}

func (s *Store) write(doc document) error {
	if doc.Reports == nil {
		doc.Reports = []entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode reports document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp reports document: %w", err)
	}
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not chmod temp reports document: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write temp reports document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not sync temp reports document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp reports document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace reports document: %w", err)
	}

	return nil
}
