package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"

	"github.com/google/uuid"
)

// MaxDocumentSize is the upper bound for nomination documents (10 MB)
const MaxDocumentSize = 10 << 20

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// DocumentStore persists SPOC nomination documents on the filesystem.
// Uploads land in a tmp directory first and are promoted to their final,
// user-id-keyed name only after the owning records are committed.
type DocumentStore struct {
	baseDir string
}

// NewDocumentStore creates the store and its directory layout
func NewDocumentStore(baseDir string) (*DocumentStore, error) {
	for _, dir := range []string{
		filepath.Join(baseDir, "tmp"),
		filepath.Join(baseDir, "spoc_pdfs"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &DocumentStore{baseDir: baseDir}, nil
}

// SaveTemp validates and writes an uploaded document into the tmp directory,
// returning the temp path for a later Promote or Discard.
func (s *DocumentStore) SaveTemp(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperrors.NewValidationError("pdf", "nomination PDF is required")
	}
	if fh.Size > MaxDocumentSize {
		return "", apperrors.NewValidationError("pdf", "file exceeds the 10MB limit")
	}
	if !isPDF(fh) {
		return "", apperrors.NewValidationError("pdf", "only PDF files are allowed")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	tmpPath := filepath.Join(s.baseDir, "tmp",
		fmt.Sprintf("%d_%s", time.Now().UnixNano(), SanitizeFilename(fh.Filename)))

	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	return tmpPath, nil
}

// Promote renames a temp file to its permanent, collision-resistant name keyed
// by the owning user id. Returns the path relative to the store base, which is
// also the path the static file server exposes.
func (s *DocumentStore) Promote(tmpPath string, userID uuid.UUID, originalName string) (string, error) {
	relPath := filepath.Join("spoc_pdfs",
		fmt.Sprintf("%s_%s", userID.String(), SanitizeFilename(originalName)))
	finalPath := filepath.Join(s.baseDir, relPath)

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", fmt.Errorf("promote uploaded file: %w", err)
	}
	return relPath, nil
}

// Discard removes a temp file after a failed registration
func (s *DocumentStore) Discard(tmpPath string) {
	if tmpPath != "" {
		_ = os.Remove(tmpPath)
	}
}

// BaseDir returns the root directory served statically under /uploads
func (s *DocumentStore) BaseDir() string {
	return s.baseDir
}

// SanitizeFilename replaces anything outside [a-zA-Z0-9._-] with underscores
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(name), "_")
}

func isPDF(fh *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return true
	}
	return fh.Header.Get("Content-Type") == "application/pdf"
}
