package materialize

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

// Report records what a materialization did, in traversal order. A report is
// also returned alongside an error, then describing the partial state.
type Report struct {
	BasePath       string   `json:"basePath"`
	Digest         string   `json:"digest"`
	DryRun         bool     `json:"dryRun,omitempty"`
	DirsCreated    []string `json:"dirsCreated"`
	DirsExisting   []string `json:"dirsExisting"`
	FilesCreated   []string `json:"filesCreated"`
	FilesTruncated []string `json:"filesTruncated"`
	FilesKept      []string `json:"filesKept"`
	BytesTruncated uint64   `json:"bytesTruncated"`
}

func newReport(basePath, digest string) *Report {
	return &Report{
		BasePath:       basePath,
		Digest:         digest,
		DirsCreated:    []string{},
		DirsExisting:   []string{},
		FilesCreated:   []string{},
		FilesTruncated: []string{},
		FilesKept:      []string{},
	}
}

// Dirs returns the number of directories ensured, created or not.
func (r *Report) Dirs() int {
	return len(r.DirsCreated) + len(r.DirsExisting)
}

// Files returns the number of files ensured, in any state.
func (r *Report) Files() int {
	return len(r.FilesCreated) + len(r.FilesTruncated) + len(r.FilesKept)
}

// Summary returns a single human-readable line describing the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d directories (%d created, %d existing), %d files (%d created, %d truncated, %d kept), %s discarded",
		r.Dirs(), len(r.DirsCreated), len(r.DirsExisting),
		r.Files(), len(r.FilesCreated), len(r.FilesTruncated), len(r.FilesKept),
		humanize.Bytes(r.BytesTruncated),
	)
}

// JSON returns the indented JSON encoding of the report.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("(materialize) failed to encode report: %w", err)
	}

	return data, nil
}
