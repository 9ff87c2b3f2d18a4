// ABOUTME: Document source abstraction over the daily notes directory.
// ABOUTME: One markdown file per date, named YYYY-MM-DD.md.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoDocument reports that no log document exists for the requested
// date. This is the only case where extraction yields no record at all;
// callers distinguish it from partial data via errors.Is.
var ErrNoDocument = errors.New("no document for date")

// DocumentSource provides the raw log text for a date.
type DocumentSource interface {
	Read(date string) (string, error)
}

// DirSource reads daily documents from a flat directory of
// <date>.md files.
type DirSource struct {
	Dir string
}

var _ DocumentSource = (*DirSource)(nil)

// Read returns the document text for the date, or ErrNoDocument when the
// file does not exist.
func (s *DirSource) Read(date string) (string, error) {
	path := filepath.Join(s.Dir, date+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoDocument, date)
		}
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return string(data), nil
}
