// Package worksheet stores a list of grid items and hosts one editor per
// item.
package worksheet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/genko/grid"
	errs "github.com/iw2rmb/genko/internal/errors"
)

// FormatVersion is written to every saved worksheet.
const FormatVersion = 1

// Document is the on-disk worksheet.
type Document struct {
	Version int         `json:"version"`
	Title   string      `json:"title,omitempty"`
	Items   []grid.Item `json:"items"`

	modified bool
}

// New returns a document holding items, or one empty item.
func New(items ...grid.Item) *Document {
	if len(items) == 0 {
		items = []grid.Item{grid.NewItem()}
	}
	return &Document{Version: FormatVersion, Items: items}
}

// Load reads and normalizes the worksheet at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.WorksheetNotFound(path)
	}
	if err != nil {
		return nil, errs.WorksheetLoadFailed(path, err)
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errs.WorksheetInvalid(path, err)
	}
	if d.Version == 0 {
		d.Version = FormatVersion
	}
	if len(d.Items) == 0 {
		d.Items = []grid.Item{grid.NewItem()}
	}
	return &d, nil
}

// Save writes the document as indented JSON through a temporary file.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errs.WorksheetSaveFailed(path, err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errs.WorksheetSaveFailed(path, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errs.WorksheetSaveFailed(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errs.WorksheetSaveFailed(path, err)
	}
	d.modified = false
	return nil
}

// Create writes a new document to path, refusing to overwrite.
func Create(path string, d *Document) error {
	if _, err := os.Stat(path); err == nil {
		return errs.WorksheetExists(path)
	}
	return d.Save(path)
}

// Replace stores it over the item with the same id.
func (d *Document) Replace(it grid.Item) bool {
	for i := range d.Items {
		if d.Items[i].ID == it.ID {
			d.Items[i] = it
			d.modified = true
			return true
		}
	}
	return false
}

// Append adds it at the end.
func (d *Document) Append(it grid.Item) {
	d.Items = append(d.Items, it)
	d.modified = true
}

// Modified reports unsaved changes.
func (d *Document) Modified() bool { return d.modified }

// Text returns the characters of every item, one item per line.
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		lines = append(lines, grid.Text(it.Sections))
	}
	return strings.Join(lines, "\n")
}
