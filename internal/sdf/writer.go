package sdf

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Writer renders document trees to pretty-printed XML files
type Writer struct{}

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Render returns the document as indented XML text with the standard
// declaration. Element order follows construction order.
func (w *Writer) Render(doc any) (string, error) {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling XML: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

// WriteFile renders the document and writes it to path. The content
// goes to a temporary file in the same directory first and is renamed
// into place, so a failed write never leaves a partial document that
// looks valid.
func (w *Writer) WriteFile(path string, doc any) error {
	text, err := w.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("moving %s into place: %w", path, err)
	}
	return nil
}
