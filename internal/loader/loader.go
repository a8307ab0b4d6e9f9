package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/isect/go/internal/models"
)

// ReadError reports an input source that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("file %q could not be opened: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports an input source that was read but is not a valid
// object document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and decodes one input document. Failures are either a
// *ReadError or a *ParseError; the search itself never runs on a bad source.
func Load(path string) (*models.Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	var input models.Input
	if err := json.NewDecoder(file).Decode(&input); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &input, nil
}
