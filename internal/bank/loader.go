package bank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
)

// LoadError reports that the question source was unreachable or malformed.
// No session can start until a bank loads successfully.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading question source %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// categoryDocument mirrors the question source format: one entry per
// category key, carrying the display name and question list.
type categoryDocument struct {
	Name      string            `json:"name"`
	Questions []models.Question `json:"questions"`
}

// LoadFile reads and validates a JSON question source from disk.
func LoadFile(path string, v *validator.Validator) (*QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	b, err := Parse(f, v)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return b, nil
}

// Parse decodes a question source document and validates every question.
func Parse(r io.Reader, v *validator.Validator) (*QuestionBank, error) {
	var doc map[string]categoryDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode question source: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("question source contains no categories")
	}

	categories := make(map[string]*models.Category, len(doc))
	for id, entry := range doc {
		category := &models.Category{
			ID:        id,
			Name:      entry.Name,
			Questions: entry.Questions,
		}
		if err := v.Validate(category); err != nil {
			return nil, fmt.Errorf("category %q: %w", id, err)
		}
		categories[id] = category
	}

	return newQuestionBank(categories), nil
}
