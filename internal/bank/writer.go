package bank

import (
	"encoding/json"
	"io"
	"os"
)

// Write serializes the catalog back into the JSON source format, so an
// XLSX import can be converted once and loaded as JSON afterwards.
func Write(w io.Writer, b *QuestionBank) error {
	doc := make(map[string]categoryDocument, b.Len())
	for _, category := range b.Categories() {
		doc[category.ID] = categoryDocument{
			Name:      category.Name,
			Questions: category.Questions,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile writes the catalog to disk as a JSON question source.
func WriteFile(path string, b *QuestionBank) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
