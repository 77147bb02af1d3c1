package bank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `{
	"airBrakes": {
		"name": "Air Brakes",
		"questions": [
			{
				"question": "Why drain air tanks?",
				"choices": ["To remove water and oil", "To test the brakes", "To reduce pressure", "To warm them up"],
				"correct": 0,
				"explanation": "Compressed air contains water and a little compressor oil."
			},
			{
				"question": "What is the maximum leakage rate for a single vehicle?",
				"choices": ["1 psi per minute", "2 psi per minute", "3 psi per minute", "4 psi per minute"],
				"correct": 1,
				"explanation": "More than 2 psi per minute indicates a leak."
			}
		]
	},
	"generalKnowledge": {
		"name": "General Knowledge",
		"questions": [
			{
				"question": "When should you use your mirrors?",
				"choices": ["Only when changing lanes", "Regularly", "Only in traffic", "Never"],
				"correct": 1,
				"explanation": "Check mirrors regularly to know what is around you."
			}
		]
	}
}`

func TestParse(t *testing.T) {
	v := validator.New()

	b, err := Parse(strings.NewReader(sampleSource), v)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())

	category, err := b.Category("airBrakes")
	require.NoError(t, err)
	assert.Equal(t, "Air Brakes", category.Name)
	assert.Len(t, category.Questions, 2)
	assert.Equal(t, 0, category.Questions[0].Correct)
}

func TestParse_UnknownCategory(t *testing.T) {
	v := validator.New()

	b, err := Parse(strings.NewReader(sampleSource), v)
	require.NoError(t, err)

	_, err = b.Category("tankVehicles")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestParse_Invalid(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name   string
		source string
	}{
		{"malformed json", `{"airBrakes": {`},
		{"empty document", `{}`},
		{"no questions", `{"airBrakes": {"name": "Air Brakes", "questions": []}}`},
		{
			"wrong choice count",
			`{"airBrakes": {"name": "Air Brakes", "questions": [
				{"question": "Q", "choices": ["a", "b", "c"], "correct": 0, "explanation": ""}
			]}}`,
		},
		{
			"correct index out of range",
			`{"airBrakes": {"name": "Air Brakes", "questions": [
				{"question": "Q", "choices": ["a", "b", "c", "d"], "correct": 4, "explanation": ""}
			]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.source), v)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	v := validator.New()

	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0o644))

	b, err := LoadFile(path, v)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	v := validator.New()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"), v)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "nope.json")
}

func TestCategories_SortedByName(t *testing.T) {
	v := validator.New()

	b, err := Parse(strings.NewReader(sampleSource), v)
	require.NoError(t, err)

	categories := b.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Air Brakes", categories[0].Name)
	assert.Equal(t, "General Knowledge", categories[1].Name)
}

func TestDisplayName_Fallback(t *testing.T) {
	v := validator.New()

	b, err := Parse(strings.NewReader(sampleSource), v)
	require.NoError(t, err)

	assert.Equal(t, "Air Brakes", b.DisplayName("airBrakes"))
	assert.Equal(t, "retiredCategory", b.DisplayName("retiredCategory"))
}
