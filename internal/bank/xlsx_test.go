package bank

import (
	"path/filepath"
	"testing"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "questions.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var xlsxHeader = []interface{}{
	"Category", "Category Name", "Question",
	"Option A", "Option B", "Option C", "Option D",
	"Correct Answer", "Explanation",
}

func TestLoadXLSXFile(t *testing.T) {
	path := writeTestSheet(t, [][]interface{}{
		xlsxHeader,
		{"airBrakes", "Air Brakes", "Why drain air tanks?",
			"To remove water and oil", "To test brakes", "To reduce pressure", "To warm them up",
			"A", "Compressed air contains water."},
		{"airBrakes", "Air Brakes", "Max leakage for a single vehicle?",
			"1 psi/min", "2 psi/min", "3 psi/min", "4 psi/min",
			"B", "More than 2 psi per minute indicates a leak."},
		{"passenger", "Passenger", "When may you fuel with riders aboard?",
			"Never, unless necessary", "Anytime", "Only diesel", "Only at night",
			"0", "Avoid fueling with riders unless absolutely necessary."},
	})

	b, err := LoadXLSXFile(path, validator.New())
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())

	airBrakes, err := b.Category("airBrakes")
	require.NoError(t, err)
	assert.Equal(t, "Air Brakes", airBrakes.Name)
	require.Len(t, airBrakes.Questions, 2)
	assert.Equal(t, 1, airBrakes.Questions[1].Correct)

	passenger, err := b.Category("passenger")
	require.NoError(t, err)
	assert.Equal(t, 0, passenger.Questions[0].Correct)
}

func TestLoadXLSXFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{"header only", [][]interface{}{xlsxHeader}},
		{"missing columns", [][]interface{}{
			{"Category", "Question"},
			{"airBrakes", "Q"},
		}},
		{"bad correct answer", [][]interface{}{
			xlsxHeader,
			{"airBrakes", "Air Brakes", "Q", "a", "b", "c", "d", "E", ""},
		}},
		{"empty category key", [][]interface{}{
			xlsxHeader,
			{"", "Air Brakes", "Q", "a", "b", "c", "d", "A", ""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestSheet(t, tt.rows)
			_, err := LoadXLSXFile(path, validator.New())
			assert.Error(t, err)
		})
	}
}
