package bank

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
	"github.com/xuri/excelize/v2"
)

// xlsxColumns are the expected header names, matched case-insensitively.
var xlsxColumns = []string{
	"category", "category name", "question",
	"option a", "option b", "option c", "option d",
	"correct answer", "explanation",
}

// LoadXLSXFile reads a spreadsheet question source: one row per question
// with category key, category display name, question text, four options,
// correct answer letter (A-D) and explanation.
func LoadXLSXFile(path string, v *validator.Validator) (*QuestionBank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	b, err := parseXLSX(f, v)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return b, nil
}

func parseXLSX(f *excelize.File, v *validator.Validator) (*QuestionBank, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("spreadsheet must have a header row and at least one data row")
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range xlsxColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("spreadsheet is missing column %q", col)
		}
	}

	names := make(map[string]string)
	questions := make(map[string][]models.Question)
	for rowIndex, row := range rows[1:] {
		id := cell(row, headerMap["category"])
		if id == "" {
			return nil, fmt.Errorf("row %d: empty category key", rowIndex+2)
		}

		correct, err := parseCorrectAnswer(cell(row, headerMap["correct answer"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIndex+2, err)
		}

		names[id] = cell(row, headerMap["category name"])
		questions[id] = append(questions[id], models.Question{
			Text: cell(row, headerMap["question"]),
			Choices: []string{
				cell(row, headerMap["option a"]),
				cell(row, headerMap["option b"]),
				cell(row, headerMap["option c"]),
				cell(row, headerMap["option d"]),
			},
			Correct:     correct,
			Explanation: cell(row, headerMap["explanation"]),
		})
	}

	categories := make(map[string]*models.Category, len(questions))
	for id, qs := range questions {
		category := &models.Category{ID: id, Name: names[id], Questions: qs}
		if err := v.Validate(category); err != nil {
			return nil, fmt.Errorf("category %q: %w", id, err)
		}
		categories[id] = category
	}

	return newQuestionBank(categories), nil
}

// parseCorrectAnswer accepts either a letter (A-D) or a numeric index (0-3).
func parseCorrectAnswer(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "A", "B", "C", "D":
		return int(s[0] - 'A'), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < models.ChoiceCount {
		return n, nil
	}
	return 0, fmt.Errorf("invalid correct answer %q", s)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
