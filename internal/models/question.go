package models

// ChoiceCount is the number of answer choices every question carries.
const ChoiceCount = 4

// Question is a single multiple-choice item. Immutable once loaded from
// the question bank.
type Question struct {
	Text        string   `json:"question" validate:"required,min=1"`
	Choices     []string `json:"choices" validate:"required,len=4,dive,required"`
	Correct     int      `json:"correct" validate:"min=0,max=3"`
	Explanation string   `json:"explanation"`
}

// Category is a named, fixed topic grouping of questions (e.g. "Air Brakes").
// Owned by the question bank for the process lifetime.
type Category struct {
	ID        string     `json:"-" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	Questions []Question `json:"questions" validate:"required,min=1,dive"`
}
