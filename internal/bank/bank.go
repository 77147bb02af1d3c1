// Package bank holds the static catalog of test categories and their
// questions. The catalog is read-only after load; sessions take their own
// shuffled copies and never mutate it.
package bank

import (
	"errors"
	"sort"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// ErrCategoryNotFound is returned when a category id is not in the catalog.
var ErrCategoryNotFound = errors.New("category not found")

// QuestionBank is the immutable category catalog.
type QuestionBank struct {
	categories map[string]*models.Category
	order      []string
}

func newQuestionBank(categories map[string]*models.Category) *QuestionBank {
	order := make([]string, 0, len(categories))
	for id := range categories {
		order = append(order, id)
	}
	// Stable listing order for display, regardless of source ordering.
	sort.Slice(order, func(i, j int) bool {
		return categories[order[i]].Name < categories[order[j]].Name
	})

	return &QuestionBank{categories: categories, order: order}
}

// Category returns the category with the given id.
func (b *QuestionBank) Category(id string) (*models.Category, error) {
	c, ok := b.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Categories returns all categories sorted by display name.
func (b *QuestionBank) Categories() []*models.Category {
	out := make([]*models.Category, len(b.order))
	for i, id := range b.order {
		out[i] = b.categories[id]
	}
	return out
}

// Len returns the number of categories in the catalog.
func (b *QuestionBank) Len() int {
	return len(b.categories)
}

// DisplayName returns the category's display name, falling back to the id
// for keys the catalog no longer carries (stale stats entries).
func (b *QuestionBank) DisplayName(id string) string {
	if c, ok := b.categories[id]; ok {
		return c.Name
	}
	return id
}
