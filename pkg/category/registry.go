package category

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dkhrunov/newsdigest/pkg/config"
)

// ErrUnknownCategory indicates a reference to a category not present in the registry.
// This is an internal-consistency error and must never occur in normal operation.
var ErrUnknownCategory = errors.New("unknown category")

// Keyword is a single lowercased keyword with its weight
type Keyword struct {
	Word   string
	Weight int
}

// Category is one entry of the registry
type Category struct {
	ID       int64
	Name     string
	Keywords []Keyword
}

// Registry holds all category definitions. It is built once at process start
// and read-only afterwards, safe for concurrent use without locking.
type Registry struct {
	byID    map[int64]Category
	ordered []Category
}

// NewRegistry builds a registry from configuration. Keywords are lowercased
// so matching against normalized article text is case-insensitive.
func NewRegistry(categories []config.CategoryConfig) (*Registry, error) {
	byID := make(map[int64]Category, len(categories))
	ordered := make([]Category, 0, len(categories))

	for _, cc := range categories {
		if _, exists := byID[cc.ID]; exists {
			return nil, fmt.Errorf("duplicate category id %d", cc.ID)
		}

		cat := Category{ID: cc.ID, Name: cc.Name, Keywords: make([]Keyword, 0, len(cc.Keywords))}
		for _, kw := range cc.Keywords {
			word := strings.ToLower(strings.TrimSpace(kw.Word))
			if word == "" {
				continue
			}
			weight := kw.Weight
			if weight < 1 {
				weight = 1
			}
			cat.Keywords = append(cat.Keywords, Keyword{Word: word, Weight: weight})
		}

		byID[cc.ID] = cat
		ordered = append(ordered, cat)
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Registry{byID: byID, ordered: ordered}, nil
}

// Get returns the category with the given ID, ErrUnknownCategory if absent
func (r *Registry) Get(id int64) (Category, error) {
	cat, ok := r.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("category %d: %w", id, ErrUnknownCategory)
	}
	return cat, nil
}

// All returns all categories ordered by ID ascending
func (r *Registry) All() []Category {
	return r.ordered
}

// Len returns the number of categories
func (r *Registry) Len() int {
	return len(r.ordered)
}
