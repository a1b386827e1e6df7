// Package classify assigns spending categories to transactions using ordered
// substring rules over the transaction description.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dr-Neiron/analyze-expenses/internal/models"
)

var (
	ErrEmptyCategory     = errors.New("empty category name")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrReservedCategory  = errors.New("category is reserved")
	ErrEmptyTrigger      = errors.New("empty trigger")
)

// Rule maps a category to the substrings that select it.
type Rule struct {
	Name     models.Category `yaml:"name" json:"name"`
	Triggers []string        `yaml:"triggers" json:"triggers"`
}

// Taxonomy is an ordered list of rules. Earlier rules take precedence.
type Taxonomy []Rule

// Matches reports whether the description contains any of the rule triggers.
func (r Rule) Matches(description string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(description, trigger) {
			return true
		}
	}
	return false
}

// Match returns the first category whose rule matches the description, or
// models.CategoryOther.
func (t Taxonomy) Match(description string) models.Category {
	if description == "" {
		return models.CategoryOther
	}
	for _, rule := range t {
		if rule.Matches(description) {
			return rule.Name
		}
	}
	return models.CategoryOther
}

// Categories returns the category names in precedence order.
func (t Taxonomy) Categories() []models.Category {
	names := make([]models.Category, 0, len(t))
	for _, rule := range t {
		names = append(names, rule.Name)
	}
	return names
}

// Validate checks that names are unique and non-empty, that the "Other"
// sentinel is not declared and that no trigger is empty. An empty trigger
// would match every description.
func (t Taxonomy) Validate() error {
	var problems []error
	seen := make(map[models.Category]bool, len(t))
	for i, rule := range t {
		name := strings.TrimSpace(string(rule.Name))
		switch {
		case name == "":
			problems = append(problems, fmt.Errorf("rule %d: %w", i, ErrEmptyCategory))
			continue
		case rule.Name == models.CategoryOther:
			problems = append(problems, fmt.Errorf("rule %d: %q: %w", i, rule.Name, ErrReservedCategory))
		case seen[rule.Name]:
			problems = append(problems, fmt.Errorf("rule %d: %q: %w", i, rule.Name, ErrDuplicateCategory))
		}
		seen[rule.Name] = true

		for j, trigger := range rule.Triggers {
			if trigger == "" {
				problems = append(problems, fmt.Errorf("rule %d (%s) trigger %d: %w", i, rule.Name, j, ErrEmptyTrigger))
			}
		}
	}
	return errors.Join(problems...)
}
