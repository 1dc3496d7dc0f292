// Package diagnosis holds the adaptive learning-style diagnosis engine: the
// question bank, raw and type scoring, follow-up branching, confidence
// estimation and result composition. Everything here is pure and safe for
// concurrent use; persistence lives in the service layer.
package diagnosis

import (
	"fmt"

	"coachdiag/internal/model"
)

// Catalog is a read-only question bank plus the archetypes it scores into
type Catalog struct {
	core      []model.Question
	followups []model.Question
	types     []model.DiagnosisType

	questionsByID map[string]*model.Question
	typesByID     map[string]*model.DiagnosisType
}

// NewCatalog indexes the given questions and types. Core questions are asked
// in slice order; follow-ups are scanned in slice order, which is also their
// priority.
func NewCatalog(core, followups []model.Question, types []model.DiagnosisType) *Catalog {
	c := &Catalog{
		core:          core,
		followups:     followups,
		types:         types,
		questionsByID: make(map[string]*model.Question, len(core)+len(followups)),
		typesByID:     make(map[string]*model.DiagnosisType, len(types)),
	}
	for i := range c.core {
		c.questionsByID[c.core[i].ID] = &c.core[i]
	}
	for i := range c.followups {
		if _, dup := c.questionsByID[c.followups[i].ID]; !dup {
			c.questionsByID[c.followups[i].ID] = &c.followups[i]
		}
	}
	for i := range c.types {
		c.typesByID[c.types[i].ID] = &c.types[i]
	}
	return c
}

// Core returns the fixed baseline questions in asking order
func (c *Catalog) Core() []model.Question { return c.core }

// Followups returns the adaptive pool in priority order
func (c *Catalog) Followups() []model.Question { return c.followups }

// Types returns the archetypes in catalog order
func (c *Catalog) Types() []model.DiagnosisType { return c.types }

// Question looks up a core or follow-up question by id
func (c *Catalog) Question(id string) (*model.Question, bool) {
	q, ok := c.questionsByID[id]
	return q, ok
}

// Type looks up an archetype by id
func (c *Catalog) Type(id string) (*model.DiagnosisType, bool) {
	t, ok := c.typesByID[id]
	return t, ok
}

// Issue is a catalog authoring problem found by Validate
type Issue struct {
	QuestionID string
	Message    string
}

func (i Issue) String() string {
	if i.QuestionID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.QuestionID, i.Message)
}

// Validate lists authoring errors. The engine tolerates all of them (a broken
// follow-up is simply never eligible), so this is for tooling and tests.
func (c *Catalog) Validate() []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	check := func(q model.Question, kind model.QuestionKind) {
		add := func(format string, args ...interface{}) {
			issues = append(issues, Issue{QuestionID: q.ID, Message: fmt.Sprintf(format, args...)})
		}
		if q.ID == "" {
			add("empty question id")
		}
		if seen[q.ID] {
			add("duplicate question id")
		}
		seen[q.ID] = true
		if q.Kind != kind {
			add("kind %q listed as %q", q.Kind, kind)
		}
		if len(q.Options) != len(model.AnswerLabels) {
			add("has %d options, want %d", len(q.Options), len(model.AnswerLabels))
		}
		for i, opt := range q.Options {
			if i < len(model.AnswerLabels) && opt.Label != model.AnswerLabels[i] {
				add("option %d labeled %q, want %q", i, opt.Label, model.AnswerLabels[i])
			}
		}
		for _, label := range model.AnswerLabels {
			if _, ok := q.ScoringWeights[label]; !ok {
				add("no scoring weights for answer %s", label)
			}
		}

		if kind == model.QuestionKindCore {
			if q.Condition != nil {
				add("core question carries a condition")
			}
			return
		}
		if q.Condition == nil {
			add("follow-up without condition is never asked")
			return
		}
		if q.Condition.ScoreGap != nil && q.Condition.ScoreGap.Max < 0 {
			add("scoreGap.max %.2f is negative, condition can never hold", q.Condition.ScoreGap.Max)
		}
		for dim, r := range q.Condition.Ranges {
			if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
				add("range on %s has min %.2f > max %.2f", dim, *r.Min, *r.Max)
			}
		}
	}

	for _, q := range c.core {
		check(q, model.QuestionKindCore)
	}
	for _, q := range c.followups {
		check(q, model.QuestionKindFollowUp)
	}

	if len(c.types) < 2 {
		issues = append(issues, Issue{Message: fmt.Sprintf("catalog defines %d types, need at least 2", len(c.types))})
	}
	for _, t := range c.types {
		if len(t.Formula) == 0 {
			issues = append(issues, Issue{Message: fmt.Sprintf("type %s has an empty scoring formula", t.ID)})
		}
	}
	return issues
}
