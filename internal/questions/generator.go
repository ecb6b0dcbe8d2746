// Package questions builds interview question sets from a static bank and
// the brand values attached to a position.
package questions

import (
	"fmt"
	"math/rand/v2"

	"github.com/kingrea/hirekit/internal/position"
)

// ValuesCategory labels questions synthesised from brand values.
const ValuesCategory = "Values"

// DefaultPerCategory is how many questions each bank category contributes.
const DefaultPerCategory = 3

// Category is one named pool of candidate questions.
type Category struct {
	Name      string
	Questions []string
}

// Bank is an ordered list of categories. Order is the output order.
type Bank []Category

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator draws questions from a bank.
type Generator struct {
	bank        Bank
	rng         Shuffler
	perCategory int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithBank replaces the default question bank.
func WithBank(bank Bank) Option {
	return func(g *Generator) { g.bank = bank }
}

// WithRand fixes the random source, mainly for tests.
func WithRand(rng Shuffler) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithPerCategory changes how many questions each category contributes.
// Values below 1 keep the default.
func WithPerCategory(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.perCategory = n
		}
	}
}

// New returns a generator over DefaultBank.
func New(opts ...Option) *Generator {
	g := &Generator{
		bank:        DefaultBank,
		rng:         globalShuffler{},
		perCategory: DefaultPerCategory,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh question list: for every bank category in order a
// random selection without replacement, followed by one question per brand
// value. Categories smaller than the per-category count contribute all of
// their questions.
func (g *Generator) Generate(brandValues []string) []position.InterviewQuestion {
	out := make([]position.InterviewQuestion, 0, len(g.bank)*g.perCategory+len(brandValues))
	for _, cat := range g.bank {
		pool := append([]string{}, cat.Questions...)
		g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		take := min(g.perCategory, len(pool))
		for _, q := range pool[:take] {
			out = append(out, position.InterviewQuestion{Category: cat.Name, Question: q})
		}
	}
	for _, v := range brandValues {
		out = append(out, position.InterviewQuestion{Category: ValuesCategory, Question: ValueQuestion(v)})
	}
	return out
}

// Apply returns a copy of p whose question list is replaced wholesale.
func (g *Generator) Apply(p position.Position) position.Position {
	out := p.Clone()
	out.InterviewQuestions = g.Generate(p.BrandValues)
	return out
}

// ValueQuestion is the prompt asked for a single brand value.
func ValueQuestion(value string) string {
	return fmt.Sprintf("Tell me about a time you demonstrated \"%s\" in a work setting.", value)
}

// Group is a block of questions sharing a category.
type Group struct {
	Category  string
	Questions []string
}

// GroupByCategory collects questions per category, ordered by the first
// appearance of each category.
func GroupByCategory(qs []position.InterviewQuestion) []Group {
	var groups []Group
	index := map[string]int{}
	for _, q := range qs {
		idx, ok := index[q.Category]
		if !ok {
			idx = len(groups)
			index[q.Category] = idx
			groups = append(groups, Group{Category: q.Category})
		}
		groups[idx].Questions = append(groups[idx].Questions, q.Question)
	}
	return groups
}
