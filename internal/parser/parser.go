// Package parser maps free-text chat messages to structured intents.
// Classification is stateless and single-shot: an ordered list of patterns is
// tried in sequence and the first match wins, so registration order is part
// of the contract.
package parser

// Action tags the kind of intent a pattern recognizes.
type Action string

const (
	ActionExpense Action = "expense"
	ActionIncome  Action = "income"
	ActionView    Action = "view"
)

// Intent is the structured result of parsing one message.
type Intent struct {
	Action   Action
	Amount   int64  // integer at the parse layer; unset for view intents
	Category string // lowercased, trimmed
	Memo     string // "" when absent
}

// Pattern recognizes one phrasing family. Extract answers both "can I handle
// this text" and "what do I extract": it returns false when the text does not
// match or required fields are missing.
type Pattern interface {
	Action() Action
	Extract(text string) (Intent, bool)
}

// Parser tries its patterns in order; the first match wins.
type Parser struct {
	patterns []Pattern
}

// New returns a parser with the three built-in patterns: expense, income,
// view budget, in that order.
func New() *Parser {
	return &Parser{patterns: []Pattern{
		&expensePattern{},
		&incomePattern{},
		&viewPattern{},
	}}
}

// Add appends a pattern after the existing ones. Existing patterns keep
// their priority.
func (p *Parser) Add(pattern Pattern) {
	p.patterns = append(p.patterns, pattern)
}

// Parse classifies the text. It returns (nil, false) when no pattern matches
// or a matching pattern cannot extract its fields; callers must then show a
// help message rather than drop the input.
func (p *Parser) Parse(text string) (*Intent, bool) {
	for _, pattern := range p.patterns {
		if intent, ok := pattern.Extract(text); ok {
			return &intent, true
		}
	}
	return nil, false
}
