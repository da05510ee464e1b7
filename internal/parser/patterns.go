package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// The trigger phrase may appear mid-sentence, so patterns search anywhere in
// the text instead of anchoring the whole line. The category token is
// Unicode-aware so accented categories ("inversión") match.

var (
	expenseRe = regexp.MustCompile(`(?i)(gast[ée]|saqué)\s+(\d+)\s+de\s+([\p{L}\p{N}_]+)(\s+por\s+(.+))?`)
	incomeRe  = regexp.MustCompile(`(?i)(añad[íi]|agregu[ée]|sum[ée])\s+(\d+)\s+a\s+([\p{L}\p{N}_]+)(\s+por\s+(.+))?`)
	viewRe    = regexp.MustCompile(`(?i)ver\s+(presupuesto\s+)?([\p{L}\p{N}_]+)`)
)

// expensePattern matches "spent" verbs: "Gasté 3000 de moto por gasolina".
type expensePattern struct{}

func (*expensePattern) Action() Action { return ActionExpense }

func (*expensePattern) Extract(text string) (Intent, bool) {
	m := expenseRe.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	amount, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Intent{}, false
	}
	return Intent{
		Action:   ActionExpense,
		Amount:   amount,
		Category: strings.ToLower(strings.TrimSpace(m[3])),
		Memo:     strings.TrimSpace(m[5]),
	}, true
}

// incomePattern matches "added/contributed" verbs: "Añadí 5000 a inversión".
type incomePattern struct{}

func (*incomePattern) Action() Action { return ActionIncome }

func (*incomePattern) Extract(text string) (Intent, bool) {
	m := incomeRe.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	amount, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Intent{}, false
	}
	return Intent{
		Action:   ActionIncome,
		Amount:   amount,
		Category: strings.ToLower(strings.TrimSpace(m[3])),
		Memo:     strings.TrimSpace(m[5]),
	}, true
}

// viewPattern matches "ver [presupuesto] <category>".
type viewPattern struct{}

func (*viewPattern) Action() Action { return ActionView }

func (*viewPattern) Extract(text string) (Intent, bool) {
	m := viewRe.FindStringSubmatch(text)
	if m == nil {
		return Intent{}, false
	}
	return Intent{
		Action:   ActionView,
		Category: strings.ToLower(strings.TrimSpace(m[2])),
	}, true
}
