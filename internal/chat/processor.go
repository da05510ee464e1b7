// Package chat turns parsed intents into facade calls and reply text.
// The processor is stateless per call: it assumes no pending dialog state
// from the transport.
package chat

import (
	"fmt"
	"strings"
	"unicode"

	"monevo/internal/models"
	"monevo/internal/parser"
	"monevo/internal/services"
)

const helpMessage = "❌ No entendí el mensaje. Ejemplos:\n" +
	"• 'Gasté 3000 de moto por gasolina'\n" +
	"• 'Añadí 5000 a inversión por salario'\n" +
	"• 'Ver presupuesto moto'"

// Processor dispatches a user's free-text message to the matching facade
// operation and renders the reply.
type Processor struct {
	facade *services.Facade
	parser *parser.Parser
}

// NewProcessor creates a Processor. A nil parser defaults to the built-in
// pattern set.
func NewProcessor(facade *services.Facade, p *parser.Parser) *Processor {
	if p == nil {
		p = parser.New()
	}
	return &Processor{facade: facade, parser: p}
}

// Process parses the text and executes the matching operation, returning the
// reply to show the user. Unrecognized text yields the fixed help message.
// The error is non-nil only for storage faults; the transport layer logs it
// and replies with a generic apology.
func (p *Processor) Process(userID, text string) (string, error) {
	intent, ok := p.parser.Parse(strings.TrimSpace(text))
	if !ok {
		return helpMessage, nil
	}

	switch intent.Action {
	case parser.ActionExpense:
		_, msg, err := p.facade.RecordExpense(userID, intent.Category, float64(intent.Amount), intent.Memo)
		return msg, err
	case parser.ActionIncome:
		_, msg, err := p.facade.RecordIncome(userID, intent.Category, float64(intent.Amount), intent.Memo)
		return msg, err
	case parser.ActionView:
		return p.viewBudget(userID, intent.Category)
	}
	return helpMessage, nil
}

func (p *Processor) viewBudget(userID, category string) (string, error) {
	category = models.NormalizeCategory(category)
	summaries, err := p.facade.Summary(userID)
	if err != nil {
		return "", err
	}

	for _, s := range summaries {
		if s.Category != category {
			continue
		}
		return fmt.Sprintf("📊 Presupuesto %s:\n"+
			"💰 Saldo: $%s\n"+
			"📅 Periodicidad: %s\n"+
			"📈 Usado: %.1f%%",
			capitalize(category),
			services.FormatAmount(s.Balance),
			s.Periodicity,
			s.UsedPercentage(),
		), nil
	}
	return fmt.Sprintf("⚠️ No se encontró presupuesto '%s'", category), nil
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
