package pricing

import (
	"fmt"
	"strconv"

	"github.com/nulzo/modeldocs/pkg/schema"
)

// Quota types used by the gateway's pricing table.
const (
	QuotaTypeTokenRatio = 0
	QuotaTypePerRequest = 1
)

// BaseUnit is the dollar value of one full ratio unit per million tokens.
// Ratio 1.0 = $2/M tokens, the standard one-api base unit.
const BaseUnit = 2.0

// FormatPrice renders a dollar amount for the pricing table. Sub-cent values
// keep four decimal places so cheap models do not round to zero.
func FormatPrice(value float64) string {
	if value == 0 {
		return "Free"
	}
	if value < 0.01 {
		return fmt.Sprintf("$%.4f", value)
	}
	return fmt.Sprintf("$%.2f", value)
}

// Index looks up pricing records by model name. When the upstream table
// repeats a model name, the later record wins.
type Index map[string]schema.ModelPricing

func NewIndex(records []schema.ModelPricing) Index {
	idx := make(Index, len(records))
	for _, rec := range records {
		idx[rec.ModelName] = rec
	}
	return idx
}

// Labels derives the input and output price labels for a model. Models with
// no pricing record fall through to token-ratio pricing with a zero ratio,
// which formats as free.
func (idx Index) Labels(modelID string) (input, output string) {
	rec := idx[modelID]

	if rec.QuotaType == QuotaTypePerRequest {
		if rec.ModelPrice > 0 {
			return "$" + strconv.FormatFloat(rec.ModelPrice, 'f', -1, 64) + "/req", "-"
		}
		return "Free", "-"
	}

	completionRatio := rec.CompletionRatio
	if completionRatio == 0 {
		completionRatio = 1
	}

	inputPrice := rec.ModelRatio * BaseUnit
	outputPrice := rec.ModelRatio * completionRatio * BaseUnit
	return FormatPrice(inputPrice), FormatPrice(outputPrice)
}
