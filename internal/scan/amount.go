package scan

import (
	"strconv"
	"strings"

	"github.com/aquabill/statement-reconciler/internal/models"
)

var amountStripper = strings.NewReplacer(",", "", " ", "", " ", "")

// ParseAmount parses a monetary cell after stripping thousands separators.
// Non-numeric text is kept verbatim in Raw with Valid=false — it is never
// dropped, so the caller can still display or export it.
func ParseAmount(raw string) models.Amount {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(amountStripper.Replace(trimmed), 64)
	if err != nil {
		return models.Amount{Raw: raw}
	}
	return models.Amount{Value: v, Valid: true}
}
