package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("WHAT-IF SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 86) + "\n")
	sb.WriteString(fmt.Sprintf("Base scenario: %s\n", compSet.BaseResult.ScenarioName))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Retire at",
		numWidth, "At retirement",
		numWidth, "At age 90",
		numWidth, "Freedom age"))
	sb.WriteString(strings.Repeat("-", 86) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth))
		}
	}
	sb.WriteString(strings.Repeat("=", 86) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, alt := range compSet.AlternativeResults {
			symbol := tf.deltaSymbol(alt.NetWorthDiffFromBase)
			sb.WriteString(fmt.Sprintf("%-*s net worth at 90: %s%s man-won (%s%%)\n",
				nameWidth, alt.ScenarioName,
				symbol,
				alt.NetWorthDiffFromBase.Abs().Round(0),
				alt.NetWorthPctFromBase.StringFixed(1)))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int) string {
	freedom := "not reached"
	if r.FreedomReached {
		freedom = fmt.Sprintf("%d", r.FreedomAge)
	}
	return fmt.Sprintf("%-*s %*d %*s %*s %*s\n",
		nameWidth, r.ScenarioName,
		numWidth, r.RetirementAge,
		numWidth, r.NetWorthAtRetirement.Round(0).String(),
		numWidth, r.NetWorthAt90.Round(0).String(),
		numWidth, freedom)
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
