package breakeven

import (
	"fmt"
	"strings"
)

// FormatResult renders a solver result for the console.
func FormatResult(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	switch result.Target {
	case TargetExpenses:
		if result.Success {
			sb.WriteString(fmt.Sprintf("Sustainable monthly spending: %s man-won\n", result.SustainableExpenses.StringFixed(0)))
			sb.WriteString(fmt.Sprintf("Net worth at 90 at that level: %s man-won\n", result.NetWorthAt90.Round(0)))
		} else {
			sb.WriteString("No sustainable spending level found.\n")
		}
	case TargetRetirementAge:
		if result.Success {
			sb.WriteString(fmt.Sprintf("Earliest survivable retirement age: %d\n", result.EarliestRetirementAge))
			sb.WriteString(fmt.Sprintf("Net worth at 90 retiring then: %s man-won\n", result.NetWorthAt90.Round(0)))
		} else {
			sb.WriteString("No retirement age keeps the plan solvent to 90.\n")
		}
	}

	if result.Iterations > 0 {
		sb.WriteString(fmt.Sprintf("Probes: %d\n", result.Iterations))
	}
	if result.ConvergenceInfo != "" {
		sb.WriteString(result.ConvergenceInfo + "\n")
	}

	return sb.String()
}
