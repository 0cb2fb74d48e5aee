package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Retirement Age",
		"Net Worth At Retirement",
		"Net Worth At 90",
		"Freedom Age",
		"Freedom Reached",
		"Savings Rate %",
		"Net Worth Diff From Base",
		"Net Worth % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		fmt.Sprintf("%d", result.RetirementAge),
		result.NetWorthAtRetirement.StringFixed(0),
		result.NetWorthAt90.StringFixed(0),
		fmt.Sprintf("%d", result.FreedomAge),
		fmt.Sprintf("%t", result.FreedomReached),
		result.SavingsRate.StringFixed(1),
		result.NetWorthDiffFromBase.StringFixed(0),
		result.NetWorthPctFromBase.StringFixed(2),
	}
}
