package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportGenerator renders analysis reports in various formats.
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a generator writing to stdout.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Out: os.Stdout}
}

// GenerateReport renders a report in the specified format.
func (rg *ReportGenerator) GenerateReport(report *domain.AnalysisReport, format string) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	switch format {
	case "console":
		return rg.generateConsoleReport(report)
	case "json":
		return rg.generateJSONReport(report)
	case "csv":
		return rg.generateCSVReport(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) generateConsoleReport(report *domain.AnalysisReport) error {
	w := rg.Out

	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "COVERAGE GAP ANALYSIS: %s\n", report.GeneratedFor)
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Overall score: %d / 100  (gapped categories: %d of 5)\n", report.Analysis.Score, report.Analysis.GapCount)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RECOMMENDED STANDARD")
	fmt.Fprintln(w, "--------------------")
	for _, cat := range domain.Categories() {
		fmt.Fprintf(w, "%-8s %s\n", cat, FormatManwon(report.Standard.Amount(cat)))
	}
	fmt.Fprintln(w)

	if len(report.HealthRisks) > 0 {
		fmt.Fprintln(w, "HEALTH RISK FINDINGS")
		fmt.Fprintln(w, "--------------------")
		for _, risk := range report.HealthRisks {
			fmt.Fprintf(w, "%-8s %3d/100  %s\n", risk.Category, risk.RiskLevel, risk.Reason)
		}
		fmt.Fprintln(w)
	}

	if len(report.DietAdvice) > 0 {
		fmt.Fprintln(w, "COVERAGE DIET RECOMMENDATIONS")
		fmt.Fprintln(w, "-----------------------------")
		for _, rec := range report.DietAdvice {
			fmt.Fprintf(w, "%-8s [%s] %s -> %s (save ~%s KRW/month)\n",
				rec.Category, rec.Priority, FormatManwon(rec.CurrentAmount), FormatManwon(rec.TargetAmount), rec.SavingsPotential)
			fmt.Fprintf(w, "         %s\n", rec.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "LIFE STAGE: %s\n", report.LifeStage.Title)
	fmt.Fprintf(w, "%s\n", report.LifeStage.Advice)
	for _, p := range report.LifeStage.Priorities {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	fmt.Fprintln(w)

	if len(report.PolicyRisks) > 0 {
		fmt.Fprintln(w, "POLICY CLAUSE FINDINGS")
		fmt.Fprintln(w, "----------------------")
		for _, pr := range report.PolicyRisks {
			fmt.Fprintf(w, "[%s] %s\n", pr.Level, pr.Title)
			fmt.Fprintf(w, "       %s\n", pr.Description)
		}
		fmt.Fprintln(w)
	}

	rg.printPlanBucket(w, "SHORT TERM (3 months)", report.Plan.ShortTerm)
	rg.printPlanBucket(w, "MID TERM (1 year)", report.Plan.MidTerm)
	rg.printPlanBucket(w, "LONG TERM", report.Plan.LongTerm)

	if bm := report.Benchmark.Insurance; bm != nil {
		fmt.Fprintln(w, "MARKET BENCHMARK (insurance)")
		fmt.Fprintln(w, "----------------------------")
		fmt.Fprintf(w, "%-8s %12s %12s\n", "category", "average", "top 10%")
		for _, cat := range domain.Categories() {
			fmt.Fprintf(w, "%-8s %12s %12s\n", cat, FormatManwon(bm.Average.Amount(cat)), FormatManwon(bm.Top10.Amount(cat)))
		}
		fmt.Fprintln(w)
	}
	if bm := report.Benchmark.Finance; bm != nil {
		fmt.Fprintln(w, "MARKET BENCHMARK (finance)")
		fmt.Fprintln(w, "--------------------------")
		fmt.Fprintf(w, "average:  assets %s, savings %s/month (%s)\n",
			FormatManwon(bm.Average.TotalAssets), FormatManwon(bm.Average.MonthlySavings), FormatPercentage(bm.Average.SavingsRatePct))
		fmt.Fprintf(w, "top 10%%:  assets %s, savings %s/month (%s)\n",
			FormatManwon(bm.Top10.TotalAssets), FormatManwon(bm.Top10.MonthlySavings), FormatPercentage(bm.Top10.SavingsRatePct))
		fmt.Fprintln(w)
	}

	if fh := report.Financial; fh != nil {
		fmt.Fprintln(w, "FINANCIAL HEALTH")
		fmt.Fprintln(w, "----------------")
		fmt.Fprintf(w, "Savings rate: %s\n", FormatPercentage(fh.SavingsRate))
		if fh.FreedomReached {
			fmt.Fprintf(w, "Financial freedom (4%% rule, target %s): around age %d\n", FormatManwon(fh.TargetNetWorth), fh.FreedomAge)
		} else {
			fmt.Fprintf(w, "Financial freedom (4%% rule, target %s): not reached by 100 at current pace\n", FormatManwon(fh.TargetNetWorth))
		}
		fmt.Fprintf(w, "Allocation: %s\n", fh.AllocationAdvice)
		fmt.Fprintf(w, "Savings:    %s\n", fh.SavingsAdvice)
		fmt.Fprintln(w)
	}

	if len(report.Projection) > 0 {
		fmt.Fprintln(w, "NET WORTH PROJECTION (real, inflation-adjusted)")
		fmt.Fprintln(w, "-----------------------------------------------")
		for _, p := range report.Projection {
			marker := ""
			if len(p.TriggeredEvents) > 0 {
				marker = "  <- " + strings.Join(p.TriggeredEvents, ", ")
			}
			fmt.Fprintf(w, "age %3d  %14s%s\n", p.Age, FormatManwon(p.NetWorth), marker)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func (rg *ReportGenerator) printPlanBucket(w io.Writer, title string, recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	for _, rec := range recs {
		fmt.Fprintf(w, "[%s] %s\n", rec.Priority, rec.Title)
		fmt.Fprintf(w, "       %s\n", rec.Description)
	}
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) generateJSONReport(report *domain.AnalysisReport) error {
	enc := json.NewEncoder(rg.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// generateCSVReport emits the projection series as CSV, one row per
// sampled age, for spreadsheet charting.
func (rg *ReportGenerator) generateCSVReport(report *domain.AnalysisReport) error {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Age", "NetWorth", "TriggeredEvents"}); err != nil {
		return err
	}
	for _, p := range report.Projection {
		row := []string{
			strconv.Itoa(p.Age),
			p.NetWorth.StringFixed(0),
			strings.Join(p.TriggeredEvents, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	_, err := rg.Out.Write(buf.Bytes())
	return err
}

// FormatManwon formats a man-won amount with thousands separators.
func FormatManwon(amount decimal.Decimal) string {
	s := amount.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out + " man-won"
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
