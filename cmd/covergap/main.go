package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/covergap/covergap/internal/breakeven"
	"github.com/covergap/covergap/internal/calculation"
	"github.com/covergap/covergap/internal/compare"
	"github.com/covergap/covergap/internal/config"
	"github.com/covergap/covergap/internal/domain"
	"github.com/covergap/covergap/internal/output"
	"github.com/covergap/covergap/internal/recorder"
	"github.com/covergap/covergap/internal/server"
	"github.com/covergap/covergap/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "covergap",
	Short: "Insurance gap analysis and retirement projection CLI",
	Long:  "Analyzes insurance coverage against age and gender standards, scores gaps, flags over-coverage, and projects retirement net worth.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "covergap %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadProfile parses and validates the input file shared by most commands.
func loadProfile(inputFile string) (*domain.Profile, error) {
	parser := config.NewInputParser()
	return parser.LoadFromFile(inputFile)
}

// newEngine builds the analysis engine, honoring the --debug flag.
func newEngine(cmd *cobra.Command) *calculation.AnalysisEngine {
	engine := calculation.NewAnalysisEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

// openRecorder picks SQLite when --history points at a database file.
func openRecorder(cmd *cobra.Command) (recorder.Recorder, error) {
	historyPath, _ := cmd.Flags().GetString("history")
	if historyPath == "" {
		return recorder.NewNoopRecorder(), nil
	}
	return recorder.NewSQLiteRecorder(historyPath)
}

func runAnalysis(cmd *cobra.Command, inputFile string, mode domain.Mode) {
	profile, err := loadProfile(inputFile)
	if err != nil {
		log.Fatal(err)
	}

	engine := newEngine(cmd)
	report, err := engine.RunAnalysis(context.Background(), profile, mode)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := openRecorder(cmd)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	snap := &recorder.RunSnapshot{
		UserName: profile.User.Name,
		Age:      profile.User.Age,
		Gender:   profile.User.Gender,
		Mode:     mode,
		Score:    int64(report.Analysis.Score),
		GapCount: report.Analysis.GapCount,
		Risks:    report.HealthRisks,
		Report:   report,
	}
	if err := rec.RecordRun(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}

	outputFormat, _ := cmd.Flags().GetString("format")
	gen := output.NewReportGenerator()
	if err := gen.GenerateReport(report, outputFormat); err != nil {
		log.Fatal(err)
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run the insurance gap analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalysis(cmd, args[0], domain.ModeInsurance)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [input-file]",
	Short: "Run the finance-mode analysis with the savings action plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalysis(cmd, args[0], domain.ModeFinance)
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project net worth from now to age 90",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile, err := loadProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if profile.Finance == nil {
			log.Fatal("input file has no finance section to project")
		}

		points := calculation.ProjectNetWorth(*profile.Finance)
		for _, p := range points {
			marker := ""
			if len(p.TriggeredEvents) > 0 {
				marker = fmt.Sprintf("  <- %v", p.TriggeredEvents)
			}
			fmt.Printf("age %3d  %s%s\n", p.Age, output.FormatManwon(p.NetWorth), marker)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the base plan against built-in what-if templates",
	Long: `Compare the profile's finance plan against alternative strategies.

Examples:
  covergap compare profile.yaml --with postpone_1yr,spend_less_10
  covergap compare profile.yaml --with retire_60 --format csv
  covergap compare profile.yaml --list-templates
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := compare.NewCompareEngine()

		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Println("Available templates:")
			for _, name := range engine.TemplateRegistry.List() {
				t, _ := engine.TemplateRegistry.Get(name)
				fmt.Printf("  %-20s %s\n", name, t.Description)
			}
			return
		}

		if len(args) == 0 {
			log.Fatal("input file required unless --list-templates is set")
		}
		profile, err := loadProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if profile.Finance == nil {
			log.Fatal("input file has no finance section to compare")
		}

		with, _ := cmd.Flags().GetString("with")
		var templates []string
		if with != "" {
			templates = strings.Split(with, ",")
		}

		set, err := engine.Compare(profile.Finance, compare.CompareOptions{
			BaseName:  profile.Finance.Name,
			Templates: templates,
		})
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Print((&compare.TableFormatter{}).Format(set))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unsupported format: %s", format)
		}
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [input-file]",
	Short: "Solve for sustainable spending or the earliest retirement age",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile, err := loadProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if profile.Finance == nil {
			log.Fatal("input file has no finance section to solve against")
		}

		targetStr, _ := cmd.Flags().GetString("target")
		solver := breakeven.NewDefaultSolver()
		result, err := solver.Solve(context.Background(), breakeven.Request{
			Target: breakeven.Target(targetStr),
			Base:   profile.Finance,
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(breakeven.FormatResult(result))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := loadProfile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Profile file %s is valid\n", args[0])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analysis runs from the history database",
	Run: func(cmd *cobra.Command, args []string) {
		historyPath, _ := cmd.Flags().GetString("history")
		if historyPath == "" {
			log.Fatal("history requires --history pointing at a database file")
		}
		rec, err := recorder.NewSQLiteRecorder(historyPath)
		if err != nil {
			log.Fatal(err)
		}
		defer rec.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := rec.RecentRuns(limit)
		if err != nil {
			log.Fatal(err)
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs")
			return
		}
		for _, r := range runs {
			fmt.Printf("#%d  %s (%d, %s)  mode=%s  score=%d  gaps=%d\n",
				r.ID, r.UserName, r.Age, r.Gender, r.Mode, r.Score, r.GapCount)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		rec, err := openRecorder(cmd)
		if err != nil {
			log.Fatal(err)
		}
		defer rec.Close()

		engine := newEngine(cmd)
		srv := server.NewServer(engine, rec, simpleCLILogger{})
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatal(err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Explore what-if scenarios interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		modeStr, _ := cmd.Flags().GetString("mode")
		mode := domain.Mode(modeStr)

		model := tui.NewModel(args[0], mode)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, planCmd} {
		c.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
		c.Flags().Bool("debug", false, "Enable debug output")
		c.Flags().String("history", "", "SQLite database file to record runs into")
	}
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available what-if templates")
	breakEvenCmd.Flags().String("target", string(breakeven.TargetExpenses),
		"What to solve for (expenses, retirement_age)")
	historyCmd.Flags().String("history", "", "SQLite database file to read")
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Bool("debug", false, "Enable debug output")
	serveCmd.Flags().String("history", "", "SQLite database file to record runs into")
	tuiCmd.Flags().String("mode", string(domain.ModeFinance), "Analysis mode (insurance, finance)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
