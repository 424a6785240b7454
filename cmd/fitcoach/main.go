package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"fitcoach"
	"fitcoach/agent"
	"fitcoach/export"
	"fitcoach/metrics"
	"fitcoach/prompt"
)

func main() {
	// Best effort: a missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "recommend":
		err = runRecommend(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [flags]

Commands:
  analyze    Analyze one FIT file (AI coaching text or technical report)
  compare    Compare several FIT files for trends
  recommend  Generate training recommendations from one FIT file
  export     Write the analysis bundle (report, summary, prompt, samples)

Run '%s <command> -h' for command flags.
`, prog, prog)
}

// athleteFlags registers the shared athlete profile flags on a flag set.
func athleteFlags(fs *flag.FlagSet) (age *int, weight, ftp *float64) {
	age = fs.Int("athlete-age", 0, "Athlete age in years (enables 220-age max HR)")
	weight = fs.Float64("athlete-weight", 0, "Athlete weight in kg (enables power-to-weight)")
	ftp = fs.Float64("athlete-ftp", 0, "Athlete FTP in watts (overrides the 250 W default)")
	return age, weight, ftp
}

func profileFrom(age int, weight, ftp float64) *metrics.AthleteProfile {
	if age == 0 && weight == 0 && ftp == 0 {
		return nil
	}
	return &metrics.AthleteProfile{AgeYears: age, WeightKG: weight, FTPWatts: ftp}
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	fitPath := fs.String("fit", "", "Path to input .fit file")
	analysisType := fs.String("type", "comprehensive", "Analysis type: comprehensive|summary|technical")
	output := fs.String("output", "", "Write the result to this file instead of stdout")
	age, weight, ftp := athleteFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*fitPath) == "" {
		fs.Usage()
		return fmt.Errorf("--fit is required")
	}

	kind, err := prompt.ParseAnalysisType(*analysisType)
	if err != nil {
		return err
	}

	res, err := fitcoach.AnalyzeFile(*fitPath, profileFrom(*age, *weight, *ftp))
	if err != nil {
		return err
	}

	summaryText := prompt.FormatSection("Activity Summary", prompt.ActivitySummary(res.Activity))
	analysisText := prompt.FormatReport("Detailed Analysis", res.Report)

	var out string
	switch kind {
	case prompt.TypeTechnical:
		out = fitcoach.Describe(res) + "\n" + summaryText + "\n" + analysisText
	default:
		var p string
		if kind == prompt.TypeSummary {
			p = prompt.Summary(summaryText)
		} else {
			p = prompt.Comprehensive(summaryText, analysisText)
		}
		resp, err := generate(p)
		if err != nil {
			return err
		}
		out = resp
	}

	return emit(*output, out)
}

func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	output := fs.String("output", "", "Write the result to this file instead of stdout")
	age, weight, ftp := athleteFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fitcoach compare [flags] file1.fit file2.fit ...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("at least two FIT files are required")
	}

	cmp, err := fitcoach.CompareFiles(fs.Args(), profileFrom(*age, *weight, *ftp))
	if err != nil {
		return err
	}
	for path, skipErr := range cmp.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", path, skipErr)
	}

	resp, err := generate(prompt.Comparative(cmp.Sections))
	if err != nil {
		return err
	}
	return emit(*output, resp)
}

func runRecommend(args []string) error {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	fitPath := fs.String("fit", "", "Path to input .fit file")
	output := fs.String("output", "", "Write the result to this file instead of stdout")
	age, weight, ftp := athleteFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*fitPath) == "" {
		fs.Usage()
		return fmt.Errorf("--fit is required")
	}

	res, err := fitcoach.AnalyzeFile(*fitPath, profileFrom(*age, *weight, *ftp))
	if err != nil {
		return err
	}

	analysisText := prompt.FormatReport("Activity Analysis", res.Report)
	resp, err := generate(prompt.Recommendations(analysisText))
	if err != nil {
		return err
	}
	return emit(*output, resp)
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fitPath := fs.String("fit", "", "Path to input .fit file")
	outDir := fs.String("out", "", "Output directory")
	format := fs.String("format", "parquet", "Canonical sample format: parquet|csv")
	overwrite := fs.Bool("overwrite", true, "Allow writing into non-empty output directories")
	age, weight, ftp := athleteFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*fitPath) == "" || strings.TrimSpace(*outDir) == "" {
		fs.Usage()
		return fmt.Errorf("--fit and --out are required")
	}

	res, err := fitcoach.AnalyzeFile(*fitPath, profileFrom(*age, *weight, *ftp))
	if err != nil {
		return err
	}

	summaryText := prompt.FormatSection("Activity Summary", prompt.ActivitySummary(res.Activity))
	analysisText := prompt.FormatReport("Detailed Analysis", res.Report)
	promptText := prompt.Comprehensive(summaryText, analysisText)

	bundle, err := export.Export(res.Activity, res.Report, promptText, export.Options{
		OutDir:    *outDir,
		Format:    *format,
		Overwrite: *overwrite,
	})
	if err != nil {
		return err
	}

	fmt.Printf("export complete\n")
	fmt.Printf("output dir:        %s\n", bundle.OutputDir)
	fmt.Printf("report:            %s\n", bundle.ReportPath)
	fmt.Printf("summary:           %s\n", bundle.SummaryPath)
	fmt.Printf("prompt:            %s\n", bundle.PromptPath)
	fmt.Printf("canonical samples: %s (%d rows)\n", bundle.SamplesPath, bundle.SampleCount)
	return nil
}

// generate runs one prompt against Gemini. Commands that reach this point
// require GEMINI_API_KEY.
func generate(p string) (string, error) {
	ctx := context.Background()
	coach, err := agent.New(ctx, agent.Options{})
	if err != nil {
		return "", err
	}
	defer coach.Close()

	resp, err := coach.Generate(ctx, p)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func emit(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
