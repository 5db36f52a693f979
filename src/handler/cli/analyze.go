package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"codecritic/src/controller"
	"codecritic/src/util"
)

// languageByExtension maps file extensions to declared languages
var languageByExtension = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".py":   "python",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
}

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		language  string
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze source files for defects, metrics and suggestions",
		Long: "Runs the analysis engine over each file (or stdin when no files are given) " +
			"and renders a quality report per unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			reqs, names, err := h.collectUnits(args, language)
			if err != nil {
				return err
			}

			util.Info("Analyzing %d units", len(reqs))

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			reports, err := analysisCtrl.AnalyzeBatch(ctx, reqs)
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if format != "" {
				h.cfg.Output.Formats = []string{format}
			}

			totalBugs := 0
			for i, r := range reports {
				totalBugs += r.Debugging.BugCount

				if outputDir != "" {
					h.cfg.Output.OutputDir = outputDir
					paths, err := reportCtrl.GenerateReports(names[i], r)
					if err != nil {
						return fmt.Errorf("generating reports: %w", err)
					}
					for _, path := range paths {
						fmt.Printf("Report written to %s\n", path)
					}
					continue
				}

				outputFormat := format
				if outputFormat == "" {
					outputFormat = h.cfg.Output.Formats[0]
				}
				output, err := reportCtrl.GenerateToString(r, outputFormat)
				if err != nil {
					return fmt.Errorf("rendering report: %w", err)
				}
				fmt.Println(output)
			}

			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Units analyzed: %d\n", len(reports))
			fmt.Fprintf(os.Stderr, "  Total bugs: %d\n", totalBugs)

			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Declared source language (inferred from extension when omitted)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, sarif, text)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Analysis timeout")

	return cmd
}

// collectUnits reads the analysis inputs: one unit per file argument, or a
// single unit from stdin when no files are given
func (h *Handler) collectUnits(args []string, language string) ([]controller.AnalyzeRequest, []string, error) {
	if len(args) == 0 {
		if language == "" {
			return nil, nil, fmt.Errorf("--language is required when reading from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []controller.AnalyzeRequest{{Code: string(data), Language: language}}, []string{"stdin"}, nil
	}

	var reqs []controller.AnalyzeRequest
	var names []string
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}

		lang := language
		if lang == "" {
			ext := strings.ToLower(filepath.Ext(path))
			lang = languageByExtension[ext]
			if lang == "" {
				util.Warn("Unknown extension %q; only language-agnostic checks will run", ext)
				lang = "unknown"
			}
		}

		reqs = append(reqs, controller.AnalyzeRequest{Code: string(data), Language: lang})
		names = append(names, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return reqs, names, nil
}
