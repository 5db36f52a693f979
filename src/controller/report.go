package controller

import (
	"os"
	"path/filepath"

	"codecritic/src/config"
	"codecritic/src/model"
	"codecritic/src/service/report"
	"codecritic/src/util"
)

// ReportController handles report rendering and file output
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports renders the report in all configured formats and writes
// one file per format under the output directory
func (c *ReportController) GenerateReports(name string, r *model.Report) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(r, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(name, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString renders the report in one format
func (c *ReportController) GenerateToString(r *model.Report, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(r, format)
}

func (c *ReportController) getOutputPath(name, format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	case "sarif":
		ext = "sarif.json"
	}

	filename := name + "-review." + ext
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
