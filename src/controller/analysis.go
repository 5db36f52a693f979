package controller

import (
	"context"
	"sync"
	"time"

	"codecritic/src/catalog"
	"codecritic/src/config"
	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/service/checker"
	"codecritic/src/service/fix"
	"codecritic/src/service/metrics"
	"codecritic/src/service/suggest"
	"codecritic/src/util"
)

// AnalysisController orchestrates one analysis pass: scanner, checkers with
// fix synthesis, metrics, suggestions, best practices, assembled into a
// Report. It is the engine's single public entry point; everything it holds
// after construction is read-only, so concurrent Analyze calls need no
// coordination.
type AnalysisController struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	runner    *checker.Runner
	calc      *metrics.Calculator
	suggester *suggest.Generator
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	cat := catalog.Default()
	return &AnalysisController{
		cfg:       cfg,
		catalog:   cat,
		runner:    checker.NewRunner(cfg.Checkers, fix.NewSynthesizer(cat)),
		calc:      metrics.NewCalculator(cfg.Metrics),
		suggester: suggest.NewGenerator(),
	}
}

// AnalyzeRequest represents one unit of source text to analyze
type AnalyzeRequest struct {
	Code     string
	Language string
}

// Analyze runs the full pipeline over one unit. It is synchronous,
// deterministic and never fails for well-formed input; unrecognized
// languages simply restrict the pass to language-agnostic rules.
func (c *AnalysisController) Analyze(req AnalyzeRequest) *model.Report {
	startTime := time.Now()
	lang := model.ParseLanguage(req.Language)
	util.Debug("Starting analysis (language: %s)", req.Language)

	src := scanner.Scan(req.Code)

	findings := c.runner.Run(src, lang)
	if findings == nil {
		findings = []model.Finding{}
	}

	suggestions := c.suggester.Generate(src, lang)
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	report := &model.Report{
		CodeAnalysis:  c.calc.CodeAnalysis(src, req.Language, lang),
		Suggestions:   suggestions,
		BestPractices: c.catalog.BestPracticesFor(lang),
		Metrics:       c.calc.Scores(src),
		Debugging: model.Debugging{
			Bugs:     findings,
			BugCount: len(findings),
			BugTypes: model.CountBugTypes(findings),
		},
	}

	util.Info("Analysis complete: %d findings, %d suggestions (took %v)",
		report.Debugging.BugCount, len(report.Suggestions), time.Since(startTime))

	return report
}

// AnalyzeBatch analyzes independent units concurrently, bounded by the
// configured parallelism. Output order equals input order. The context
// aborts units not yet started; units already running finish.
func (c *AnalysisController) AnalyzeBatch(ctx context.Context, reqs []AnalyzeRequest) ([]*model.Report, error) {
	maxParallel := c.cfg.Concurrency.MaxParallelAnalyses
	if maxParallel <= 0 {
		maxParallel = 1
	}

	util.Debug("Running batch analysis for %d units (max parallel: %d)", len(reqs), maxParallel)

	var (
		reports = make([]*model.Report, len(reqs))
		wg      sync.WaitGroup
		sem     = make(chan struct{}, maxParallel)
	)

	for i, req := range reqs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(i int, req AnalyzeRequest) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			reports[i] = c.Analyze(req)
		}(i, req)
	}

	wg.Wait()
	return reports, nil
}
