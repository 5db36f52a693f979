package checker

import (
	"codecritic/src/config"
	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/service/fix"
	"codecritic/src/util"
)

// Runner executes the checkers in their fixed order and resolves a fix for
// every raw finding before it leaves this package. The order is syntax,
// runtime, logical, security; findings are appended in that order and never
// de-duplicated, so the same condition can legitimately surface from more
// than one checker.
type Runner struct {
	checkers []Checker
	synth    *fix.Synthesizer
}

// NewRunner creates a runner with all checkers registered
func NewRunner(cfg config.CheckersConfig, synth *fix.Synthesizer) *Runner {
	checkers := []Checker{
		NewSyntaxChecker(cfg.Syntax),
		NewRuntimeChecker(cfg.Runtime),
		NewLogicalChecker(cfg.Logical),
		NewSecurityChecker(cfg.Security),
	}

	util.Debug("Checker runner initialized with %d checkers", len(checkers))
	for _, c := range checkers {
		status := "disabled"
		if c.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", c.Name(), status)
	}

	return &Runner{
		checkers: checkers,
		synth:    synth,
	}
}

// Run executes all enabled checkers against one scanned unit
func (r *Runner) Run(src *scanner.Source, lang model.Language) []model.Finding {
	var findings []model.Finding

	for _, c := range r.checkers {
		if !c.IsEnabled() {
			util.Debug("Skipping disabled checker: %s", c.Name())
			continue
		}

		raws := c.Check(src, lang)
		util.Debug("Checker %s found %d findings", c.Name(), len(raws))

		for _, raw := range raws {
			findings = append(findings, model.Finding{
				Type:    raw.Type,
				Message: raw.Message,
				Line:    raw.Line,
				Fix:     r.synth.Resolve(raw.Type, lang, raw.Message, raw.FixHint),
			})
		}
	}

	return findings
}

// ListCheckers returns names of all registered checkers in execution order
func (r *Runner) ListCheckers() []string {
	names := make([]string, len(r.checkers))
	for i, c := range r.checkers {
		names[i] = c.Name()
	}
	return names
}
