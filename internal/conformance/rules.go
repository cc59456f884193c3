// Package conformance checks submitted markup for structural validity and
// reports findings as severity-tagged diagnostics.
package conformance

import (
	"sort"

	"github.com/jonathan/html-autograder/internal/types"
)

// Rule identifies a single structural check
type Rule string

const (
	RulePermittedContent   Rule = "element-permitted-content"
	RulePermittedOrder     Rule = "element-permitted-order"
	RuleCloseOrder         Rule = "close-order"
	RuleNoImplicitClose    Rule = "no-implicit-close"
	RuleVoidStyle          Rule = "void-style"
	RuleTrailingWhitespace Rule = "no-trailing-whitespace"
	RuleMissingDoctype     Rule = "missing-doctype"
	RuleNoDupID            Rule = "no-dup-id"
	RuleDeprecated         Rule = "deprecated"
)

// Level is the configured severity of a rule
type Level int

const (
	LevelOff Level = iota
	LevelWarn
	LevelError
)

// Config maps each rule to its level. Rules missing from the map are off.
type Config map[Rule]Level

// AllRules returns every rule the checker knows, in a stable order
func AllRules() []Rule {
	return []Rule{
		RulePermittedContent,
		RulePermittedOrder,
		RuleCloseOrder,
		RuleNoImplicitClose,
		RuleVoidStyle,
		RuleTrailingWhitespace,
		RuleMissingDoctype,
		RuleNoDupID,
		RuleDeprecated,
	}
}

// DefaultConfig enables every rule at warning level
func DefaultConfig() Config {
	cfg := make(Config, len(AllRules()))
	for _, r := range AllRules() {
		cfg[r] = LevelWarn
	}
	return cfg
}

// GradingConfig is the fixed configuration used for scoring: structural
// violations are errors, cosmetic checks are disabled.
func GradingConfig() Config {
	cfg := DefaultConfig()
	cfg[RulePermittedContent] = LevelError
	cfg[RulePermittedOrder] = LevelError
	cfg[RuleCloseOrder] = LevelError
	cfg[RuleNoImplicitClose] = LevelError
	cfg[RuleVoidStyle] = LevelOff
	cfg[RuleTrailingWhitespace] = LevelOff
	cfg[RuleMissingDoctype] = LevelOff
	return cfg
}

// AuditConfig keeps the grading severities and turns the cosmetic checks back on
// as warnings, so a student sees everything the grader sees and more.
func AuditConfig() Config {
	cfg := GradingConfig()
	cfg[RuleVoidStyle] = LevelWarn
	cfg[RuleTrailingWhitespace] = LevelWarn
	cfg[RuleMissingDoctype] = LevelWarn
	return cfg
}

// Enabled reports whether rule r produces diagnostics
func (c Config) Enabled(r Rule) bool {
	return c[r] != LevelOff
}

func (c Config) severity(r Rule) types.Severity {
	if c[r] == LevelError {
		return types.SeverityError
	}
	return types.SeverityWarning
}

func sortByOffset(diags []types.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Offset < diags[j].Offset
	})
}
