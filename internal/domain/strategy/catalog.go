package strategy

import "github.com/remedykit/remedy/internal/domain"

// builtinCatalog returns the strategy descriptors in registration order.
// Registration order is the tie-break in selection, so entries must not
// be reordered casually.
//
// high_complexity and eval_usage deliberately have no strategy here:
// restructuring a function or removing an eval cannot be done safely at
// the text level, so those issues always route to the manual bucket.
func builtinCatalog() []*domain.FixStrategy {
	return []*domain.FixStrategy{
		{
			ID:         "remove-console-log",
			Name:       "Remove console.log statements",
			AppliesTo:  []string{"console_log_in_production"},
			Confidence: 0.95,
			Complexity: domain.ComplexitySimple,
			Transform:  removeConsoleLog,
		},
		{
			ID:         "remove-debugger",
			Name:       "Remove debugger statements",
			AppliesTo:  []string{"debugger_statement"},
			Confidence: 0.95,
			Complexity: domain.ComplexitySimple,
			Transform:  removeDebugger,
		},
		{
			ID:         "modernize-var",
			Name:       "Replace var declarations with let",
			AppliesTo:  []string{"var_declaration"},
			Confidence: 0.9,
			Complexity: domain.ComplexitySimple,
			Transform:  modernizeVar,
		},
		{
			ID:         "strict-equality",
			Name:       "Use strict equality operators",
			AppliesTo:  []string{"loose_equality"},
			Confidence: 0.85,
			Complexity: domain.ComplexityMedium,
			Transform:  strictEquality,
		},
		{
			ID:         "log-empty-catch",
			Name:       "Log the error in empty catch blocks",
			AppliesTo:  []string{"empty_catch_block"},
			Confidence: 0.8,
			Complexity: domain.ComplexityMedium,
			Transform:  logEmptyCatch,
		},
		{
			ID:         "env-extract-secret",
			Name:       "Move hardcoded secrets to environment variables",
			AppliesTo:  []string{"hardcoded_secret"},
			Confidence: 0.7,
			Complexity: domain.ComplexityMedium,
			Transform:  extractSecret,
		},
		{
			ID:         "upgrade-weak-hash",
			Name:       "Upgrade weak hash algorithms to SHA-256",
			AppliesTo:  []string{"weak_hash_algorithm"},
			Confidence: 0.85,
			Complexity: domain.ComplexitySimple,
			Transform:  upgradeWeakHash,
		},
		{
			ID:         "grow-rsa-modulus",
			Name:       "Grow undersized RSA moduli to 4096 bits",
			AppliesTo:  []string{"small_rsa_modulus"},
			Confidence: 0.65,
			Complexity: domain.ComplexityMedium,
			Transform:  growRSAModulus,
		},
		{
			ID:         "trim-trailing-whitespace",
			Name:       "Trim trailing whitespace",
			AppliesTo:  []string{"trailing_whitespace"},
			Confidence: 0.9,
			Complexity: domain.ComplexitySimple,
			Transform:  trimTrailingWhitespace,
		},
		{
			ID:         "annotate-todo",
			Name:       "Mark untracked TODO comments for triage",
			AppliesTo:  []string{"todo_comment"},
			Confidence: 0.5,
			Complexity: domain.ComplexitySimple,
			Transform:  annotateTodo,
		},
	}
}
