package strategy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/remedykit/remedy/internal/domain"
)

// All transforms are line-oriented: they split the buffer, rewrite or drop
// individual lines, and rejoin. Line numbers in FixChange entries are
// 1-based and refer to the input text.

func splitLines(text string) []string { return strings.Split(text, "\n") }
func joinLines(ls []string) string    { return strings.Join(ls, "\n") }

func noMatch(text, explanation string) domain.FixResult {
	return domain.FixResult{
		Success:      false,
		OriginalText: text,
		FixedText:    text,
		Explanation:  explanation,
	}
}

func applied(original, fixed string, changes []domain.FixChange, explanation string, warnings ...string) domain.FixResult {
	return domain.FixResult{
		Success:      true,
		OriginalText: original,
		FixedText:    fixed,
		Changes:      changes,
		Explanation:  explanation,
		Warnings:     warnings,
	}
}

var consoleLogRe = regexp.MustCompile(`\bconsole\.log\s*\(`)

func removeConsoleLog(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	out := make([]string, 0, len(ls))
	var changes []domain.FixChange
	for i, line := range ls {
		if consoleLogRe.MatchString(line) && !strings.HasPrefix(strings.TrimSpace(line), "//") {
			changes = append(changes, domain.FixChange{
				Kind:        domain.ChangeRemove,
				LineNumber:  i + 1,
				Before:      line,
				Description: "removed console.log statement",
			})
			continue
		}
		out = append(out, line)
	}
	if len(changes) == 0 {
		return noMatch(text, "no console.log statements found")
	}
	return applied(text, joinLines(out), changes,
		fmt.Sprintf("removed %d console.log statement(s)", len(changes)))
}

func removeDebugger(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	out := make([]string, 0, len(ls))
	var changes []domain.FixChange
	for i, line := range ls {
		trimmed := strings.TrimSpace(line)
		if trimmed == "debugger" || trimmed == "debugger;" {
			changes = append(changes, domain.FixChange{
				Kind:        domain.ChangeRemove,
				LineNumber:  i + 1,
				Before:      line,
				Description: "removed debugger statement",
			})
			continue
		}
		out = append(out, line)
	}
	if len(changes) == 0 {
		return noMatch(text, "no debugger statements found")
	}
	return applied(text, joinLines(out), changes,
		fmt.Sprintf("removed %d debugger statement(s)", len(changes)))
}

var varDeclRe = regexp.MustCompile(`^(\s*)var(\s+)`)

func modernizeVar(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !varDeclRe.MatchString(line) {
			continue
		}
		next := varDeclRe.ReplaceAllString(line, "${1}let${2}")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "replaced var with let",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no var declarations found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("modernized %d var declaration(s)", len(changes)))
}

// strictifyLine upgrades loose equality operators on one line. Existing
// strict operators and the <=, >=, => forms are shielded with placeholder
// bytes so the loose replacements cannot touch them.
func strictifyLine(line string) string {
	shields := [][2]string{
		{"===", "\x00A"},
		{"!==", "\x00B"},
		{"<=", "\x00C"},
		{">=", "\x00D"},
		{"=>", "\x00E"},
	}
	s := line
	for _, sh := range shields {
		s = strings.ReplaceAll(s, sh[0], sh[1])
	}
	s = strings.ReplaceAll(s, "==", "===")
	s = strings.ReplaceAll(s, "!=", "!==")
	for _, sh := range shields {
		s = strings.ReplaceAll(s, sh[1], sh[0])
	}
	return s
}

func strictEquality(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		next := strictifyLine(line)
		if next == line {
			continue
		}
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "upgraded loose equality to strict",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no loose equality operators found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("upgraded %d line(s) to strict equality", len(changes)))
}

var emptyCatchRe = regexp.MustCompile(`catch\s*\(\s*([A-Za-z_$][\w$]*)\s*\)\s*\{\s*\}`)

func logEmptyCatch(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !emptyCatchRe.MatchString(line) {
			continue
		}
		next := emptyCatchRe.ReplaceAllString(line, "catch ($1) { console.error($1); }")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "logged the swallowed error",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no single-line empty catch blocks found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("added error logging to %d empty catch block(s)", len(changes)))
}

var (
	secretAssignRe = regexp.MustCompile(`^(\s*(?:const|let|var)\s+)([A-Za-z_$][\w$]*)(\s*=\s*)(["'])(?:[^"'\\]|\\.)+(["'])(.*)$`)
	secretNameRe   = regexp.MustCompile(`(?i)(key|secret|password|passwd|token|credential)`)
)

// envVarName turns an identifier like apiKey into API_KEY.
func envVarName(ident string) string {
	words := camelcase.Split(strings.ReplaceAll(ident, "_", " "))
	var parts []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(w))
	}
	if len(parts) == 0 {
		return strings.ToUpper(ident)
	}
	return strings.Join(parts, "_")
}

func extractSecret(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	var warnings []string
	for i, line := range ls {
		m := secretAssignRe.FindStringSubmatch(line)
		if m == nil || !secretNameRe.MatchString(m[2]) {
			continue
		}
		env := envVarName(m[2])
		next := m[1] + m[2] + m[3] + "process.env." + env + m[6]
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: fmt.Sprintf("replaced literal secret with process.env.%s", env),
		})
		warnings = append(warnings, fmt.Sprintf("set %s in the runtime environment before deploying", env))
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no hardcoded secret assignments found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("externalized %d hardcoded secret(s)", len(changes)), warnings...)
}

var weakHashRe = regexp.MustCompile(`(['"])(md5|sha1)(['"])`)

func upgradeWeakHash(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !strings.Contains(line, "createHash") || !weakHashRe.MatchString(line) {
			continue
		}
		next := weakHashRe.ReplaceAllString(line, "${1}sha256${3}")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "upgraded hash algorithm to sha256",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no weak hash usage found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("upgraded %d weak hash call(s) to sha256", len(changes)),
		"existing stored digests remain on the old algorithm and need migration")
}

var modulusRe = regexp.MustCompile(`(modulusLength\s*:\s*)(512|1024|2048)\b`)

func growRSAModulus(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !modulusRe.MatchString(line) {
			continue
		}
		next := modulusRe.ReplaceAllString(line, "${1}4096")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "grew RSA modulus to 4096 bits",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no undersized RSA modulus found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("grew %d RSA modulus declaration(s) to 4096 bits", len(changes)),
		"existing keys must be regenerated and rotated")
}

var trailingWSRe = regexp.MustCompile(`[ \t]+$`)

func trimTrailingWhitespace(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !trailingWSRe.MatchString(line) {
			continue
		}
		next := trailingWSRe.ReplaceAllString(line, "")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "trimmed trailing whitespace",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no trailing whitespace found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("trimmed trailing whitespace on %d line(s)", len(changes)))
}

var todoRe = regexp.MustCompile(`(?i)(//\s*todo)(\b[^(]|$)`)

func annotateTodo(text string, _ domain.Issue) domain.FixResult {
	ls := splitLines(text)
	var changes []domain.FixChange
	for i, line := range ls {
		if !todoRe.MatchString(line) {
			continue
		}
		next := todoRe.ReplaceAllString(line, "${1}(triage)${2}")
		changes = append(changes, domain.FixChange{
			Kind:        domain.ChangeModify,
			LineNumber:  i + 1,
			Before:      line,
			After:       next,
			Description: "marked TODO for triage",
		})
		ls[i] = next
	}
	if len(changes) == 0 {
		return noMatch(text, "no untracked TODO comments found")
	}
	return applied(text, joinLines(ls), changes,
		fmt.Sprintf("marked %d TODO comment(s) for triage", len(changes)))
}
