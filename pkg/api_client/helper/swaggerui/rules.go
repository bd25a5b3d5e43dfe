package swaggerui

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Rule is één tekstuele herschrijving van het options object richting strikte JSON.
// Elke regel is idempotent: twee keer toepassen geeft hetzelfde resultaat als één keer.
type Rule struct {
	Name  string
	Apply func(string) string
}

var (
	lineCommentRe     = regexp.MustCompile(`(?m)^\s*//.*$`)
	// alleen tot het regeleinde zonder quote, anders zit de // in een string
	trailingCommentRe = regexp.MustCompile(`(?m)([,{\[])[ \t]*//[^\r\n"]*$`)
	blockCommentRe    = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	undefinedRe       = regexp.MustCompile(`\bundefined\b`)
	dateCtorRe        = regexp.MustCompile(`new Date\([^)]*\)`)
	trailingCommaRe   = regexp.MustCompile(`,(\s*[}\]])`)
	blankDescRe       = regexp.MustCompile(`"description"\s*:\s*"\s*"`)

	// RE2 kent geen lookbehind
	escapedNewlineRe = regexp2.MustCompile(`(?<!["\\])\\n`, regexp2.None)
)

func replaceWith(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string { return re.ReplaceAllString(s, repl) }
}

// Rules is de vaste volgorde waarin Normalize de herschrijvingen toepast.
var Rules = []Rule{
	{Name: "line-comments", Apply: replaceWith(lineCommentRe, "")},
	{Name: "trailing-comments", Apply: replaceWith(trailingCommentRe, "$1")},
	{Name: "block-comments", Apply: replaceWith(blockCommentRe, "")},
	{Name: "undefined", Apply: replaceWith(undefinedRe, "null")},
	{Name: "date-constructor", Apply: replaceWith(dateCtorRe, `"2024-01-01"`)},
	{Name: "trailing-commas", Apply: replaceWith(trailingCommaRe, "$1")},
	{Name: "escaped-newlines", Apply: collapseEscapedNewlines},
	{Name: "blank-description", Apply: replaceWith(blankDescRe, `"description": ""`)},
}

func collapseEscapedNewlines(s string) string {
	out, err := escapedNewlineRe.Replace(s, " ", -1, -1)
	if err != nil {
		// alleen mogelijk bij een MatchTimeout, die hier niet gezet is
		return s
	}
	return out
}

// Normalize past alle Rules in volgorde toe.
func Normalize(js string) string {
	for _, r := range Rules {
		js = r.Apply(js)
	}
	return js
}
