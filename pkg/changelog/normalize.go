package changelog

import (
	"regexp"
	"strings"
)

var (
	prLinkMarkdownRe = regexp.MustCompile(`\[#\d+\]\(https://github\.com/[^)]*\)`)
	githubRemnantRe  = regexp.MustCompile(`\(https://github\.com/[^)]*\)`)
	emptyParensRe    = regexp.MustCompile(`\(\)`)
	bracketRe        = regexp.MustCompile(`\[[^\]]*\]`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
	trailingJunkRe   = regexp.MustCompile(`[\s\-:,;.]+$`)
)

// CleanTitle strips markdown noise from a raw bullet into a display title.
// The steps are ordered: PR-link removal must run before bracket removal,
// since PR links are themselves bracketed. An all-noise bullet cleans to "".
func CleanTitle(raw string) string {
	s := prLinkMarkdownRe.ReplaceAllString(raw, "")
	s = githubRemnantRe.ReplaceAllString(s, "")
	s = emptyParensRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "**", "")
	s = bracketRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "`", "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = trailingJunkRe.ReplaceAllString(s, "")
	return s
}

// NormalizeConnector canonicalizes a connector token to Title Case:
// "ADYEN", "adyen" and "Adyen" all become "Adyen". Words are split on
// single spaces only.
func NormalizeConnector(raw string) string {
	words := strings.Split(strings.ToLower(raw), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
