package content

import "regexp"

// fillerPhrases are stock lines the generator's persona is prompted to use
// sparingly but tends to over-produce in runs.
var fillerPhrases = []string{
	"Interesting, right?",
	"Picture this in your mind.",
	"Let's draw that out.",
}

var fillerRunPatterns = compileFillerRunPatterns(fillerPhrases)

func compileFillerRunPatterns(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		quoted := regexp.QuoteMeta(phrase)
		patterns = append(patterns, regexp.MustCompile(`(?i)(`+quoted+`)(\s*`+quoted+`)+`))
	}
	return patterns
}

// CollapseFillerPhrases collapses any run of two or more consecutive
// repetitions of a known filler phrase into a single occurrence,
// case-insensitively. Single occurrences are left alone. Runs before
// segmentation and is idempotent.
func CollapseFillerPhrases(text string) string {
	cleaned := text
	for _, pattern := range fillerRunPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "${1}")
	}
	return cleaned
}
