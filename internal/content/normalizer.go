package content

import (
	"regexp"
	"strings"
)

// fencePattern matches a response wrapped in a single markdown code fence,
// optionally tagged with a language hint, capturing the inner payload.
// Non-greedy so trailing fence markers inside the payload are not consumed.
var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z0-9]*[ \t]*\n?(.*?)\n?[ \t]*```$")

// Normalize isolates the machine-readable payload from a raw generator
// response. It trims the input and, when the whole text is wrapped in a
// fenced code block, replaces it with the trimmed inner payload. It never
// fails: worst case the trimmed original is returned unchanged and error
// detection is deferred to the parser. Normalize is idempotent.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	return text
}

// trimAfterJSONArray is a defensive pass for JSON-array payloads: some
// models append stray prose after valid JSON. If the text contains a closing
// bracket, everything after the last one is dropped before parsing.
func trimAfterJSONArray(text string) string {
	if idx := strings.LastIndex(text, "]"); idx != -1 {
		return text[:idx+1]
	}
	return text
}
