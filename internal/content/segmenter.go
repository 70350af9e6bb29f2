package content

import (
	"strings"
	"unicode"
)

// DefaultMaxSlideLength is the default character budget for one display
// chunk, tuned so a slide can be read in under ten seconds.
const DefaultMaxSlideLength = 180

// SplitSentences divides text at sentence boundaries: a '.', '!' or '?'
// followed by whitespace ends a sentence. Terminators stay attached to
// their sentence and order is preserved.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// Segment splits slide text into display chunks of at most maxLen
// characters, never breaking mid-sentence: sentences accumulate greedily
// into the current chunk and overflow starts a new one. A single sentence
// longer than maxLen becomes its own oversized chunk. Output is
// deterministic and order-preserving; maxLen values below 1 fall back to
// DefaultMaxSlideLength.
func Segment(text string, maxLen int) []string {
	if maxLen < 1 {
		maxLen = DefaultMaxSlideLength
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range SplitSentences(text) {
		if current.Len() == 0 {
			current.WriteString(sentence)
			continue
		}
		if current.Len()+1+len(sentence) <= maxLen {
			current.WriteByte(' ')
			current.WriteString(sentence)
			continue
		}
		chunks = append(chunks, current.String())
		current.Reset()
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
