package generation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Default quiz parameters used when the caller does not narrow them down.
const (
	DefaultQuizCategory = "general science and technology"
	DefaultQuizGrade    = "8-12"
)

const slideshowPromptText = `You are Professor Luna, an experienced teacher who loves explaining concepts using fun metaphors, mnemonic devices and analogies.
Every explanation should sound like you're talking directly to a curious student.

Keep it casual, funny, and slightly witty. Occasionally add rhetorical questions ("Interesting, right?"), engaging remarks ("Let's draw that out."), or calls to imagine ("Picture this in your mind."), but don't overuse them. Vary your phrasing naturally and use these sparingly for emphasis.

Your task is to break down a given topic into a series of concise steps for a slideshow.
Each slide should have no more than 7 short sentences, written in simple, engaging language.
Make sure each slide can be read in under 10 seconds.

The final output must be a JSON array of objects, where each object has a "text" key.
Do not include any other text or markdown formatting outside the JSON array.

Topic: "{{.Topic}}"`

const resourcesPromptText = `You are Professor Luna, and you point curious students toward trustworthy material for deeper study.
Compile a short further-reading list for the topic below.

Respond with a markdown section titled "## Further Reading" followed by 3 to 5 bullet lines, each in exactly this form:
- [title](url) - one-sentence description

Only include real, reputable, publicly accessible links. Do not add any prose before or after the list.

Topic: "{{.Topic}}"`

const quizPromptText = `You are Professor Luna, and you create fun quizzes to help students learn interactively.
Create a JSON array of {{.Count}} quiz questions about {{.Category}} challenging enough for students of grade {{.Grade}}.
Each question should have:
- "question": the quiz question text
- "options": an array of {{.OptionCount}} answer options
- "answer": the correct option text

Do not add any explanation or formatting outside the JSON array.`

const flashcardsPromptText = `You are Professor Luna, and you distill topics into flashcards students can drill.
Produce 8 to 12 flashcards for the topic below.

Respond with plain text, one card per line, in exactly this form:
Term: Definition

The first colon on each line separates the term from its definition. Do not add numbering, bullets, or any prose outside the card lines.

Topic: "{{.Topic}}"`

var (
	slideshowPrompt  = template.Must(template.New("slideshow").Parse(slideshowPromptText))
	resourcesPrompt  = template.Must(template.New("resources").Parse(resourcesPromptText))
	quizPrompt       = template.Must(template.New("quiz").Parse(quizPromptText))
	flashcardsPrompt = template.Must(template.New("flashcards").Parse(flashcardsPromptText))
)

type topicPromptData struct {
	Topic string
}

type quizPromptData struct {
	Count       int
	OptionCount int
	Category    string
	Grade       string
}

func executePrompt(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// SlideshowPrompt builds the prompt requesting a slideshow script for the
// given topic. The response contract is a JSON array of {"text"} objects.
func SlideshowPrompt(topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}
	return executePrompt(slideshowPrompt, topicPromptData{Topic: topic})
}

// ResourcesPrompt builds the prompt requesting a further-reading markdown
// list for the given topic.
func ResourcesPrompt(topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}
	return executePrompt(resourcesPrompt, topicPromptData{Topic: topic})
}

// QuizPrompt builds the prompt requesting a question set. Empty category or
// grade fall back to the defaults. Count and option count follow the domain
// quiz composition constants at the call site.
func QuizPrompt(count, optionCount int, category, grade string) (string, error) {
	if category == "" {
		category = DefaultQuizCategory
	}
	if grade == "" {
		grade = DefaultQuizGrade
	}
	return executePrompt(quizPrompt, quizPromptData{
		Count:       count,
		OptionCount: optionCount,
		Category:    category,
		Grade:       grade,
	})
}

// FlashcardsPrompt builds the prompt requesting "Term: Definition" lines
// for the given topic.
func FlashcardsPrompt(topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}
	return executePrompt(flashcardsPrompt, topicPromptData{Topic: topic})
}
