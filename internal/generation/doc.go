// Package generation provides the interface and prompt templates for
// interacting with external AI/LLM services for educational content
// generation. It abstracts the details of LLM integration (Gemini, OpenAI,
// or a pass-through HTTP relay), allowing the application to request
// slideshow scripts, quizzes, reading lists, and flashcard decks without
// coupling to specific external services.
package generation
