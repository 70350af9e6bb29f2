// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It handles client construction, retry with
// exponential backoff for transient failures, and classification of
// provider errors into the generation package's taxonomy.
package gemini
