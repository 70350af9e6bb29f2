// Package service contains the generation orchestrators: one service per
// content surface (slideshow, quiz, flashcards). Each service drives a
// user-initiated request end-to-end, from prompt building through the
// generator call, normalization, parsing, validation, and segmentation,
// and owns the per-surface serialization rules: stale in-flight results
// are discarded when a newer request supersedes them.
package service
