// Package content implements the response-normalization pipeline that turns
// raw generator output into typed domain records: fence stripping, shape-
// tagged parsing, sentence-respecting slide segmentation, and filler-phrase
// deduplication. Everything in this package is pure and deterministic so the
// pipeline can be tested without a generator or a rendering environment.
package content
