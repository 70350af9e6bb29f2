// Package domain contains the core content entities and value objects of
// the application: slide records and display slides, quiz questions,
// further-reading resources, and flashcards. It represents the heart of the
// system, independent of any specific infrastructure or delivery mechanism.
// All entities here are transient and re-derived on every generation
// request; there is no persistence layer.
package domain
