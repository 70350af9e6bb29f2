package domain

import (
	"errors"
	"net/url"
)

// Resource-specific validation errors
var (
	// ErrResourceTitleEmpty is returned when a resource has no title.
	ErrResourceTitleEmpty = errors.New("resource title cannot be empty")

	// ErrResourceURLInvalid is returned when a resource URL does not parse
	// as an absolute link target.
	ErrResourceURLInvalid = errors.New("resource URL is not a valid link")
)

// Resource is one further-reading link parsed from the generator's markdown
// bullet list. Resources are produced per generation request, displayed, and
// discarded on the next request.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Validate checks if the Resource has a title and a usable link target.
// The description may be empty.
func (r Resource) Validate() error {
	if r.Title == "" {
		return ErrResourceTitleEmpty
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrResourceURLInvalid
	}
	return nil
}
