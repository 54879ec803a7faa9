package domain

import (
	"fmt"
	"net/url"
)

// SourceType identifies the wire format served by a collection endpoint.
// New formats are added as further constants; anything else is rejected.
type SourceType string

// Supported source types.
const (
	// SourceTypeJSON is a collection published as a JSON document.
	SourceTypeJSON SourceType = "json"
)

// ParseSourceType maps a stored type tag to a SourceType.
// Unrecognised tags return an *UnknownTypeError.
func ParseSourceType(s string) (SourceType, error) {
	t := SourceType(s)
	if !t.IsValid() {
		return "", &UnknownTypeError{Type: s}
	}
	return t, nil
}

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// CollectionSource identifies an external collection endpoint by type and URL.
type CollectionSource struct {
	// Type is the format of the collection behind URL.
	Type SourceType

	// URL is the absolute location of the collection.
	URL *url.URL
}

// NewCollectionSource validates typ and rawURL and builds a CollectionSource.
func NewCollectionSource(typ, rawURL string) (CollectionSource, error) {
	t, err := ParseSourceType(typ)
	if err != nil {
		return CollectionSource{}, err
	}
	u, err := ParseSourceURL(rawURL)
	if err != nil {
		return CollectionSource{}, err
	}
	return CollectionSource{Type: t, URL: u}, nil
}

// ParseSourceURL parses rawURL and requires it to be absolute.
// Failures return an *InvalidURLError.
func ParseSourceURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Value: rawURL, Err: err}
	}
	if !u.IsAbs() {
		return nil, &InvalidURLError{Value: rawURL, Err: errRelativeURL}
	}
	return u, nil
}

// Validate reports whether the source can be stored.
func (s CollectionSource) Validate() error {
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, &UnknownTypeError{Type: string(s.Type)})
	}
	if s.URL == nil {
		return fmt.Errorf("%w: missing url", ErrInvalidInput)
	}
	if !s.URL.IsAbs() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, &InvalidURLError{Value: s.URL.String(), Err: errRelativeURL})
	}
	return nil
}

// Key returns the identity used for equality: type and URL string.
func (s CollectionSource) Key() string {
	return string(s.Type) + " " + s.urlString()
}

// Equal returns true if both sources have the same type and URL.
func (s CollectionSource) Equal(other CollectionSource) bool {
	return s.Type == other.Type && s.urlString() == other.urlString()
}

// String returns a human-readable form, e.g. "json https://example.com/c.json".
func (s CollectionSource) String() string {
	return s.Key()
}

func (s CollectionSource) urlString() string {
	if s.URL == nil {
		return ""
	}
	return s.URL.String()
}
