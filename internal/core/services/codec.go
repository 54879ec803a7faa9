package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
)

// sourcesContainer is the on-disk document.
// Field order is alphabetical so the output has sorted keys.
type sourcesContainer struct {
	Data []serializedSource `json:"data"`
}

type serializedSource struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EncodeSources renders sources as the canonical container document:
// sorted keys, two-space indentation and no HTML escaping.
func EncodeSources(sources []domain.CollectionSource) ([]byte, error) {
	doc := sourcesContainer{Data: make([]serializedSource, 0, len(sources))}
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("encode %s: %w", s, err)
		}
		doc.Data = append(doc.Data, serializedSource{
			Type:  s.Type.String(),
			Value: s.URL.String(),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode collection sources: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSources parses a container document.
// Empty or whitespace-only input decodes to an empty list. Any invalid record
// fails the whole decode; duplicates keep their first occurrence.
func DecodeSources(data []byte) ([]domain.CollectionSource, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.CollectionSource{}, nil
	}

	var doc sourcesContainer
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	sources := make(domain.CollectionSources, 0, len(doc.Data))
	for _, rec := range doc.Data {
		s, err := domain.NewCollectionSource(rec.Type, rec.Value)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources.Dedupe(), nil
}
