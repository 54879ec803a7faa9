package domain

// CollectionSources is an ordered list of sources. Position is user-significant:
// it is the display and precedence order.
type CollectionSources []CollectionSource

// Index returns the position of the element equal to source, or -1.
func (l CollectionSources) Index(source CollectionSource) int {
	for i := range l {
		if l[i].Equal(source) {
			return i
		}
	}
	return -1
}

// Contains returns true if an element equal to source is present.
func (l CollectionSources) Contains(source CollectionSource) bool {
	return l.Index(source) >= 0
}

// Without returns a copy of the list with every element equal to source removed.
func (l CollectionSources) Without(source CollectionSource) CollectionSources {
	out := make(CollectionSources, 0, len(l))
	for _, s := range l {
		if !s.Equal(source) {
			out = append(out, s)
		}
	}
	return out
}

// InsertAt returns a copy of the list with source inserted at order.
// An order outside [0, len(l)] appends at the end.
func (l CollectionSources) InsertAt(source CollectionSource, order int) CollectionSources {
	if order < 0 || order > len(l) {
		order = len(l)
	}
	out := make(CollectionSources, 0, len(l)+1)
	out = append(out, l[:order]...)
	out = append(out, source)
	return append(out, l[order:]...)
}

// Place removes any element equal to source and reinserts source at order.
// A nil order appends at the end.
func (l CollectionSources) Place(source CollectionSource, order *int) CollectionSources {
	rest := l.Without(source)
	if order == nil {
		return rest.InsertAt(source, len(rest))
	}
	return rest.InsertAt(source, *order)
}

// Dedupe returns a copy keeping only the first occurrence of each source.
func (l CollectionSources) Dedupe() CollectionSources {
	seen := make(map[string]struct{}, len(l))
	out := make(CollectionSources, 0, len(l))
	for _, s := range l {
		k := s.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Clone returns a shallow copy of the list.
func (l CollectionSources) Clone() CollectionSources {
	out := make(CollectionSources, len(l))
	copy(out, l)
	return out
}
