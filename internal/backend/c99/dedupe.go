package c99

// dedupeByName keeps the first element for each distinct name and drops
// every later element sharing it, preserving the relative order of the
// kept elements. Later duplicates are dropped even when their type or
// signature disagrees with the kept one: the name alone identifies the
// foreign symbol, and a disagreement is a front-end bug this backend
// does not diagnose.
func dedupeByName[T any](items []T, name func(T) string) []T {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		n := name(item)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, item)
	}
	return out
}
