package domain

// ToggleSaved returns a new set with itemID added if absent or removed if
// present. The input set is never mutated.
func ToggleSaved(saved map[string]struct{}, itemID string) map[string]struct{} {
	next := make(map[string]struct{}, len(saved)+1)
	for id := range saved {
		next[id] = struct{}{}
	}
	if _, ok := next[itemID]; ok {
		delete(next, itemID)
	} else {
		next[itemID] = struct{}{}
	}
	return next
}
