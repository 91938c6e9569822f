package repository

import "fmt"

// validateReorder checks that proposed is a full permutation of current:
// same length, same membership, no duplicates. Violations are wrapped in
// ErrBadReorder.
func validateReorder(current, proposed []string) error {
	if len(proposed) != len(current) {
		return fmt.Errorf("%w: must include all %d entries, got %d", ErrBadReorder, len(current), len(proposed))
	}

	existing := make(map[string]bool, len(current))
	for _, id := range current {
		existing[id] = true
	}

	seen := make(map[string]bool, len(proposed))
	for _, id := range proposed {
		if !existing[id] {
			return fmt.Errorf("%w: unknown entry %s", ErrBadReorder, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate entry %s", ErrBadReorder, id)
		}
		seen[id] = true
	}

	return nil
}
