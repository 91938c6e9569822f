package utils

import (
	"fmt"
	"regexp"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const maxSlugLength = 100

// ValidateSlug checks that a human-assigned identifier is usable as a
// primary key: lowercase letters, digits and single hyphens, non-empty,
// at most 100 characters.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if len(slug) > maxSlugLength {
		return fmt.Errorf("identifier exceeds %d characters", maxSlugLength)
	}
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("invalid identifier %q: use lowercase letters, digits and hyphens", slug)
	}
	return nil
}
