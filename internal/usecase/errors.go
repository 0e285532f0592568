package usecase

import (
	"fmt"
	"strings"
)

// FarmNotFoundError carries the available slugs so the HTTP layer can tell
// the caller what it could have asked for.
type FarmNotFoundError struct {
	Slug      string
	Available []string
}

func (e *FarmNotFoundError) Error() string {
	return fmt.Sprintf("farm '%s' not found. Available farms: [%s]", e.Slug, strings.Join(e.Available, ", "))
}

// LotNotFoundError reports a lot number missing from a farm.
type LotNotFoundError struct {
	LotNumber int
	FarmSlug  string
}

func (e *LotNotFoundError) Error() string {
	return fmt.Sprintf("lot %d not found in farm %s", e.LotNumber, e.FarmSlug)
}
