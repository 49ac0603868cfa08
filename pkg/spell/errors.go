package spell

import "errors"

var (
	// ErrNotLoaded is returned by every query issued before Initialize has finished.
	ErrNotLoaded = errors.New("dictionary not loaded")

	// ErrMissingInput is returned when the locale, affix grammar or word list is empty.
	ErrMissingInput = errors.New("locale, affix grammar and word list are all required")
)
