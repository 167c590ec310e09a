package label

import "errors"

// ErrEmptySeparator rejects a configured list separator with no content.
var ErrEmptySeparator = errors.New("label: empty list separator")

// ErrMissingSlot indicates a template did not pre-declare a binding slot that
// substitution was asked to overwrite.
var ErrMissingSlot = errors.New("label: no such binding slot")
