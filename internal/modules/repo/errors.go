package repo

import "errors"

// ErrNotFound is the store-agnostic miss; both backing policies translate
// their native not-found signals to it so services never see driver errors.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate marks a uniqueness violation (e.g. a repeated tag relation).
var ErrDuplicate = errors.New("duplicate record")
