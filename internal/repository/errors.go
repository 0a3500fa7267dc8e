package repository

import "errors"

// ErrNotFound indicates the requested row does not exist. Repositories wrap
// it with the entity name; callers test with errors.Is.
var ErrNotFound = errors.New("not found")
