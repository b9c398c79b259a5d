package repos

import "errors"

// ErrNotFound is returned by targeted updates whose row does not exist or is
// not visible to the requesting user. Handlers map it to a 404.
var ErrNotFound = errors.New("record not found")
