package repository

import "errors"

// ErrNotFound is returned by repositories when the requested row does not
// exist. Any other repository error is a persistence failure and must
// propagate to the caller unchanged.
var ErrNotFound = errors.New("registro no encontrado")
