package schema

import "errors"

// ErrNullUser is returned when a persisted user record is JSON null
var ErrNullUser = errors.New("user record is null")
