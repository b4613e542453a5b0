package domain

import "errors"

// ErrListingNotFound возвращается хранилищем, когда объявления с таким ID нет.
var ErrListingNotFound = errors.New("listing not found")
