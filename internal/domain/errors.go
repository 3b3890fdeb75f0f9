package domain

import "errors"

// ErrNamespaceNotDefined is returned when no extend row defines a tag namespace.
// It is a configuration error: the CMS has no custom field for the tags.
var ErrNamespaceNotDefined = errors.New("tag namespace not defined")

// ErrInvalidInput is returned when the request is invalid (e.g. a non-numeric id).
var ErrInvalidInput = errors.New("invalid input")
