package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedResponse   = errors.New("malformed upstream response")
	ErrKeyNotFound         = errors.New("key not found")
	ErrObjectNotFound      = errors.New("object not found")
	ErrEmptyCandidateSet   = errors.New("no candidate images")
)
