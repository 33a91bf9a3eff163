package kmp

import "errors"

// Sentinel errors for KMP operations.
var (
	// ErrEmptyPattern indicates the pattern has no symbols; the failure
	// table and the scan are undefined for an empty pattern.
	ErrEmptyPattern = errors.New("kmp: pattern must be non-empty")
)
