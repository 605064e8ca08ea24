// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
)

// ItemError is the failure of a single record in a batch.
type ItemError struct {
	ID  string
	Err error
}

// BatchError lists the records of a batch that could not be processed. The
// records that succeeded are returned next to it.
type BatchError struct {
	Failed []ItemError
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d record(s) could not be opened: %s", len(e.Failed), strings.Join(e.IDs(), ", "))
}

// Unwrap exposes the per-record errors to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		errs = append(errs, f.Err)
	}
	return errs
}

// IDs returns the ids of the failed records in batch order.
func (e *BatchError) IDs() []string {
	ids := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}
