// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-request-inbox/models"
)

// checkStatusTransition reports whether a request in status from may be
// moved to status to through UpdateStatus.
func checkStatusTransition(from, to models.RequestStatus) error {
	switch {
	case !to.IsValid():
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	case to == models.StatusConverted:
		return fmt.Errorf("%w: use convert to move a request to %s", ErrInvalidTransition, to)
	case from == models.StatusConverted:
		return fmt.Errorf("%w: %s request cannot change status", ErrInvalidTransition, from)
	}
	return nil
}

// checkConvert reports whether a request in status from may be converted.
func checkConvert(from models.RequestStatus) error {
	switch from {
	case models.StatusConverted, models.StatusDiscarded:
		return fmt.Errorf("%w: cannot convert %s request", ErrInvalidTransition, from)
	}
	return nil
}
