// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import "errors"

var (
	ErrBrokerClosed  = errors.New("broker is closed")
	ErrEmptyTenantID = errors.New("tenant id is empty")
)
