// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNoPhone is reported when copying the phone of a request that has none.
var ErrNoPhone = errors.New("request has no phone number")
