// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import "errors"

var (
	ErrOpenStream  = errors.New("error opening request stream")
	ErrStreamEnded = errors.New("request stream ended")

	ErrSupervisorStarted = errors.New("supervisor already started")
	ErrSupervisorStopped = errors.New("supervisor stopped")
)
