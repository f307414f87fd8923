// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import "errors"

var (
	// ErrInboxClosed is returned for any message sent after [Inbox.Close].
	ErrInboxClosed = errors.New("inbox is closed")
	// ErrNilFrame is returned by [Inbox.Merge] for a nil frame.
	ErrNilFrame = errors.New("nil frame")
)
