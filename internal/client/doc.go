// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive inbox client runtime.
//
// It wires the terminal view, the inbox reconciler and the request stream
// supervisor into a single process lifecycle: the stream is opened when
// the view is mounted and closed when it is left.
package client
