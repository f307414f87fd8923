// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broker fans request frames out to the live streams of a tenant.
//
// Publishing never blocks. A subscriber that cannot keep up is ended instead
// of silently losing frames: its stream handler closes the connection and the
// client reconnects, receiving a fresh refresh snapshot.
package broker
