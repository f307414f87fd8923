// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inbox holds the client-side state of the budget requests inbox.
//
// The package is split into three layers:
//
//   - [Apply] folds a single [models.Frame] into a [Collection]. It is a pure
//     function and the only place where the collection changes.
//   - [View] and [Filter] derive the rendered list from a collection plus
//     the local status and search filters.
//   - [Inbox] owns the collection and the selected request for one mounted
//     view. Stream frames and results of local mutating calls reach it
//     through the same [Inbox.Merge] entry point and are applied one at a
//     time, in arrival order, by [Inbox.Run].
package inbox
