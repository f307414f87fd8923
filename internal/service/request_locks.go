// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"hash/fnv"
	"sync"
)

const requestLockStripes = 64

// requestLocks serializes writes per request id within this process. Ids
// share a fixed set of mutexes, so the set never grows.
type requestLocks struct {
	stripes [requestLockStripes]sync.Mutex
}

// lock acquires the mutex for id in tenantID and returns its release.
func (l *requestLocks) lock(tenantID, id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tenantID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(id))

	m := &l.stripes[h.Sum32()%requestLockStripes]
	m.Lock()
	return m.Unlock
}
