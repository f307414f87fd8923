// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import "github.com/MKhiriev/go-request-inbox/models"

// Apply returns the collection that results from folding f into c.
//
//   - refresh replaces c with the given requests in the given order; a
//     repeated id keeps its first occurrence.
//   - insert prepends the request unless its id is already present, in which
//     case c is returned unchanged.
//   - update replaces the entry with the same id in place, or prepends the
//     request when the id is absent.
//   - delete removes the entry with the given id, if any.
//
// Any other frame, including nil, leaves c unchanged. Apply never modifies c.
func Apply(c Collection, f models.Frame) Collection {
	switch frame := f.(type) {
	case models.RefreshFrame:
		return refresh(frame.Requests)
	case models.InsertFrame:
		if c.IndexOf(frame.Request.ID) >= 0 {
			return c
		}
		return prepend(c, frame.Request)
	case models.UpdateFrame:
		i := c.IndexOf(frame.Request.ID)
		if i < 0 {
			return prepend(c, frame.Request)
		}
		next := make(Collection, len(c))
		copy(next, c)
		next[i] = frame.Request
		return next
	case models.DeleteFrame:
		i := c.IndexOf(frame.RequestID)
		if i < 0 {
			return c
		}
		next := make(Collection, 0, len(c)-1)
		next = append(next, c[:i]...)
		return append(next, c[i+1:]...)
	default:
		return c
	}
}

func refresh(requests []models.Request) Collection {
	next := make(Collection, 0, len(requests))
	seen := make(map[string]struct{}, len(requests))
	for _, r := range requests {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		next = append(next, r)
	}
	return next
}

func prepend(c Collection, r models.Request) Collection {
	next := make(Collection, 0, len(c)+1)
	next = append(next, r)
	return append(next, c...)
}
