// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/MKhiriev/go-request-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(id string, status models.RequestStatus) models.Request {
	return models.Request{ID: id, Status: status, Payload: models.RequestPayload{Name: "name-" + id}}
}

// ── insert ──

func TestApply_InsertPrepends(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}

	got := Apply(c, models.InsertFrame{Request: req("b", models.StatusPending)})

	assert.Equal(t, []string{"b", "a"}, got.IDs())
}

func TestApply_InsertIsIdempotent(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}
	x := req("x", models.StatusPending)

	once := Apply(c, models.InsertFrame{Request: x})
	twice := Apply(once, models.InsertFrame{Request: x})

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"x", "a"}, twice.IDs())
}

func TestApply_InsertOfKnownIDKeepsExistingValue(t *testing.T) {
	c := Collection{req("a", models.StatusConverted)}

	got := Apply(c, models.InsertFrame{Request: req("a", models.StatusPending)})

	require.Len(t, got, 1)
	assert.Equal(t, models.StatusConverted, got[0].Status)
}

// ── update ──

func TestApply_UpdateReplacesInPlace(t *testing.T) {
	c := Collection{req("c", models.StatusPending), req("b", models.StatusPending), req("a", models.StatusPending)}

	got := Apply(c, models.UpdateFrame{Request: req("b", models.StatusInContact)})

	assert.Equal(t, []string{"c", "b", "a"}, got.IDs())
	assert.Equal(t, models.StatusInContact, got[1].Status)
}

func TestApply_UpdateBeforeArrivalConverges(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}
	v1 := req("x", models.StatusPending)
	v2 := req("x", models.StatusInContact)

	got := Apply(Apply(c, models.UpdateFrame{Request: v1}), models.UpdateFrame{Request: v2})

	assert.Equal(t, []string{"x", "a"}, got.IDs())
	assert.Equal(t, v2, got[0])
}

// ── delete ──

func TestApply_DeleteRemoves(t *testing.T) {
	c := Collection{req("b", models.StatusPending), req("a", models.StatusPending)}

	got := Apply(c, models.DeleteFrame{RequestID: "b"})

	assert.Equal(t, []string{"a"}, got.IDs())
}

func TestApply_DeleteUnknownIsNoop(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}

	got := Apply(c, models.DeleteFrame{RequestID: "zzz"})

	assert.Equal(t, c, got)
}

// ── refresh ──

func TestApply_RefreshWithEmptyListEmptiesCollection(t *testing.T) {
	c := Collection{req("b", models.StatusPending), req("a", models.StatusPending)}

	got := Apply(c, models.RefreshFrame{Requests: []models.Request{}})

	assert.Empty(t, got)
}

func TestApply_RefreshKeepsGivenOrderAndDropsDuplicates(t *testing.T) {
	c := Collection{req("z", models.StatusPending)}
	first := req("b", models.StatusPending)

	got := Apply(c, models.RefreshFrame{Requests: []models.Request{
		first,
		req("a", models.StatusPending),
		req("b", models.StatusDiscarded),
	}})

	assert.Equal(t, []string{"b", "a"}, got.IDs())
	assert.Equal(t, first, got[0])
}

// ── purity ──

func TestApply_DoesNotModifyInput(t *testing.T) {
	c := Collection{req("b", models.StatusPending), req("a", models.StatusPending)}
	before := append(Collection(nil), c...)

	Apply(c, models.UpdateFrame{Request: req("a", models.StatusConverted)})
	Apply(c, models.DeleteFrame{RequestID: "b"})
	Apply(c, models.InsertFrame{Request: req("c", models.StatusPending)})
	Apply(c, models.RefreshFrame{Requests: nil})

	assert.Equal(t, before, c)
}

func TestApply_IsDeterministic(t *testing.T) {
	c := Collection{req("b", models.StatusPending), req("a", models.StatusPending)}
	f := models.UpdateFrame{Request: req("q", models.StatusPending)}

	assert.Equal(t, Apply(c, f), Apply(c, f))
}

func TestApply_NilFrameIsNoop(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}

	assert.Equal(t, c, Apply(c, nil))
}

func TestApply_NoDuplicateIDsAfterRandomSequence(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d", "e"}
	statuses := models.AllStatuses

	var c Collection
	for step := 0; step < 2000; step++ {
		id := ids[rnd.Intn(len(ids))]
		var f models.Frame
		switch rnd.Intn(3) {
		case 0:
			f = models.InsertFrame{Request: req(id, statuses[rnd.Intn(len(statuses))])}
		case 1:
			f = models.UpdateFrame{Request: req(id, statuses[rnd.Intn(len(statuses))])}
		default:
			f = models.DeleteFrame{RequestID: id}
		}
		c = Apply(c, f)

		seen := map[string]bool{}
		for _, r := range c {
			require.False(t, seen[r.ID], fmt.Sprintf("duplicate id %q at step %d", r.ID, step))
			seen[r.ID] = true
		}
	}
}

// ── scenarios ──

func TestApply_InsertUpdateDeleteScenario(t *testing.T) {
	c := Collection{req("a", models.StatusPending)}

	c = Apply(c, models.InsertFrame{Request: req("b", models.StatusPending)})
	assert.Equal(t, []string{"b", "a"}, c.IDs())

	c = Apply(c, models.UpdateFrame{Request: req("a", models.StatusConverted)})
	assert.Equal(t, []string{"b", "a"}, c.IDs())
	assert.Equal(t, models.StatusConverted, c[1].Status)

	c = Apply(c, models.DeleteFrame{RequestID: "b"})
	assert.Equal(t, Collection{req("a", models.StatusConverted)}, c)
}

func TestApply_LocalResultThenStreamFrameIsIdempotent(t *testing.T) {
	c := Collection{req("b", models.StatusPending), req("a", models.StatusPending)}
	clientID, budgetID := "client-1", "budget-1"
	canonical := req("a", models.StatusConverted)
	canonical.LinkedClientID = &clientID
	canonical.LinkedBudgetID = &budgetID

	afterREST := Apply(c, models.UpdateFrame{Request: canonical})
	afterStream := Apply(afterREST, models.UpdateFrame{Request: canonical})

	assert.Equal(t, afterREST, afterStream)
	assert.Equal(t, []string{"b", "a"}, afterStream.IDs())
}
