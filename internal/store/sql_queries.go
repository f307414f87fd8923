// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-request-inbox/models"
)

const requestsTable = "requests"

// requestColumns is the column order every SELECT and RETURNING clause uses;
// scanRequest depends on it.
var requestColumns = []string{
	"id",
	"sequence_number",
	"status",
	"payload",
	"linked_client_id",
	"linked_budget_id",
	"created_at",
	"updated_at",
}

func returningRequestColumns() string {
	return "RETURNING " + strings.Join(requestColumns, ", ")
}

func buildNextSequenceQuery(ph sq.PlaceholderFormat, tenantID string) (string, []any, error) {
	return sq.
		Select("COALESCE(MAX(sequence_number), 0) + 1").
		From(requestsTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertRequestQuery(ph sq.PlaceholderFormat, tenantID string, request models.Request, payload []byte) (string, []any, error) {
	return sq.
		Insert(requestsTable).
		Columns(
			"id",
			"tenant_id",
			"sequence_number",
			"status",
			"payload",
			"linked_client_id",
			"linked_budget_id",
			"created_at",
			"updated_at",
		).
		Values(
			request.ID,
			tenantID,
			request.SequenceNumber,
			string(request.Status),
			string(payload),
			request.LinkedClientID,
			request.LinkedBudgetID,
			request.CreatedAt,
			request.UpdatedAt,
		).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectRequestQuery(ph sq.PlaceholderFormat, tenantID, id string) (string, []any, error) {
	return sq.
		Select(requestColumns...).
		From(requestsTable).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildListRequestsQuery(ph sq.PlaceholderFormat, tenantID string, status models.RequestStatus) (string, []any, error) {
	query := sq.
		Select(requestColumns...).
		From(requestsTable).
		Where(sq.Eq{"tenant_id": tenantID})

	if status != "" {
		query = query.Where(sq.Eq{"status": string(status)})
	}

	return query.
		OrderBy("created_at DESC", "sequence_number DESC").
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpdateStatusQuery matches no row once the request is converted.
func buildUpdateStatusQuery(ph sq.PlaceholderFormat, tenantID, id string, status models.RequestStatus, now time.Time) (string, []any, error) {
	return sq.
		Update(requestsTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		Where(sq.NotEq{"status": string(models.StatusConverted)}).
		Suffix(returningRequestColumns()).
		PlaceholderFormat(ph).
		ToSql()
}

// buildConvertQuery matches only requests that are still pending or in
// contact.
func buildConvertQuery(ph sq.PlaceholderFormat, tenantID, id, clientID, budgetID string, now time.Time) (string, []any, error) {
	return sq.
		Update(requestsTable).
		Set("status", string(models.StatusConverted)).
		Set("linked_client_id", clientID).
		Set("linked_budget_id", budgetID).
		Set("updated_at", now).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		Where(sq.Eq{"status": []string{string(models.StatusPending), string(models.StatusInContact)}}).
		Suffix(returningRequestColumns()).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteRequestQuery(ph sq.PlaceholderFormat, tenantID, id string) (string, []any, error) {
	return sq.
		Delete(requestsTable).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func wrapBuildErr(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrBuildingSQLQuery, name, err)
}
