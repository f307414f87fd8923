// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

// maxCreateAttempts bounds how many times Create re-reads the sequence after
// colliding with a concurrent insert for the same tenant.
const maxCreateAttempts = 3

// requestRepository is the SQL implementation of [RequestRepository]. It
// works on both PostgreSQL and SQLite: queries are built with squirrel using
// the placeholder style of the underlying [DB].
type requestRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewRequestRepository constructs a [RequestRepository] backed by db.
func NewRequestRepository(db *DB, logger *logger.Logger) RequestRepository {
	logger.Debug().Msg("creating request repository")
	return &requestRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Create stores request under tenantID. The sequence number is computed and
// written inside one transaction; a unique violation on (tenant_id,
// sequence_number) means another writer won the race and the whole
// transaction is retried.
func (r *requestRepository) Create(ctx context.Context, tenantID string, request models.Request) (models.Request, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(request.Payload)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.Create").Msg("error encoding payload")
		return models.Request{}, fmt.Errorf("%w: %w", ErrRequestNotSaved, err)
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		created, err := r.create(ctx, tenantID, request, payload)
		if err == nil {
			return created, nil
		}
		if !uniqueViolation(err) && r.db.classify(err) != Retryable {
			return models.Request{}, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Str("func", "*requestRepository.Create").Msg("retrying request insert")
	}

	return models.Request{}, ErrRequestNotSaved
}

func (r *requestRepository) create(ctx context.Context, tenantID string, request models.Request, payload []byte) (models.Request, error) {
	log := logger.FromContext(ctx)
	ph := r.db.placeholder()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.create").Msg("error beginning transaction")
		return models.Request{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := buildNextSequenceQuery(ph, tenantID)
	if err != nil {
		return models.Request{}, wrapBuildErr("next sequence", err)
	}
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&request.SequenceNumber); err != nil {
		log.Err(err).Str("func", "*requestRepository.create").Msg("error reading next sequence number")
		return models.Request{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildInsertRequestQuery(ph, tenantID, request, payload)
	if err != nil {
		return models.Request{}, wrapBuildErr("insert request", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.create").Msg("error inserting request")
		return models.Request{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Request{}, ErrRequestNotSaved
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*requestRepository.create").Msg("error committing transaction")
		return models.Request{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return request, nil
}

func (r *requestRepository) Get(ctx context.Context, tenantID, id string) (models.Request, error) {
	query, args, err := buildSelectRequestQuery(r.db.placeholder(), tenantID, id)
	if err != nil {
		return models.Request{}, wrapBuildErr("select request", err)
	}

	return r.queryOne(ctx, "*requestRepository.Get", query, args)
}

func (r *requestRepository) List(ctx context.Context, tenantID string, status models.RequestStatus) ([]models.Request, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRequestsQuery(r.db.placeholder(), tenantID, status)
	if err != nil {
		return nil, wrapBuildErr("list requests", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			log.Err(err).Str("func", "*requestRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*requestRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, tenantID, id string, status models.RequestStatus) (models.Request, error) {
	query, args, err := buildUpdateStatusQuery(r.db.placeholder(), tenantID, id, status, r.now())
	if err != nil {
		return models.Request{}, wrapBuildErr("update status", err)
	}

	request, err := r.queryOne(ctx, "*requestRepository.UpdateStatus", query, args)
	if errors.Is(err, ErrRequestNotFound) {
		return models.Request{}, r.explainNoRows(ctx, tenantID, id)
	}
	return request, err
}

func (r *requestRepository) Convert(ctx context.Context, tenantID, id, clientID, budgetID string) (models.Request, error) {
	query, args, err := buildConvertQuery(r.db.placeholder(), tenantID, id, clientID, budgetID, r.now())
	if err != nil {
		return models.Request{}, wrapBuildErr("convert request", err)
	}

	request, err := r.queryOne(ctx, "*requestRepository.Convert", query, args)
	if errors.Is(err, ErrRequestNotFound) {
		return models.Request{}, r.explainNoRows(ctx, tenantID, id)
	}
	return request, err
}

// explainNoRows tells a missing request apart from one whose current status
// no longer allows a guarded update.
func (r *requestRepository) explainNoRows(ctx context.Context, tenantID, id string) error {
	current, err := r.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: request is %s", ErrStatusConflict, current.Status)
}

func (r *requestRepository) Delete(ctx context.Context, tenantID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRequestQuery(r.db.placeholder(), tenantID, id)
	if err != nil {
		return wrapBuildErr("delete request", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.Delete").Msg("error deleting request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// queryOne runs a statement that yields at most one request row, mapping an
// empty result to [ErrRequestNotFound].
func (r *requestRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Request, error) {
	log := logger.FromContext(ctx)

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Request{}, ErrRequestNotFound
	case errors.Is(err, ErrDecodingPayload):
		log.Err(err).Str("func", funcName).Msg("error decoding payload")
		return models.Request{}, err
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return models.Request{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return request, nil
}

func scanRequest(row rowScanner) (models.Request, error) {
	var (
		request  models.Request
		status   string
		payload  string
		clientID sql.NullString
		budgetID sql.NullString
	)

	err := row.Scan(
		&request.ID,
		&request.SequenceNumber,
		&status,
		&payload,
		&clientID,
		&budgetID,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return models.Request{}, err
	}

	if err = json.Unmarshal([]byte(payload), &request.Payload); err != nil {
		return models.Request{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	request.Status = models.RequestStatus(status)
	if clientID.Valid {
		request.LinkedClientID = &clientID.String
	}
	if budgetID.Valid {
		request.LinkedBudgetID = &budgetID.String
	}
	request.CreatedAt = request.CreatedAt.UTC()
	request.UpdatedAt = request.UpdatedAt.UTC()

	return request, nil
}
