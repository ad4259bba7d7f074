// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqlDocumentStore struct {
	db  *DB
	now func() time.Time
}

// NewSQLDocumentStore returns a [DocumentStore] over the documents table.
func NewSQLDocumentStore(db *DB) DocumentStore {
	return &sqlDocumentStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *sqlDocumentStore) Get(ctx context.Context, collection, key string) (Document, error) {
	query, args, err := buildSelectDocumentQuery(s.db.builder, collection, key)
	if err != nil {
		return Document{}, err
	}

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrDocumentNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return doc, nil
}

func (s *sqlDocumentStore) CreateIfAbsent(ctx context.Context, doc Document) (Document, error) {
	now := s.now()
	query, args, err := buildInsertDocumentQuery(s.db.builder, doc, now)
	if err != nil {
		return Document{}, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return Document{}, ErrDocumentExists
	}

	doc.Version = 1
	doc.CreatedAt = now
	doc.UpdatedAt = now
	return doc, nil
}

func (s *sqlDocumentStore) CompareAndSwap(ctx context.Context, doc Document, expectedVersion int64) (Document, error) {
	now := s.now()
	query, args, err := buildCompareAndSwapQuery(s.db.builder, doc, expectedVersion, now)
	if err != nil {
		return Document{}, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 1 {
		doc.Version = expectedVersion + 1
		doc.UpdatedAt = now
		return doc, nil
	}

	// Nothing matched: either the row is gone or someone else wrote first.
	current, err := s.Get(ctx, doc.Collection, doc.Key)
	if err != nil {
		return Document{}, err
	}
	s.db.logger.Debug().
		Str("collection", doc.Collection).
		Int64("expected_version", expectedVersion).
		Int64("current_version", current.Version).
		Msg("compare-and-swap lost")
	return Document{}, ErrVersionConflict
}

func (s *sqlDocumentStore) Delete(ctx context.Context, collection, key string) error {
	query, args, err := buildDeleteDocumentQuery(s.db.builder, collection, key)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *sqlDocumentStore) List(ctx context.Context, collection string) ([]Document, error) {
	query, args, err := buildListDocumentsQuery(s.db.builder, collection)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return docs, nil
}

func (s *sqlDocumentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlDocumentStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc  Document
		body string
	)
	if err := row.Scan(&doc.Collection, &doc.Key, &body, &doc.Version, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return Document{}, err
	}
	doc.Body = []byte(body)
	return doc, nil
}
