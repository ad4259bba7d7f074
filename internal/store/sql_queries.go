package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	documentsTable = "documents"

	colCollection = "collection"
	colKey        = "doc_key"
	colBody       = "body"
	colVersion    = "version"
	colCreatedAt  = "created_at"
	colUpdatedAt  = "updated_at"
)

var documentColumns = []string{colCollection, colKey, colBody, colVersion, colCreatedAt, colUpdatedAt}

func buildSelectDocumentQuery(b sq.StatementBuilderType, collection, key string) (string, []any, error) {
	query, args, err := b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{colCollection: collection, colKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDocumentsQuery(b sq.StatementBuilderType, collection string) (string, []any, error) {
	query, args, err := b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{colCollection: collection}).
		OrderBy(colKey).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertDocumentQuery inserts unless the key is taken; a taken key
// shows up as zero affected rows.
func buildInsertDocumentQuery(b sq.StatementBuilderType, doc Document, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(documentsTable).
		Columns(documentColumns...).
		Values(doc.Collection, doc.Key, string(doc.Body), int64(1), now, now).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, %s) DO NOTHING", colCollection, colKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCompareAndSwapQuery updates only the row still at expectedVersion.
func buildCompareAndSwapQuery(b sq.StatementBuilderType, doc Document, expectedVersion int64, now time.Time) (string, []any, error) {
	query, args, err := b.Update(documentsTable).
		Set(colBody, string(doc.Body)).
		Set(colVersion, sq.Expr(colVersion+" + 1")).
		Set(colUpdatedAt, now).
		Where(sq.Eq{colCollection: doc.Collection, colKey: doc.Key, colVersion: expectedVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(b sq.StatementBuilderType, collection, key string) (string, []any, error) {
	query, args, err := b.Delete(documentsTable).
		Where(sq.Eq{colCollection: collection, colKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
