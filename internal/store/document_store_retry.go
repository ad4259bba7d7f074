// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const retryBaseDelay = 50 * time.Millisecond

// retryingDocumentStore retries calls that failed with an error the
// classificator marks as transient.
type retryingDocumentStore struct {
	next       DocumentStore
	classifier ErrorClassificator
	maxRetries uint64
	baseDelay  time.Duration
}

// WithRetries wraps next so transient failures are retried up to maxRetries
// times with exponential backoff. A zero maxRetries returns next unchanged.
func WithRetries(next DocumentStore, classifier ErrorClassificator, maxRetries int) DocumentStore {
	if maxRetries <= 0 || classifier == nil {
		return next
	}
	return &retryingDocumentStore{
		next:       next,
		classifier: classifier,
		maxRetries: uint64(maxRetries),
		baseDelay:  retryBaseDelay,
	}
}

func (r *retryingDocumentStore) do(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.baseDelay))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.classifier.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (r *retryingDocumentStore) Get(ctx context.Context, collection, key string) (doc Document, err error) {
	err = r.do(ctx, func(ctx context.Context) error {
		doc, err = r.next.Get(ctx, collection, key)
		return err
	})
	return doc, err
}

func (r *retryingDocumentStore) CreateIfAbsent(ctx context.Context, doc Document) (created Document, err error) {
	err = r.do(ctx, func(ctx context.Context) error {
		created, err = r.next.CreateIfAbsent(ctx, doc)
		return err
	})
	return created, err
}

func (r *retryingDocumentStore) CompareAndSwap(ctx context.Context, doc Document, expectedVersion int64) (swapped Document, err error) {
	err = r.do(ctx, func(ctx context.Context) error {
		swapped, err = r.next.CompareAndSwap(ctx, doc, expectedVersion)
		return err
	})
	return swapped, err
}

func (r *retryingDocumentStore) Delete(ctx context.Context, collection, key string) error {
	return r.do(ctx, func(ctx context.Context) error {
		return r.next.Delete(ctx, collection, key)
	})
}

func (r *retryingDocumentStore) List(ctx context.Context, collection string) (docs []Document, err error) {
	err = r.do(ctx, func(ctx context.Context) error {
		docs, err = r.next.List(ctx, collection)
		return err
	})
	return docs, err
}

func (r *retryingDocumentStore) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}

func (r *retryingDocumentStore) Close() error {
	return r.next.Close()
}
