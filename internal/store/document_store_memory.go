// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryDocumentStore keeps documents in process memory. Used for tests and
// the "memory" driver.
type memoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]Document
	now  func() time.Time
}

// NewMemoryDocumentStore returns an empty in-process [DocumentStore].
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{
		docs: make(map[string]map[string]Document),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryDocumentStore) Get(ctx context.Context, collection, key string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[collection][key]
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	return doc.clone(), nil
}

func (m *memoryDocumentStore) CreateIfAbsent(ctx context.Context, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	coll, ok := m.docs[doc.Collection]
	if !ok {
		coll = make(map[string]Document)
		m.docs[doc.Collection] = coll
	}
	if _, exists := coll[doc.Key]; exists {
		return Document{}, ErrDocumentExists
	}

	now := m.now()
	doc = doc.clone()
	doc.Version = 1
	doc.CreatedAt = now
	doc.UpdatedAt = now
	coll[doc.Key] = doc
	return doc.clone(), nil
}

func (m *memoryDocumentStore) CompareAndSwap(ctx context.Context, doc Document, expectedVersion int64) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.docs[doc.Collection][doc.Key]
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	if current.Version != expectedVersion {
		return Document{}, ErrVersionConflict
	}

	doc = doc.clone()
	doc.Version = current.Version + 1
	doc.CreatedAt = current.CreatedAt
	doc.UpdatedAt = m.now()
	m.docs[doc.Collection][doc.Key] = doc
	return doc.clone(), nil
}

func (m *memoryDocumentStore) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[collection][key]; !ok {
		return ErrDocumentNotFound
	}
	delete(m.docs[collection], key)
	return nil
}

func (m *memoryDocumentStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0, len(m.docs[collection]))
	for _, doc := range m.docs[collection] {
		docs = append(docs, doc.clone())
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Key < docs[j].Key })
	return docs, nil
}

func (m *memoryDocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *memoryDocumentStore) Close() error {
	return nil
}
