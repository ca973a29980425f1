// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package art

import (
	"context"
	"sync"
)

// SyncIndex guards an Index with a single lock so it can be shared between
// goroutines. Writers are exclusive because a promotion swaps nodes out from
// under any concurrent reader.
type SyncIndex struct {
	mu  sync.RWMutex
	idx *Index
}

// NewSync wraps idx. The caller must not use idx directly afterwards.
func NewSync(idx *Index) *SyncIndex {
	return &SyncIndex{idx: idx}
}

// Add indexes value under the write lock.
func (s *SyncIndex) Add(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx.Add(value)
}

// AddAll adds values one by one and stops early when ctx is done.
func (s *SyncIndex) AddAll(ctx context.Context, values []string) error {
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Add(v)
	}
	return nil
}

// Exists reports whether value matches the index, under the read lock.
func (s *SyncIndex) Exists(value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Exists(value)
}

// Stats returns the structural counters of the index, under the read lock.
func (s *SyncIndex) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Stats()
}
