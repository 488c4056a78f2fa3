package bookmark

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Service owns the bookmark set: unique employee IDs, insertion order
// preserved for display. Every mutation rewrites the durable store.
type Service struct {
	mu     sync.Mutex
	ids    []int
	index  map[int]struct{}
	store  Store
	logger *zap.Logger
}

// NewService reads the store once. A malformed or unreadable value is
// logged and treated as an empty set rather than surfaced.
func NewService(ctx context.Context, store Store, logger ...*zap.Logger) *Service {
	l := zap.L().Named("bookmark.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bookmark.service")
	}

	s := &Service{
		store:  store,
		index:  make(map[int]struct{}),
		logger: l,
	}

	ids, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			l.Warn("discarding malformed bookmark state")
		} else {
			l.Warn("bookmark state unavailable, starting empty", zap.Error(err))
		}
		ids = nil
	}
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}

	return s
}

// Add inserts id. Idempotent; already-present IDs are a no-op and do not
// rewrite the store.
func (s *Service) Add(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; ok {
		return nil
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return s.persistLocked(ctx)
}

// Remove deletes id. Idempotent.
func (s *Service) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return nil
	}
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return s.persistLocked(ctx)
}

func (s *Service) IsBookmarked(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[id]
	return ok
}

// List returns the IDs in insertion order.
func (s *Service) List() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the current set size.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Service) persistLocked(ctx context.Context) error {
	snapshot := make([]int, len(s.ids))
	copy(snapshot, s.ids)
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Warn("bookmark persist failed", zap.Error(err))
		return err
	}
	return nil
}
