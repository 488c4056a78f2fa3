package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	employeeerrors "hrboard/internal/employee/errors"
	"hrboard/internal/events"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	directoryCacheKey = "hr:employees:directory"
	directoryCacheTTL = 30 * time.Minute
)

// Fetcher is the upstream surface the service depends on.
type Fetcher interface {
	FetchUsers(ctx context.Context, limit int) ([]User, error)
	FetchUser(ctx context.Context, id int) (User, error)
}

type Service interface {
	// Snapshot returns the enriched directory, loading it on first use.
	Snapshot(ctx context.Context) ([]Employee, error)
	// Refresh bypasses the cache and reloads from upstream.
	Refresh(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	AddFeedback(ctx context.Context, id int, req AddFeedbackRequest) (Employee, error)
}

type service struct {
	fetcher   Fetcher
	enricher  *Enricher
	rdb       *redis.Client
	publisher EventPublisher
	logger    *zap.Logger
	limit     int

	sf singleflight.Group

	mu        sync.RWMutex
	loaded    bool
	employees []Employee
}

func NewService(fetcher Fetcher, enricher *Enricher, rdb *redis.Client, publisher EventPublisher, limit int, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	if limit <= 0 {
		limit = 20
	}
	return &service{
		fetcher:   fetcher,
		enricher:  enricher,
		rdb:       rdb,
		publisher: publisher,
		logger:    l,
		limit:     limit,
	}
}

func (s *service) Snapshot(ctx context.Context) ([]Employee, error) {
	s.mu.RLock()
	if s.loaded {
		out := s.copyLocked()
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	// Concurrent first-hit requests share one load.
	v, err, _ := s.sf.Do("directory", func() (any, error) {
		return s.load(ctx, false)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Employee), nil
}

func (s *service) Refresh(ctx context.Context) ([]Employee, error) {
	v, err, _ := s.sf.Do("directory", func() (any, error) {
		return s.load(ctx, true)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Employee), nil
}

func (s *service) load(ctx context.Context, force bool) ([]Employee, error) {
	if !force {
		if cached, ok := s.readCache(ctx); ok {
			s.mu.Lock()
			s.employees = cached
			s.loaded = true
			out := s.copyLocked()
			s.mu.Unlock()
			return out, nil
		}
	}

	users, err := s.fetcher.FetchUsers(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	enriched := make([]Employee, 0, len(users))
	for _, u := range users {
		enriched = append(enriched, s.enricher.Enrich(u))
	}

	s.mu.Lock()
	s.employees = enriched
	s.loaded = true
	out := s.copyLocked()
	s.mu.Unlock()

	s.writeCache(ctx, enriched)
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id int) (Employee, error) {
	if id < 1 {
		return Employee{}, employeeerrors.ErrInvalidEmployeeID
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return Employee{}, err
	}
	for _, e := range snapshot {
		if e.ID == id {
			return e, nil
		}
	}

	// Not in the loaded window; the upstream may still know it.
	user, err := s.fetcher.FetchUser(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	emp := s.enricher.Enrich(user)

	s.mu.Lock()
	s.employees = append(s.employees, emp)
	all := s.copyLocked()
	s.mu.Unlock()
	s.writeCache(ctx, all)

	return emp, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	if _, err := s.Snapshot(ctx); err != nil {
		return Employee{}, err
	}

	s.mu.Lock()
	nextID := 1
	for _, e := range s.employees {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}

	user := User{
		ID:        nextID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Age:       req.Age,
		Username:  strings.ToLower(req.FirstName + req.LastName),
	}
	emp := s.enricher.EnrichWithDepartment(user, req.Department)

	s.employees = append(s.employees, emp)
	all := s.copyLocked()
	s.mu.Unlock()

	s.writeCache(ctx, all)

	if err := s.publisher.PublishEmployeeCreated(ctx, events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID,
		Department: emp.Department,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		// The record is already live; event delivery is best effort.
		s.logger.Warn("publish employee created failed", zap.Int("employee_id", emp.ID), zap.Error(err))
	}

	return emp, nil
}

func (s *service) AddFeedback(ctx context.Context, id int, req AddFeedbackRequest) (Employee, error) {
	if _, err := s.Snapshot(ctx); err != nil {
		return Employee{}, err
	}

	fb := s.enricher.NewFeedback(req.From, req.Comment, req.Rating)

	s.mu.Lock()
	idx := -1
	for i, e := range s.employees {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	// Replace the slice instead of appending in place so snapshots handed
	// out earlier keep their view.
	existing := s.employees[idx].Feedback
	updated := make([]Feedback, 0, len(existing)+1)
	updated = append(updated, existing...)
	updated = append(updated, fb)
	s.employees[idx].Feedback = updated

	emp := s.employees[idx]
	all := s.copyLocked()
	s.mu.Unlock()

	s.writeCache(ctx, all)
	return emp, nil
}

func (s *service) readCache(ctx context.Context) ([]Employee, bool) {
	val, err := s.rdb.Get(ctx, directoryCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("directory cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var cached []Employee
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		// Malformed persisted state: discard, never surface.
		s.logger.Warn("discarding malformed directory cache", zap.Error(err))
		return nil, false
	}
	if len(cached) == 0 {
		return nil, false
	}
	return cached, true
}

func (s *service) writeCache(ctx context.Context, employees []Employee) {
	payload, err := json.Marshal(employees)
	if err != nil {
		s.logger.Warn("directory cache marshal failed", zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, directoryCacheKey, payload, directoryCacheTTL).Err(); err != nil {
		s.logger.Warn("directory cache write failed", zap.Error(err))
	}
}

func (s *service) copyLocked() []Employee {
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}
