package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-sources/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-sources/internal/logger"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService persists the ordered collection source list in one file.
//
// Every call becomes a transaction: load the whole list, change it in memory,
// write the whole list back. Transactions from one instance run one at a time
// on a dedicated worker in submission order, and each one holds the exclusive
// directory lock so other processes cannot interleave.
type CollectionService struct {
	path    string
	backend driven.Persistence
	locks   *LockCoordinator
	log     logger.Logger

	jobs      chan *transaction
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// transaction is one queued load, apply, store cycle.
type transaction struct {
	op     string
	write  bool
	apply  func(domain.CollectionSources) (domain.CollectionSources, error)
	result chan error
}

// NewCollectionService creates a collection service for the file at path and
// starts its worker. Call Close to stop it.
func NewCollectionService(backend driven.Persistence, path string) (*CollectionService, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: nil persistence backend", domain.ErrInvalidInput)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty storage path", domain.ErrInvalidInput)
	}

	s := &CollectionService{
		path:    filepath.Clean(path),
		backend: backend,
		locks:   NewLockCoordinator(backend),
		log:     logger.With("collection-store"),
		jobs:    make(chan *transaction),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.loop()
	return s, nil
}

// Path returns the storage file path.
func (s *CollectionService) Path() string {
	return s.path
}

// List returns every source in stored order.
func (s *CollectionService) List(ctx context.Context) ([]domain.CollectionSource, error) {
	var out domain.CollectionSources
	err := s.submit(ctx, "list", false, func(current domain.CollectionSources) (domain.CollectionSources, error) {
		out = current.Clone()
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Add removes any equal source and inserts source at order.
// A nil order, or one outside [0, count], appends at the end.
func (s *CollectionService) Add(ctx context.Context, source domain.CollectionSource, order *int) error {
	if err := source.Validate(); err != nil {
		return err
	}
	return s.submit(ctx, "add", true, func(current domain.CollectionSources) (domain.CollectionSources, error) {
		return current.Place(source, order), nil
	})
}

// Remove deletes the source equal to source. Removing an absent source succeeds.
func (s *CollectionService) Remove(ctx context.Context, source domain.CollectionSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	return s.submit(ctx, "remove", true, func(current domain.CollectionSources) (domain.CollectionSources, error) {
		return current.Without(source), nil
	})
}

// Move repositions source to index to, appending when to is out of range.
// A source that was not stored is inserted.
func (s *CollectionService) Move(ctx context.Context, source domain.CollectionSource, to int) error {
	if err := source.Validate(); err != nil {
		return err
	}
	return s.submit(ctx, "move", true, func(current domain.CollectionSources) (domain.CollectionSources, error) {
		return current.Place(source, &to), nil
	})
}

// Exists reports whether a source equal to source is stored.
func (s *CollectionService) Exists(ctx context.Context, source domain.CollectionSource) (bool, error) {
	var found bool
	err := s.submit(ctx, "exists", false, func(current domain.CollectionSources) (domain.CollectionSources, error) {
		found = current.Contains(source)
		return current, nil
	})
	return found, err
}

// Close stops the worker after the running transaction finishes.
// Calls that have not started fail with domain.ErrStoreClosed.
func (s *CollectionService) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	<-s.stopped
	return nil
}

// submit queues a transaction and waits for its result. ctx only bounds the
// wait for a queue slot; a queued transaction always runs to completion.
func (s *CollectionService) submit(
	ctx context.Context,
	op string,
	write bool,
	apply func(domain.CollectionSources) (domain.CollectionSources, error),
) error {
	select {
	case <-s.done:
		return domain.ErrStoreClosed
	default:
	}

	tx := &transaction{op: op, write: write, apply: apply, result: make(chan error, 1)}
	select {
	case s.jobs <- tx:
	case <-s.done:
		return domain.ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-tx.result:
		return err
	case <-s.stopped:
		// The worker may have finished tx just before exiting.
		select {
		case err := <-tx.result:
			return err
		default:
			return domain.ErrStoreClosed
		}
	}
}

func (s *CollectionService) loop() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			return
		case tx := <-s.jobs:
			tx.result <- s.execute(tx)
		}
	}
}

func (s *CollectionService) execute(tx *transaction) error {
	id := uuid.NewString()
	start := time.Now()
	s.log.Debug("tx %s %s begin path=%s", id, tx.op, s.path)

	err := s.locks.Do(s.path, func() error {
		current, err := s.load()
		if err != nil {
			return err
		}
		next, err := tx.apply(current)
		if err != nil {
			return err
		}
		if !tx.write {
			return nil
		}
		return s.store(next)
	})

	if err != nil {
		s.log.Warn("tx %s %s failed after %s: %v", id, tx.op, time.Since(start), err)
		return err
	}
	s.log.Debug("tx %s %s committed in %s", id, tx.op, time.Since(start))
	return nil
}

// load reads the current list. Caller must hold the lock.
func (s *CollectionService) load() (domain.CollectionSources, error) {
	exists, err := s.backend.Exists(s.path)
	if err != nil {
		return nil, &domain.IOError{Op: "stat", Path: s.path, Err: err}
	}
	if !exists {
		return domain.CollectionSources{}, nil
	}

	data, err := s.backend.ReadFile(s.path)
	if err != nil {
		return nil, &domain.IOError{Op: "read", Path: s.path, Err: err}
	}
	return DecodeSources(data)
}

// store rewrites the whole file. Caller must hold the lock.
func (s *CollectionService) store(sources domain.CollectionSources) error {
	data, err := EncodeSources(sources)
	if err != nil {
		return err
	}
	if err := s.backend.WriteFile(s.path, data); err != nil {
		return &domain.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
