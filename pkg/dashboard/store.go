package dashboard

import (
	"context"
	"slices"
	"sync"

	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/missions"
)

// Loader produces the full mission record set.
type Loader func(ctx context.Context) ([]missions.Record, error)

// Options carries the defaults applied when a view request leaves a
// parameter unset.
type Options struct {
	Roster           []string
	StartYear        int
	EndYear          int
	TopOrganizations int
	TopLocations     int
}

// DefaultOptions mirrors the defaults of the missions package.
func DefaultOptions() Options {
	return Options{
		Roster:           missions.DefaultRoster(),
		StartYear:        missions.DefaultStartYear,
		EndYear:          missions.DefaultEndYear,
		TopOrganizations: missions.DefaultTopOrganizations,
		TopLocations:     missions.DefaultTopLocations,
	}
}

// Store holds the dataset once it has been loaded and answers view
// requests against it. Views are recomputed from the full record set on
// every call.
type Store struct {
	opts Options

	once    sync.Once
	ready   chan struct{}
	mu      sync.RWMutex
	records []missions.Record
	loadErr error
}

func NewStore(opts Options) *Store {
	opts.Roster = slices.Clone(opts.Roster)
	return &Store{opts: opts, ready: make(chan struct{})}
}

// Set records the outcome of loading. Only the first call has an effect.
// A successful load of no records is an empty dataset, not a failure.
func (s *Store) Set(records []missions.Record, err error) {
	if err == nil && records == nil {
		records = []missions.Record{}
	}
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.records = records
		s.loadErr = err
		close(s.ready)
	})
}

// Load runs loader in the background and stores its result.
func (s *Store) Load(ctx context.Context, loader Loader) {
	log := klog.FromContext(ctx)
	go func() {
		records, err := loader(ctx)
		s.Set(records, err)
		if err != nil {
			log.Error(err, "error loading dataset")
			return
		}
		log.Info("dataset loaded", "records", len(records))
	}()
}

// Ready reports whether loading has finished, successfully or not.
func (s *Store) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Wait blocks until the dataset is available or ctx is done.
func (s *Store) Wait(ctx context.Context) ([]missions.Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ready:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.records, nil
}

// Options returns a copy of the store defaults.
func (s *Store) Options() Options {
	opts := s.opts
	opts.Roster = slices.Clone(s.opts.Roster)
	return opts
}
