package storage

import (
	"context"
	"sort"
	"sync"

	"pelagos/internal/model"
)

// MemoryStore keeps encoded records in process memory. It is the default
// backend and the reference implementation for the Store contract.
type MemoryStore struct {
	mu          sync.RWMutex
	runs        map[string][]byte
	populations map[string][]byte
	speciesLogs map[string][]byte
	genStats    map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:        map[string][]byte{},
		populations: map[string][]byte{},
		speciesLogs: map[string][]byte{},
		genStats:    map[string][]byte{},
	}
}

func (s *MemoryStore) Init(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.RunRecord) error {
	payload, err := EncodeRun(run)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.RunID] = payload
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, runID string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	payload, ok := s.runs[runID]
	s.mu.RUnlock()
	if !ok {
		return model.RunRecord{}, false, nil
	}
	run, err := DecodeRun(payload)
	if err != nil {
		return model.RunRecord{}, false, err
	}
	return run, true, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]model.RunRecord, error) {
	s.mu.RLock()
	payloads := make([][]byte, 0, len(s.runs))
	for _, payload := range s.runs {
		payloads = append(payloads, payload)
	}
	s.mu.RUnlock()

	runs := make([]model.RunRecord, 0, len(payloads))
	for _, payload := range payloads {
		run, err := DecodeRun(payload)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAtUTC == runs[j].CreatedAtUTC {
			return runs[i].RunID < runs[j].RunID
		}
		return runs[i].CreatedAtUTC > runs[j].CreatedAtUTC
	})
	return runs, nil
}

func (s *MemoryStore) SavePopulation(_ context.Context, runID string, population model.Population) error {
	payload, err := EncodePopulation(population)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populations[runID] = payload
	return nil
}

func (s *MemoryStore) GetPopulation(_ context.Context, runID string) (model.Population, bool, error) {
	s.mu.RLock()
	payload, ok := s.populations[runID]
	s.mu.RUnlock()
	if !ok {
		return model.Population{}, false, nil
	}
	population, err := DecodePopulation(payload)
	if err != nil {
		return model.Population{}, false, err
	}
	return population, true, nil
}

func (s *MemoryStore) SaveSpeciesLog(_ context.Context, runID string, log []model.SpeciesLogEntry) error {
	payload, err := EncodeSpeciesLog(log)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speciesLogs[runID] = payload
	return nil
}

func (s *MemoryStore) GetSpeciesLog(_ context.Context, runID string) ([]model.SpeciesLogEntry, bool, error) {
	s.mu.RLock()
	payload, ok := s.speciesLogs[runID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	log, err := DecodeSpeciesLog(payload)
	if err != nil {
		return nil, false, err
	}
	return log, true, nil
}

func (s *MemoryStore) SaveGenerationStats(_ context.Context, runID string, stats []model.GenerationStats) error {
	payload, err := EncodeGenerationStats(stats)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genStats[runID] = payload
	return nil
}

func (s *MemoryStore) GetGenerationStats(_ context.Context, runID string) ([]model.GenerationStats, bool, error) {
	s.mu.RLock()
	payload, ok := s.genStats[runID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	stats, err := DecodeGenerationStats(payload)
	if err != nil {
		return nil, false, err
	}
	return stats, true, nil
}
