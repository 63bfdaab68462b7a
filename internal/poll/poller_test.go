package poll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renca-fc/league-console/internal/domain/category"
	"github.com/renca-fc/league-console/internal/domain/match"
)

type stubCategoryRepo struct {
	categories []category.Category
}

func (s *stubCategoryRepo) List(_ context.Context) ([]category.Category, error) {
	return s.categories, nil
}

type recordingMatchRepo struct {
	match.Repository

	mu    sync.Mutex
	calls map[string]int
}

func (s *recordingMatchRepo) ListByCategory(_ context.Context, categoryID int64, series string) ([]match.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[series]++
	return nil, nil
}

func (s *recordingMatchRepo) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, count := range s.calls {
		n += count
	}
	return n
}

func TestRunnerRefreshFansOutPerSeries(t *testing.T) {
	categoryRepo := &stubCategoryRepo{categories: []category.Category{
		{ID: 1, Name: "Sub 15"},
		{ID: 2, Name: "Primera", ParentCategory: "Adultos"},
	}}
	matchRepo := &recordingMatchRepo{}
	runner := NewRunner(categoryRepo, matchRepo, Config{Workers: 2}, nil)

	runner.refreshAll(context.Background())

	// One read for the youth category, one per series for the adult one.
	require.Equal(t, 3, matchRepo.total())
	assert.Equal(t, 1, matchRepo.calls[""])
	assert.Equal(t, 1, matchRepo.calls["HONOR"])
	assert.Equal(t, 1, matchRepo.calls["ASCENSO"])
}

func TestRunnerStopTerminatesLoop(t *testing.T) {
	categoryRepo := &stubCategoryRepo{categories: []category.Category{{ID: 1, Name: "Sub 15"}}}
	matchRepo := &recordingMatchRepo{}
	runner := NewRunner(categoryRepo, matchRepo, Config{Interval: 5 * time.Millisecond}, nil)

	runner.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	runner.Stop()

	refreshed := matchRepo.total()
	assert.Greater(t, refreshed, 0)

	// No cycles run after Stop returns.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, refreshed, matchRepo.total())
}
