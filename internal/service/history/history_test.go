package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

type testGame struct {
	balls, min, max int
}

func (g testGame) Name() string             { return "Test Game" }
func (g testGame) Slug() string             { return "test_game" }
func (g testGame) APISlug() string          { return "testgame" }
func (g testGame) BallCount() int           { return g.balls }
func (g testGame) MinNumber() int           { return g.min }
func (g testGame) MaxNumber() int           { return g.max }
func (g testGame) TotalCombinations() int64 { return 0 }

var smallGame config.GameConfig = testGame{balls: 3, min: 1, max: 10}

type fakeRepo struct {
	draws     []model.Draw
	err       error
	listCalls int
}

func (r *fakeRepo) ListByGame(_ context.Context, _ string) ([]model.Draw, error) {
	r.listCalls++
	return r.draws, r.err
}

func (r *fakeRepo) ListRecent(_ context.Context, _ string, limit int) ([]model.Draw, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := append([]model.Draw(nil), r.draws...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) LastContest(_ context.Context, _ string) (int, error) {
	if len(r.draws) == 0 {
		return 0, r.err
	}
	return r.draws[len(r.draws)-1].Contest, r.err
}

func (r *fakeRepo) Insert(_ context.Context, _ string, d model.Draw) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, stored := range r.draws {
		if stored.Contest == d.Contest {
			return false, nil
		}
	}
	r.draws = append(r.draws, d)
	return true, nil
}

func (r *fakeRepo) Count(_ context.Context, _ string) (int, error) {
	return len(r.draws), r.err
}

func draw(contest int, numbers ...int) model.Draw {
	return model.Draw{
		Contest: contest,
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, contest),
		Numbers: numbers,
	}
}

func TestDrawsNewestFirst(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{draw(1, 1, 2, 3), draw(2, 4, 5, 6), draw(3, 7, 8, 9)}}
	s := NewHistoryService(repo, 0)

	all, err := s.Draws(context.Background(), smallGame, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Contest)

	limited, err := s.Draws(context.Background(), smallGame, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, 3, limited[0].Contest)
}

func TestAddDrawValidatesAndSorts(t *testing.T) {
	repo := &fakeRepo{}
	s := NewHistoryService(repo, 0)

	inserted, err := s.AddDraw(context.Background(), smallGame, model.Draw{Contest: 1, Numbers: []int{9, 1, 5}})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, []int{1, 5, 9}, repo.draws[0].Numbers)

	// Same contest again is a quiet no-op.
	inserted, err = s.AddDraw(context.Background(), smallGame, model.Draw{Contest: 1, Numbers: []int{2, 3, 4}})
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestAddDrawRejectsMalformed(t *testing.T) {
	s := NewHistoryService(&fakeRepo{}, 0)

	cases := map[string]model.Draw{
		"zero contest": {Contest: 0, Numbers: []int{1, 2, 3}},
		"wrong count":  {Contest: 1, Numbers: []int{1, 2}},
		"out of range": {Contest: 1, Numbers: []int{1, 2, 11}},
		"duplicate":    {Contest: 1, Numbers: []int{1, 2, 2}},
	}
	for name, d := range cases {
		_, err := s.AddDraw(context.Background(), smallGame, d)
		assert.Error(t, err, name)
	}
}

func TestKPIs(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{draw(10, 1, 2, 3), draw(20, 4, 5, 6)}}
	s := NewHistoryService(repo, 0)

	kpis, err := s.KPIs(context.Background(), smallGame)
	require.NoError(t, err)

	assert.Equal(t, "Test Game", kpis.GameName)
	assert.Equal(t, 2, kpis.TotalContests)
	assert.Equal(t, 10, kpis.FirstContest)
	assert.Equal(t, 20, kpis.LastContest)
	assert.Equal(t, []int{4, 5, 6}, kpis.LastNumbers)
}

func TestKPIsEmptyHistory(t *testing.T) {
	s := NewHistoryService(&fakeRepo{}, 0)

	kpis, err := s.KPIs(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Zero(t, kpis.TotalContests)
	assert.Empty(t, kpis.LastNumbers)
}

func TestContextIsCachedUntilInvalidated(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{draw(1, 1, 2, 3), draw(2, 1, 2, 4)}}
	s := NewHistoryService(repo, time.Hour)

	first, err := s.Context(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Contests)
	assert.Equal(t, 1, repo.listCalls)

	// Served from the snapshot, no second store round trip.
	_, err = s.Context(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	s.Invalidate(smallGame.Slug())
	_, err = s.Context(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestContextExpiresWithTTL(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{draw(1, 1, 2, 3), draw(2, 1, 2, 4)}}
	s := NewHistoryService(repo, time.Nanosecond)

	_, err := s.Context(context.Background(), smallGame)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = s.Context(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}
