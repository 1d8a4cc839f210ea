package analytics

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
	draws []model.Draw
	err   error
}

func (r *fakeRepo) ListByGame(_ context.Context, _ string) ([]model.Draw, error) {
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

func (r *fakeRepo) Insert(_ context.Context, _ string, _ model.Draw) (bool, error) {
	return false, r.err
}

func (r *fakeRepo) Count(_ context.Context, _ string) (int, error) {
	return len(r.draws), r.err
}

func draw(contest int, numbers ...int) model.Draw {
	return model.Draw{Contest: contest, Date: time.Date(2024, 1, contest, 0, 0, 0, 0, time.UTC), Numbers: numbers}
}

func historyRepo() *fakeRepo {
	return &fakeRepo{draws: []model.Draw{
		draw(1, 1, 2, 3),
		draw(2, 1, 2, 4),
		draw(3, 1, 5, 6),
		draw(4, 2, 5, 9),
	}}
}

func TestFrequencyCoversFullRange(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	entries, err := s.Frequency(context.Background(), smallGame)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	byNumber := map[int]model.FrequencyEntry{}
	for _, e := range entries {
		byNumber[e.Number] = e
	}

	assert.Equal(t, 3, byNumber[1].Count)
	assert.Equal(t, 3, byNumber[2].Count)
	assert.Equal(t, 2, byNumber[5].Count)
	// Never drawn numbers still appear with a zero count.
	assert.Equal(t, 0, byNumber[7].Count)
	assert.Equal(t, 0.0, byNumber[7].Percent)
	assert.InDelta(t, 75.0, byNumber[1].Percent, 1e-9)
}

func TestFrequencyEmptyHistory(t *testing.T) {
	s := NewAnalyticsService(&fakeRepo{})

	entries, err := s.Frequency(context.Background(), smallGame)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	for _, e := range entries {
		assert.Zero(t, e.Count)
		assert.Zero(t, e.Percent)
	}
}

func TestDelayOrdersMostOverdueFirst(t *testing.T) {
	// Number 3 appears in contests 1 and 2, then disappears for eight
	// contests against a mean gap of one. Number 1 appears in every contest.
	repo := &fakeRepo{draws: []model.Draw{
		draw(1, 1, 2, 3),
		draw(2, 1, 2, 3),
		draw(3, 1, 2, 4),
		draw(10, 1, 2, 4),
	}}
	s := NewAnalyticsService(repo)

	entries, err := s.Delay(context.Background(), smallGame, 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	assert.Equal(t, 3, entries[0].Number)
	assert.Equal(t, 8, entries[0].CurrentGap)
	assert.Equal(t, 1.0, entries[0].MeanGap)
	assert.Equal(t, model.DelayCritical, entries[0].Status)

	for _, e := range entries {
		if e.Number == 1 {
			assert.Zero(t, e.CurrentGap)
			assert.Equal(t, model.DelayNormal, e.Status)
		}
	}
}

func TestDelaySkipsSingleAppearances(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{
		draw(1, 1, 2, 3),
		draw(2, 1, 2, 4),
	}}
	s := NewAnalyticsService(repo)

	entries, err := s.Delay(context.Background(), smallGame, 0)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, 3, e.Number)
		assert.NotEqual(t, 4, e.Number)
	}
}

func TestDelayTopNLimits(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	entries, err := s.Delay(context.Background(), smallGame, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParityBuckets(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	buckets, err := s.Parity(context.Background(), smallGame)
	require.NoError(t, err)

	// Draws have 1, 2, 2 and 1 even numbers.
	require.Len(t, buckets, 2)
	assert.Equal(t, model.ParityBucket{Evens: 1, Odds: 2, Count: 2, Percent: 50}, buckets[0])
	assert.Equal(t, model.ParityBucket{Evens: 2, Odds: 1, Count: 2, Percent: 50}, buckets[1])
}

func TestSumStats(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	stats, err := s.SumStats(context.Background(), smallGame)
	require.NoError(t, err)

	// Sums are 6, 7, 12 and 16.
	assert.InDelta(t, 10.25, stats.Mean, 1e-9)
	assert.InDelta(t, 9.5, stats.Median, 1e-9)
	assert.Equal(t, 6, stats.Min)
	assert.Equal(t, 16, stats.Max)
	assert.Greater(t, stats.StdDev, 0.0)
	assert.LessOrEqual(t, stats.Q1, stats.Q3)
}

func TestSumStatsEmptyHistory(t *testing.T) {
	s := NewAnalyticsService(&fakeRepo{})

	stats, err := s.SumStats(context.Background(), smallGame)
	require.NoError(t, err)
	assert.Equal(t, &model.SumStats{}, stats)
}

func TestFrequentPairs(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	groups, err := s.FrequentGroups(context.Background(), smallGame, 2, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Across {1,2,3} {1,2,4} {1,5,6} {2,5,9} only the pair (1,2) repeats.
	assert.Equal(t, []int{1, 2}, groups[0].Numbers)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 1, groups[1].Count)
}

func TestFrequentTrios(t *testing.T) {
	repo := &fakeRepo{draws: []model.Draw{
		draw(1, 1, 2, 3),
		draw(2, 1, 2, 3),
		draw(3, 4, 5, 6),
	}}
	s := NewAnalyticsService(repo)

	groups, err := s.FrequentGroups(context.Background(), smallGame, 3, 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{1, 2, 3}, groups[0].Numbers)
	assert.Equal(t, 2, groups[0].Count)
}

func TestFrequentGroupsRejectsBadSize(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	_, err := s.FrequentGroups(context.Background(), smallGame, 4, 5)
	assert.Error(t, err)
}

func TestCompareMatchesAndOriginality(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	cmp, err := s.Compare(context.Background(), smallGame, []int{3, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, cmp.Numbers)
	assert.Equal(t, 6, cmp.Sum)
	assert.Equal(t, 1, cmp.EvenCount)
	assert.Equal(t, 2, cmp.OddCount)
	// {1,2,3} matches draw 1 exactly, shares two numbers with draw 2 and one
	// with draws 3 and 4.
	assert.Equal(t, 1, cmp.ExactMatches)
	assert.Equal(t, 1, cmp.NearMatches)
	assert.Equal(t, 2, cmp.GoodMatches)
	assert.Equal(t, 0.0, cmp.Originality)
}

func TestCompareEmptyHistoryIsFullyOriginal(t *testing.T) {
	s := NewAnalyticsService(&fakeRepo{})

	cmp, err := s.Compare(context.Background(), smallGame, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 100.0, cmp.Originality)
}

func TestCompareValidatesInput(t *testing.T) {
	s := NewAnalyticsService(historyRepo())

	for name, numbers := range map[string][]int{
		"wrong count":  {1, 2},
		"out of range": {1, 2, 11},
		"duplicated":   {1, 2, 2},
	} {
		_, err := s.Compare(context.Background(), smallGame, numbers)
		assert.Error(t, err, name)
	}
}
