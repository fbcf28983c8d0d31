package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

// countingResourceProvider counts calls per resource so tests can assert
// that the cached loaders hit the network at most once.
type countingResourceProvider struct {
	questCalls       int
	challengeCalls   int
	achievementCalls int
	gameCalls        int

	err error
}

func (p *countingResourceProvider) GetQuests(ctx context.Context) (domain.QuestIndex, error) {
	p.questCalls++
	if p.err != nil {
		return nil, p.err
	}
	return domain.QuestIndex{"bedwars": {{ID: "q1", Name: "Quest"}}}, nil
}

func (p *countingResourceProvider) GetChallenges(ctx context.Context) (domain.ChallengeIndex, error) {
	p.challengeCalls++
	if p.err != nil {
		return nil, p.err
	}
	return domain.ChallengeIndex{"bedwars": {{ID: "c1", Name: "Challenge"}}}, nil
}

func (p *countingResourceProvider) GetAchievements(ctx context.Context) (domain.AchievementIndex, error) {
	p.achievementCalls++
	if p.err != nil {
		return nil, p.err
	}
	return domain.AchievementIndex{}, nil
}

func (p *countingResourceProvider) GetGames(ctx context.Context) (domain.GameInfoTable, error) {
	p.gameCalls++
	if p.err != nil {
		return nil, p.err
	}
	return testGames(), nil
}

func TestGetQuestIndexFetchesOnce(t *testing.T) {
	provider := &countingResourceProvider{}
	getQuests := app.BuildGetQuestIndexWithCache(cache.NewBasicCache[domain.QuestIndex](), provider)

	first, err := getQuests(context.Background())
	require.NoError(t, err)
	require.Contains(t, first, "bedwars")

	second, err := getQuests(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, 1, provider.questCalls)
}

func TestGetQuestIndexRetriesAfterFailure(t *testing.T) {
	provider := &countingResourceProvider{err: domain.ErrTemporarilyUnavailable}
	getQuests := app.BuildGetQuestIndexWithCache(cache.NewBasicCache[domain.QuestIndex](), provider)

	_, err := getQuests(context.Background())
	require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)

	// A failed fetch releases the claim so the next call tries again
	provider.err = nil
	index, err := getQuests(context.Background())
	require.NoError(t, err)
	require.Contains(t, index, "bedwars")

	require.Equal(t, 2, provider.questCalls)
}

func TestGetChallengeIndexFetchesOnce(t *testing.T) {
	provider := &countingResourceProvider{}
	getChallenges := app.BuildGetChallengeIndexWithCache(cache.NewBasicCache[domain.ChallengeIndex](), provider)

	_, err := getChallenges(context.Background())
	require.NoError(t, err)
	_, err = getChallenges(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, provider.challengeCalls)
}

func TestGetGameInfoTableSharedAcrossCallers(t *testing.T) {
	provider := &countingResourceProvider{}
	getGames := app.BuildGetGameInfoTableWithCache(cache.NewBasicCache[domain.GameInfoTable](), provider)

	for i := 0; i < 5; i++ {
		table, err := getGames(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Bed Wars", table.Name("BEDWARS"))
	}

	require.Equal(t, 1, provider.gameCalls)
}

func TestGetAchievementIndexPropagatesErrors(t *testing.T) {
	fetchErr := errors.New("boom")
	provider := &countingResourceProvider{err: fetchErr}
	getAchievements := app.BuildGetAchievementIndexWithCache(cache.NewBasicCache[domain.AchievementIndex](), provider)

	_, err := getAchievements(context.Background())
	require.ErrorIs(t, err, fetchErr)
}
