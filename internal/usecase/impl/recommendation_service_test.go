package impl

import (
	"context"
	"testing"

	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lodgingLover() usecase.SavePreferencesInput {
	return usecase.SavePreferencesInput{
		UserID:               "u1",
		Name:                 "Ana",
		PreferredCategories:  []string{"alojamiento"},
		PreferredDepartments: []string{"Boyacá"},
		TravelStyle:          "relajacion",
	}
}

func itemIDs(result *entity.RecommendationResult) []string {
	ids := make([]string, len(result.Items))
	for i, item := range result.Items {
		ids[i] = item.Destination.ID
	}

	return ids
}

func TestRecommendationService_UnknownUser(t *testing.T) {
	fx := createEngine(t, nil)

	_, err := fx.recommendations.Recommend(context.Background(), "ghost", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestRecommendationService_ContentRanking(t *testing.T) {
	catalog := sampleCatalog()
	fx := createEngine(t, catalog)
	fx.savePrefs(t, lodgingLover())

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 10)
	require.NoError(t, err)

	assert.Equal(t, entity.StrategyHybrid, result.Strategy)
	assert.Equal(t, []string{"d1", "d6", "d2", "d3"}, itemIDs(result))

	first := result.Items[0]
	assert.Equal(t, 6, first.ContentScore)
	assert.Equal(t, []entity.Source{entity.SourceContent}, first.Sources)
	assert.Equal(t, "matches your interest in alojamiento · located in Boyacá", first.Reason)
	assert.Equal(t, "Boyacá", first.Destination.DepartmentDisplay)
	assert.Equal(t, "VILLA DE LEYVA, Boyacá", first.Destination.Location)

	assert.Equal(t, "located in Boyacá", result.Items[3].Reason)
	assert.Empty(t, catalog[0].Reason, "catalog records are never annotated in place")
}

func TestRecommendationService_ExcludesInteractedDestinations(t *testing.T) {
	fx := createEngine(t, sampleCatalog())
	fx.savePrefs(t, lodgingLover())
	fx.track(t, "u1", "d1", entity.ActionView)
	fx.track(t, "u1", "d6", entity.ActionSave)

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"d2", "d3"}, itemIDs(result))
}

func TestRecommendationService_CollaborativeFirst(t *testing.T) {
	fx := createEngine(t, sampleCatalog())
	fx.savePrefs(t, lodgingLover())
	fx.savePrefs(t, usecase.SavePreferencesInput{
		UserID:               "u2",
		PreferredCategories:  []string{"Alojamiento"},
		PreferredDepartments: []string{"BOYACA"},
	})
	fx.savePrefs(t, usecase.SavePreferencesInput{
		UserID:               "u3",
		PreferredCategories:  []string{"museo"},
		PreferredDepartments: []string{"ANTIOQUIA"},
	})

	fx.track(t, "u2", "d5", entity.ActionLike)
	fx.track(t, "u2", "d2", entity.ActionLike)
	fx.track(t, "u2", "ghost-rnt", entity.ActionLike)
	fx.track(t, "u3", "d4", entity.ActionLike)

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 10)
	require.NoError(t, err)

	assert.Equal(t, entity.StrategyHybrid, result.Strategy)
	assert.Equal(t, []string{"d5", "d2", "d1", "d6", "d3"}, itemIDs(result))

	assert.Equal(t, "recommended by similar users", result.Items[0].Reason)
	assert.True(t, result.Items[0].HasSource(entity.SourceCollaborative))

	d2 := result.Items[1]
	assert.Equal(t, []entity.Source{entity.SourceCollaborative, entity.SourceContent}, d2.Sources)
	assert.Equal(t, "recommended by similar users · matches your interest in alojamiento", d2.Reason)
}

func TestRecommendationService_LimitTruncatesMergedList(t *testing.T) {
	fx := createEngine(t, sampleCatalog())
	fx.savePrefs(t, lodgingLover())
	fx.savePrefs(t, usecase.SavePreferencesInput{UserID: "u2", PreferredDepartments: []string{"Boyaca"}})
	fx.track(t, "u2", "d5", entity.ActionLike)

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"d5", "d1"}, itemIDs(result))
}

func TestRecommendationService_PopularityFallback(t *testing.T) {
	fx := createEngine(t, sampleCatalog())
	fx.savePrefs(t, usecase.SavePreferencesInput{
		UserID:               "newbie",
		PreferredCategories:  []string{"museo"},
		PreferredDepartments: []string{"ANTIOQUIA"},
	})

	fx.track(t, "anon-1", "d4", entity.ActionView)
	fx.track(t, "anon-1", "d4", entity.ActionView)
	fx.track(t, "anon-2", "d4", entity.ActionLike)
	fx.track(t, "anon-2", "d3", entity.ActionLike)
	fx.track(t, "anon-2", "d2", entity.ActionSave)
	fx.track(t, "newbie", "d5", entity.ActionView)

	result, err := fx.recommendations.Recommend(context.Background(), "newbie", 0)
	require.NoError(t, err)

	assert.Equal(t, entity.StrategyPopularityFallback, result.Strategy)
	assert.Equal(t, []string{"d4", "d3", "d1", "d2", "d6"}, itemIDs(result))
	assert.Equal(t, 3, result.Items[0].Destination.InteractionCount)
	for _, item := range result.Items {
		assert.Equal(t, "popular in the region", item.Reason)
		assert.Equal(t, []entity.Source{entity.SourcePopularity}, item.Sources)
	}
}

func TestRecommendationService_CatalogUnavailable(t *testing.T) {
	fx := createEngine(t, nil)
	fx.savePrefs(t, lodgingLover())
	fx.catalog.EXPECT().ListDestinations(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: i/o timeout"))

	_, err := fx.recommendations.Recommend(context.Background(), "u1", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogUnavailable))
}

func TestRecommendationService_EmptyCatalog(t *testing.T) {
	fx := createEngine(t, []*entity.Destination{})
	fx.savePrefs(t, lodgingLover())

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 5)
	require.NoError(t, err)

	assert.Equal(t, entity.StrategyPopularityFallback, result.Strategy)
	assert.Empty(t, result.Items)
}

func TestRecommendationService_KeepsTopSimilarUsers(t *testing.T) {
	fx := createEngine(t, sampleCatalog())
	prefs := func(userID string) usecase.SavePreferencesInput {
		return usecase.SavePreferencesInput{
			UserID:               userID,
			PreferredCategories:  []string{"museo"},
			PreferredDepartments: []string{"ANTIOQUIA"},
			TravelStyle:          "gastronomia",
		}
	}

	// Shares only the travel style, saved first so insertion order alone cannot rank it.
	fx.savePrefs(t, usecase.SavePreferencesInput{UserID: "weak", TravelStyle: "gastronomia"})
	fx.savePrefs(t, prefs("u1"))
	for _, id := range []string{"u2", "u3", "u4", "u5"} {
		fx.savePrefs(t, prefs(id))
	}

	fx.track(t, "weak", "d5", entity.ActionLike)
	fx.track(t, "u2", "d1", entity.ActionLike)
	fx.track(t, "u3", "d2", entity.ActionLike)
	fx.track(t, "u4", "d3", entity.ActionLike)
	fx.track(t, "u5", "d4", entity.ActionLike)

	result, err := fx.recommendations.Recommend(context.Background(), "u1", 10)
	require.NoError(t, err)

	assert.Equal(t, entity.StrategyHybrid, result.Strategy)
	assert.Equal(t, []string{"d1", "d2", "d3"}, itemIDs(result), "ties keep profile insertion order and the fourth tied user is cut")
}
