package impl

import (
	"context"
	"testing"

	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/service"
	"destinos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_SaveCreatesUser(t *testing.T) {
	fx := createEngine(t, nil)

	id := fx.savePrefs(t, usecase.SavePreferencesInput{
		Name:                 " Ana ",
		PreferredCategories:  []string{" alojamiento ", "", "guia"},
		PreferredDepartments: []string{"Boyacá"},
	})
	require.NotEmpty(t, id)

	profile, err := fx.preferences.GetPreferences(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, []string{"alojamiento", "guia"}, profile.PreferredCategories)
}

func TestPreferenceService_SaveReplacesProfile(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	fx.savePrefs(t, usecase.SavePreferencesInput{UserID: "u1", TravelStyle: "aventura", PreferredDepartments: []string{"Boyacá"}})
	before, err := fx.preferences.GetPreferences(ctx, "u1")
	require.NoError(t, err)

	fx.savePrefs(t, usecase.SavePreferencesInput{UserID: "u1", TravelStyle: "cultural"})
	after, err := fx.preferences.GetPreferences(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "cultural", after.TravelStyle)
	assert.Empty(t, after.PreferredDepartments)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestPreferenceService_GetUnknown(t *testing.T) {
	fx := createEngine(t, nil)

	_, err := fx.preferences.GetPreferences(context.Background(), "nobody")
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestPreferenceService_PublishesUpdate(t *testing.T) {
	fx := createEngine(t, nil)
	fx.savePrefs(t, usecase.SavePreferencesInput{UserID: "u7"})

	fx.publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e *service.GamificationEvent) bool {
		return e.Type == service.EventPreferencesUpdated && e.UserID == "u7"
	}))
}
