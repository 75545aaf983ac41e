package main

import (
	"testing"

	"destinos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestRewardSeedInputs(t *testing.T) {
	assert.Nil(t, rewardSeedInputs(nil))

	maxRedemptions := 100
	inputs := rewardSeedInputs(&config.RewardsConfig{Seed: []config.RewardSeed{
		{ID: "cafe", Title: "Café de origen", PointsRequired: 15, PartnerName: "Café La Plaza", MaxRedemptions: &maxRedemptions},
		{ID: "noche", Title: "Noche rural", PointsRequired: 500},
	}})

	require.Len(t, inputs, 2)
	assert.Equal(t, "cafe", inputs[0].ID)
	assert.Equal(t, 15, inputs[0].PointsRequired)
	assert.Equal(t, "Café La Plaza", inputs[0].PartnerName)
	assert.Equal(t, 100, *inputs[0].MaxRedemptions)
	assert.Nil(t, inputs[1].MaxRedemptions)
}

func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(seedRewards, startServer),
	)
	require.NoError(t, err)
}
