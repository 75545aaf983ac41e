package scoring

import (
	"testing"

	"destinos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestContentScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dest    *entity.Destination
		profile *entity.UserProfile
		want    int
	}{
		{
			name:    "category substring",
			dest:    &entity.Destination{Category: "HOTEL LODGING"},
			profile: &entity.UserProfile{PreferredCategories: []string{"LODGING"}},
			want:    3,
		},
		{
			name:    "case insensitive category",
			dest:    &entity.Destination{Category: "ALOJAMIENTO RURAL"},
			profile: &entity.UserProfile{PreferredCategories: []string{"rural"}},
			want:    3,
		},
		{
			name:    "repeated category matches are not deduplicated",
			dest:    &entity.Destination{Category: "ALOJAMIENTO RURAL"},
			profile: &entity.UserProfile{PreferredCategories: []string{"rural", "ALOJAMIENTO", "Rural"}},
			want:    9,
		},
		{
			name:    "department through accent folding counted once",
			dest:    &entity.Destination{Department: "BOYACA"},
			profile: &entity.UserProfile{PreferredDepartments: []string{"Boyacá", "BOYACA"}},
			want:    2,
		},
		{
			name:    "adventure style on rural category",
			dest:    &entity.Destination{Category: "ALOJAMIENTO RURAL"},
			profile: &entity.UserProfile{TravelStyle: "aventura"},
			want:    1,
		},
		{
			name:    "cultural style on accented guide category",
			dest:    &entity.Destination{Category: "GUÍA DE TURISMO"},
			profile: &entity.UserProfile{TravelStyle: "Cultural"},
			want:    1,
		},
		{
			name:    "relaxation style spelled with accent",
			dest:    &entity.Destination{Category: "ALOJAMIENTO HOTELERO"},
			profile: &entity.UserProfile{TravelStyle: "relajación"},
			want:    1,
		},
		{
			name:    "unknown style grants nothing",
			dest:    &entity.Destination{Category: "ALOJAMIENTO HOTELERO"},
			profile: &entity.UserProfile{TravelStyle: "gastronomia"},
			want:    0,
		},
		{
			name:    "empty preferred category ignored",
			dest:    &entity.Destination{Category: "AGENCIA DE VIAJES"},
			profile: &entity.UserProfile{PreferredCategories: []string{"", "  "}},
			want:    0,
		},
		{
			name: "all rules combined",
			dest: &entity.Destination{Category: "ALOJAMIENTO RURAL", Department: "CUNDINAMARCA"},
			profile: &entity.UserProfile{
				PreferredCategories:  []string{"RURAL"},
				PreferredDepartments: []string{"Cundinamarca"},
				TravelStyle:          "aventura",
			},
			want: 3 + 2 + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ContentScore(tt.dest, tt.profile))
		})
	}
}

func TestScoreContent_ReportsMatches(t *testing.T) {
	t.Parallel()

	m := ScoreContent(
		&entity.Destination{Category: "ALOJAMIENTO RURAL", Department: "BOYACA"},
		&entity.UserProfile{PreferredCategories: []string{"rural", "HOTEL"}, PreferredDepartments: []string{"META", " Boyacá "}},
	)

	assert.Equal(t, 5, m.Score)
	assert.Equal(t, []string{"rural"}, m.MatchedCategories)
	assert.Equal(t, "Boyacá", m.MatchedDepartment)
	assert.False(t, m.StyleBonus)
}

func TestContentScore_NilInputs(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ContentScore(nil, &entity.UserProfile{}))
	assert.Zero(t, ContentScore(&entity.Destination{}, nil))
}
