package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/repository"
	"destinos/internal/domain/service"
	"destinos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// SavePreferences replaces the whole profile. The creation time of an existing profile is kept.
func (srv *preferenceService) SavePreferences(ctx context.Context, input usecase.SavePreferencesInput) (string, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		userID = uuid.NewString()
	}

	now := time.Now().UTC()
	profile := &entity.UserProfile{
		ID:                   userID,
		Name:                 strings.TrimSpace(input.Name),
		Email:                strings.TrimSpace(input.Email),
		PreferredCategories:  cleanList(input.PreferredCategories),
		PreferredDepartments: cleanList(input.PreferredDepartments),
		AgeRange:             strings.TrimSpace(input.AgeRange),
		TravelStyle:          strings.TrimSpace(input.TravelStyle),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	existing, err := srv.profileRepo.FindByID(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, repository.ErrProfileNotFound):
		return "", errors.Wrap(err, "failed to find profile")
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return "", errors.Wrap(err, "failed to save preferences")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Preferences saved", slog.String("userID", userID))
	publishEvent(ctx, srv.logger, srv.publisher, &service.GamificationEvent{
		Type:       service.EventPreferencesUpdated,
		UserID:     userID,
		OccurredAt: now,
	})

	return userID, nil
}

func (srv *preferenceService) GetPreferences(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WithDetails(userID)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// cleanList trims entries and drops empty ones. Duplicates are kept.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
