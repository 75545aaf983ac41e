package impl

import (
	"context"
	"fmt"
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
	"go.uber.org/fx"
)

// Redemption outcomes reported to metrics.
const (
	redemptionSucceeded    = "succeeded"
	redemptionRejected     = "rejected"
	redemptionFailed       = "failed"
	redemptionTypeRedeemed = entity.TransactionRedeemReward
)

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	txManager      repository.TransactionManager
	rewardRepo     repository.RewardRepository
	redemptionRepo repository.RedemptionRepository
	voucherService service.VoucherService
	publisher      service.EventPublisher
	metrics        service.EngineMetrics
	logger         *slog.Logger
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RewardRepo     repository.RewardRepository
	RedemptionRepo repository.RedemptionRepository
	VoucherService service.VoucherService
	Publisher      service.EventPublisher
	Metrics        service.EngineMetrics
	Logger         *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &rewardService{
		txManager:      params.TxManager,
		rewardRepo:     params.RewardRepo,
		redemptionRepo: params.RedemptionRepo,
		voucherService: params.VoucherService,
		publisher:      params.Publisher,
		metrics:        metrics,
		logger:         params.Logger,
	}
}

// Redeem validates and executes a point-for-reward exchange.
//
// Preconditions are checked in order: the reward exists, it is active and not
// expired, it is under its redemption cap, and the user's balance covers it.
// The debit, the counter increment and the redemption record are written in one
// transaction that holds the user's ledger lock and the reward row lock.
func (srv *rewardService) Redeem(ctx context.Context, userID, rewardID string) (*entity.Redemption, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(rewardID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id and reward_id are required")
	}

	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pointsRepo := repoFactory.PointsRepo()
		rewardRepo := repoFactory.RewardRepo()
		redemptionRepo := repoFactory.RedemptionRepo()

		// 1. Serialize debits for this user
		if err := pointsRepo.LockUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user ledger")
		}

		// 2. Load and lock the reward
		reward, err := rewardRepo.FindByIDForUpdate(ctx, rewardID)
		if err != nil {
			if errors.Is(err, repository.ErrRewardNotFound) {
				return domainerrors.ErrRewardNotFound.WithDetails(rewardID)
			}

			return errors.Wrap(err, "failed to find reward")
		}

		now := time.Now().UTC()
		if !reward.IsAvailableAt(now) {
			return domainerrors.ErrRewardInactive.WithDetails(rewardID)
		}
		if !reward.HasCapacity() {
			return domainerrors.ErrRewardExhausted.WithDetails(rewardID)
		}

		// 3. Balance check against the locked ledger
		balance, err := pointsRepo.SumByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to sum user points")
		}
		if balance < reward.PointsRequired {
			return domainerrors.ErrInsufficientBalance.WithDetails(
				fmt.Sprintf("balance %d, required %d", balance, reward.PointsRequired))
		}

		// 4. Debit, increment, record
		refID := reward.ID
		debit, err := newPointTransaction(usecase.CreditInput{
			UserID:      userID,
			Points:      -reward.PointsRequired,
			Type:        redemptionTypeRedeemed,
			Description: "Canje: " + reward.Title,
			ReferenceID: &refID,
		})
		if err != nil {
			return err
		}
		if err := pointsRepo.Append(ctx, debit); err != nil {
			return errors.Wrap(err, "failed to append redemption debit")
		}

		if _, err := rewardRepo.IncrementRedemptions(ctx, reward.ID); err != nil {
			if errors.Is(err, repository.ErrRedemptionCapReached) {
				return domainerrors.ErrRewardExhausted.WithDetails(rewardID)
			}

			return errors.Wrap(err, "failed to increment redemptions")
		}

		redemption = &entity.Redemption{
			ID:             uuid.NewString(),
			UserID:         userID,
			RewardID:       reward.ID,
			PointsSpent:    reward.PointsRequired,
			Status:         entity.RedemptionActive,
			PartnerContact: reward.PartnerContact,
			VoucherCode:    srv.voucherService.NewCode(),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := redemptionRepo.Append(ctx, redemption); err != nil {
			return errors.Wrap(err, "failed to create redemption")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			srv.metrics.IncRedemption(redemptionRejected)
			logger.Info("Redemption rejected", slog.String("userID", userID), slog.String("rewardID", rewardID), slog.String("reason", appErr.ErrorCode()))

			return nil, err
		}
		srv.metrics.IncRedemption(redemptionFailed)

		return nil, errors.Wrap(err, "failed to redeem reward")
	}

	srv.metrics.IncRedemption(redemptionSucceeded)
	srv.metrics.IncPointsAwarded(redemptionTypeRedeemed, -redemption.PointsSpent)
	logger.Info("Reward redeemed",
		slog.String("userID", userID),
		slog.String("rewardID", rewardID),
		slog.String("redemptionID", redemption.ID),
	)

	publishEvent(ctx, srv.logger, srv.publisher, &service.GamificationEvent{
		Type:        service.EventRewardRedeemed,
		UserID:      userID,
		ReferenceID: redemption.ID,
		Points:      -redemption.PointsSpent,
		OccurredAt:  redemption.CreatedAt,
		Attributes:  map[string]any{"reward_id": rewardID},
	})

	return redemption, nil
}

// CreateReward validates and stores a new reward.
func (srv *rewardService) CreateReward(ctx context.Context, input usecase.CreateRewardInput) (*entity.Reward, error) {
	reward, err := buildReward(input)
	if err != nil {
		return nil, err
	}

	created, err := srv.rewardRepo.Create(ctx, reward)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reward")
	}
	if !created {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reward " + reward.ID + " already exists")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Reward created",
		slog.String("rewardID", reward.ID),
		slog.Int("pointsRequired", reward.PointsRequired),
	)

	return reward, nil
}

// SeedRewards creates every reward whose ID is not taken yet.
func (srv *rewardService) SeedRewards(ctx context.Context, inputs []usecase.CreateRewardInput) (int, error) {
	createdCount := 0
	for _, input := range inputs {
		reward, err := buildReward(input)
		if err != nil {
			return createdCount, errors.Wrapf(err, "invalid seed reward %q", input.ID)
		}

		created, err := srv.rewardRepo.Create(ctx, reward)
		if err != nil {
			return createdCount, errors.Wrapf(err, "failed to seed reward %q", reward.ID)
		}
		if created {
			createdCount++
		}
	}

	srv.logger.Info("Rewards seeded", slog.Int("created", createdCount), slog.Int("total", len(inputs)))

	return createdCount, nil
}

func buildReward(input usecase.CreateRewardInput) (*entity.Reward, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.PointsRequired <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points_required must be positive")
	}
	if input.MaxRedemptions != nil && *input.MaxRedemptions < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("max_redemptions must not be negative")
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return &entity.Reward{
		ID:             id,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		PointsRequired: input.PointsRequired,
		Category:       input.Category,
		PartnerName:    input.PartnerName,
		PartnerContact: input.PartnerContact,
		IsActive:       true,
		MaxRedemptions: input.MaxRedemptions,
		ExpiresAt:      input.ExpiresAt,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (srv *rewardService) ListRewards(ctx context.Context, activeOnly bool) ([]*entity.Reward, error) {
	rewards, err := srv.rewardRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	return rewards, nil
}

func (srv *rewardService) ListRedemptions(ctx context.Context, userID string) ([]*entity.Redemption, error) {
	redemptions, err := srv.redemptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return redemptions, nil
}

func (srv *rewardService) GetRedemption(ctx context.Context, redemptionID string) (*entity.Redemption, error) {
	redemption, err := srv.redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, domainerrors.ErrRedemptionNotFound.WithDetails(redemptionID)
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return redemption, nil
}

// Voucher renders the QR code a partner scans to fulfil the redemption.
func (srv *rewardService) Voucher(ctx context.Context, redemptionID string) (*usecase.VoucherOutput, error) {
	redemption, err := srv.GetRedemption(ctx, redemptionID)
	if err != nil {
		return nil, err
	}

	png, err := srv.voucherService.GenerateVoucherQR(redemption.ID, redemption.VoucherCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate voucher")
	}

	return &usecase.VoucherOutput{Redemption: redemption, PNG: png}, nil
}
