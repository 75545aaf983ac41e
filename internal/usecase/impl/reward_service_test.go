package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/repository"
	mockRepo "destinos/internal/mocks/repository"
	mockSvc "destinos/internal/mocks/service"
	"destinos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (fx engineFixtures) createReward(t *testing.T, input usecase.CreateRewardInput) *entity.Reward {
	t.Helper()

	reward, err := fx.rewards.CreateReward(context.Background(), input)
	require.NoError(t, err)

	return reward
}

func (fx engineFixtures) credit(t *testing.T, userID string, points int, txType entity.TransactionType) {
	t.Helper()

	_, err := fx.points.Credit(context.Background(), usecase.CreditInput{UserID: userID, Points: points, Type: txType})
	require.NoError(t, err)
}

func TestRewardService_RedeemEndToEnd(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	reward := fx.createReward(t, usecase.CreateRewardInput{
		Title: "Café de origen", PointsRequired: 15, PartnerContact: "contacto@cafe.co",
	})

	// three likes: 9 points
	for _, dest := range []string{"d1", "d2", "d3"} {
		fx.track(t, "traveler", dest, entity.ActionLike)
	}
	require.Equal(t, 9, fx.balance(t, "traveler"))

	_, err := fx.rewards.Redeem(ctx, "traveler", reward.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))

	// one approved destination: +15
	fx.credit(t, "traveler", entity.PointsForDestinationApproval, entity.TransactionDestinationApproved)
	require.Equal(t, 24, fx.balance(t, "traveler"))

	redemption, err := fx.rewards.Redeem(ctx, "traveler", reward.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacto@cafe.co", redemption.PartnerContact)
	assert.Equal(t, 15, redemption.PointsSpent)
	assert.Equal(t, entity.RedemptionActive, redemption.Status)
	assert.Equal(t, "DST-TEST01", redemption.VoucherCode)
	assert.Equal(t, 9, fx.balance(t, "traveler"))

	stored, err := memoryRewardRepo(fx).FindByID(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentRedemptions)

	history, err := fx.points.History(ctx, "traveler", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.TransactionRedeemReward, history[0].Type)
	assert.Equal(t, -15, history[0].Points)
	require.NotNil(t, history[0].ReferenceID)
	assert.Equal(t, reward.ID, *history[0].ReferenceID)

	got, err := fx.rewards.GetRedemption(ctx, redemption.ID)
	require.NoError(t, err)
	assert.Equal(t, redemption.ID, got.ID)

	mine, err := fx.rewards.ListRedemptions(ctx, "traveler")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestRewardService_InsufficientBalanceLeavesNoTrace(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	reward := fx.createReward(t, usecase.CreateRewardInput{Title: "Tour", PointsRequired: 50, MaxRedemptions: intPtr(3)})
	fx.credit(t, "u1", 49, entity.TransactionDestinationApproved)

	_, err := fx.rewards.Redeem(ctx, "u1", reward.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))

	assert.Equal(t, 49, fx.balance(t, "u1"))
	history, err := fx.points.History(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	stored, err := memoryRewardRepo(fx).FindByID(ctx, reward.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.CurrentRedemptions)

	redemptions, err := fx.rewards.ListRedemptions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, redemptions)
}

func TestRewardService_PreconditionOrder(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	expired := fx.createReward(t, usecase.CreateRewardInput{Title: "Vencida", PointsRequired: 1, ExpiresAt: &past})
	soldOut := fx.createReward(t, usecase.CreateRewardInput{Title: "Agotada", PointsRequired: 1000, MaxRedemptions: intPtr(0)})

	inactive := &entity.Reward{ID: "inactive", Title: "Inactiva", PointsRequired: 1000, IsActive: false}
	_, err := memoryRewardRepo(fx).Create(ctx, inactive)
	require.NoError(t, err)

	tests := []struct {
		name     string
		rewardID string
		want     error
	}{
		{name: "missing reward", rewardID: "nope", want: domainerrors.ErrRewardNotFound},
		{name: "inactive before balance", rewardID: "inactive", want: domainerrors.ErrRewardInactive},
		{name: "expired counts as inactive", rewardID: expired.ID, want: domainerrors.ErrRewardInactive},
		{name: "exhausted before balance", rewardID: soldOut.ID, want: domainerrors.ErrRewardExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.rewards.Redeem(ctx, "broke-user", tt.rewardID)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRewardService_ConcurrentRedemptionsRespectCap(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	const (
		capacity = 3
		users    = 12
	)
	reward := fx.createReward(t, usecase.CreateRewardInput{Title: "Cupo limitado", PointsRequired: 10, MaxRedemptions: intPtr(capacity)})
	for i := range users {
		fx.credit(t, userName(i), 10, entity.TransactionDestinationApproved)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		exhausted int
	)
	for i := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := fx.rewards.Redeem(ctx, userID, reward.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrRewardExhausted):
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(userName(i))
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, users-capacity, exhausted)

	stored, err := memoryRewardRepo(fx).FindByID(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, stored.CurrentRedemptions)

	spent := 0
	for i := range users {
		spent += 10 - fx.balance(t, userName(i))
	}
	assert.Equal(t, capacity*10, spent, "only successful redemptions debit the ledger")
}

func TestRewardService_ConcurrentRedemptionsCannotOverdraw(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	reward := fx.createReward(t, usecase.CreateRewardInput{Title: "Sin límite", PointsRequired: 10})
	fx.credit(t, "u1", 25, entity.TransactionDestinationApproved)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.rewards.Redeem(ctx, "u1", reward.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	}

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 5, fx.balance(t, "u1"))
}

func TestRewardService_SeedRewardsIsIdempotent(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	seed := []usecase.CreateRewardInput{
		{ID: "cafe", Title: "Café", PointsRequired: 15},
		{ID: "tour", Title: "Tour", PointsRequired: 150, MaxRedemptions: intPtr(20)},
	}

	created, err := fx.rewards.SeedRewards(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = fx.rewards.SeedRewards(ctx, seed)
	require.NoError(t, err)
	assert.Zero(t, created)

	rewards, err := fx.rewards.ListRewards(ctx, true)
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, "cafe", rewards[0].ID)
}

func TestRewardService_CreateRewardValidation(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CreateRewardInput
	}{
		{name: "missing title", input: usecase.CreateRewardInput{PointsRequired: 10}},
		{name: "zero points", input: usecase.CreateRewardInput{Title: "Gratis"}},
		{name: "negative cap", input: usecase.CreateRewardInput{Title: "Raro", PointsRequired: 1, MaxRedemptions: intPtr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.rewards.CreateReward(ctx, tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}

	fx.createReward(t, usecase.CreateRewardInput{ID: "dup", Title: "Uno", PointsRequired: 1})
	_, err := fx.rewards.CreateReward(ctx, usecase.CreateRewardInput{ID: "dup", Title: "Dos", PointsRequired: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRewardService_Voucher(t *testing.T) {
	fx := createEngine(t, nil)
	ctx := context.Background()

	reward := fx.createReward(t, usecase.CreateRewardInput{Title: "Café", PointsRequired: 5})
	fx.credit(t, "u1", 5, entity.TransactionDestinationSubmitted)
	redemption, err := fx.rewards.Redeem(ctx, "u1", reward.ID)
	require.NoError(t, err)

	fx.voucher.EXPECT().GenerateVoucherQR(redemption.ID, "DST-TEST01").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	out, err := fx.rewards.Voucher(ctx, redemption.ID)
	require.NoError(t, err)
	assert.Equal(t, redemption.ID, out.Redemption.ID)
	assert.NotEmpty(t, out.PNG)

	_, err = fx.rewards.Voucher(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionNotFound))
}

func TestRewardService_Redeem_StoreFailureIsWrapped(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewRewardService(RewardServiceParams{
		TxManager:      txManager,
		VoucherService: mockSvc.NewMockVoucherService(t),
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			pointsRepo := mockRepo.NewMockPointsRepository(t)
			rewardRepo := mockRepo.NewMockRewardRepository(t)
			factory.EXPECT().PointsRepo().Return(pointsRepo)
			factory.EXPECT().RewardRepo().Return(rewardRepo)
			factory.EXPECT().RedemptionRepo().Return(mockRepo.NewMockRedemptionRepository(t))
			pointsRepo.EXPECT().LockUser(ctx, "u1").Return(nil)
			rewardRepo.EXPECT().FindByIDForUpdate(ctx, "r1").Return(nil, errors.New("connection reset"))

			return fn(factory)
		})

	_, err := srv.Redeem(ctx, "u1", "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to redeem reward")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRewardService_Redeem_CapRaceMapsToExhausted(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewRewardService(RewardServiceParams{
		TxManager:      txManager,
		VoucherService: mockSvc.NewMockVoucherService(t),
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			pointsRepo := mockRepo.NewMockPointsRepository(t)
			rewardRepo := mockRepo.NewMockRewardRepository(t)
			factory.EXPECT().PointsRepo().Return(pointsRepo)
			factory.EXPECT().RewardRepo().Return(rewardRepo)
			factory.EXPECT().RedemptionRepo().Return(mockRepo.NewMockRedemptionRepository(t))
			pointsRepo.EXPECT().LockUser(ctx, "u1").Return(nil)
			rewardRepo.EXPECT().FindByIDForUpdate(ctx, "r1").
				Return(&entity.Reward{ID: "r1", PointsRequired: 5, IsActive: true, MaxRedemptions: intPtr(1)}, nil)
			pointsRepo.EXPECT().SumByUser(ctx, "u1").Return(10, nil)
			pointsRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
			rewardRepo.EXPECT().IncrementRedemptions(ctx, "r1").Return(0, repository.ErrRedemptionCapReached)

			return fn(factory)
		})

	_, err := srv.Redeem(ctx, "u1", "r1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRewardExhausted))
}

func userName(i int) string {
	return "user-" + string(rune('a'+i))
}

func TestRewardService_Redeem_UnreachableStoreIsUnavailable(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewRewardService(RewardServiceParams{
		TxManager:      txManager,
		VoucherService: mockSvc.NewMockVoucherService(t),
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	dialErr := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(domainerrors.NewStoreError(domainerrors.ErrStoreUnavailable, dialErr, "failed to begin transaction"))

	_, err := srv.Redeem(ctx, "u1", "r1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.True(t, errors.Is(err, dialErr))
}
