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
	"go.uber.org/fx"
)

const (
	summaryRecentTransactions = 10
	defaultHistoryLimit       = 50
	maxHistoryLimit           = 200
)

// pointsService implements the PointsUsecase interface.
type pointsService struct {
	pointsRepo repository.PointsRepository
	publisher  service.EventPublisher
	metrics    service.EngineMetrics
	logger     *slog.Logger
}

// PointsServiceParams holds dependencies for PointsService, injected by Fx.
type PointsServiceParams struct {
	fx.In

	PointsRepo repository.PointsRepository
	Publisher  service.EventPublisher
	Metrics    service.EngineMetrics
	Logger     *slog.Logger
}

// NewPointsService is the constructor for pointsService.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &pointsService{
		pointsRepo: params.PointsRepo,
		publisher:  params.Publisher,
		metrics:    metrics,
		logger:     params.Logger,
	}
}

// newPointTransaction builds a ledger entry with an engine-assigned ID and timestamp.
func newPointTransaction(input usecase.CreditInput) (*entity.PointTransaction, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id is required")
	}
	if input.Type == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transaction_type is required")
	}

	return &entity.PointTransaction{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Points:      input.Points,
		Type:        input.Type,
		Description: input.Description,
		ReferenceID: input.ReferenceID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Credit appends a transaction to the ledger. The resulting balance is not checked.
func (srv *pointsService) Credit(ctx context.Context, input usecase.CreditInput) (*entity.PointTransaction, error) {
	txn, err := newPointTransaction(input)
	if err != nil {
		return nil, err
	}

	if err := srv.pointsRepo.Append(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to append point transaction")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Points credited",
		slog.String("userID", txn.UserID),
		slog.Int("points", txn.Points),
		slog.String("type", string(txn.Type)),
	)
	srv.metrics.IncPointsAwarded(txn.Type, txn.Points)

	event := &service.GamificationEvent{
		Type:       service.EventPointsCredited,
		UserID:     txn.UserID,
		Points:     txn.Points,
		OccurredAt: txn.CreatedAt,
		Attributes: map[string]any{"transaction_type": string(txn.Type)},
	}
	if txn.ReferenceID != nil {
		event.ReferenceID = *txn.ReferenceID
	}
	publishEvent(ctx, srv.logger, srv.publisher, event)

	return txn, nil
}

// Balance derives the user's total from the ledger.
func (srv *pointsService) Balance(ctx context.Context, userID string) (int, error) {
	total, err := srv.pointsRepo.SumByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum user points")
	}

	return total, nil
}

// Summary returns the balance, the tier it falls in and the most recent transactions.
func (srv *pointsService) Summary(ctx context.Context, userID string) (*usecase.PointsSummary, error) {
	total, err := srv.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := srv.pointsRepo.ListByUser(ctx, userID, summaryRecentTransactions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user transactions")
	}

	return &usecase.PointsSummary{
		UserID:             userID,
		TotalPoints:        total,
		Level:              entity.LevelFor(total),
		RecentTransactions: recent,
	}, nil
}

// History lists the user's transactions newest first.
func (srv *pointsService) History(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error) {
	limit = clampLimit(limit, defaultHistoryLimit, maxHistoryLimit)

	txns, err := srv.pointsRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user transactions")
	}

	return txns, nil
}
