package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a single store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// PointsRepo returns a PointsRepository bound to the current transaction.
	PointsRepo() PointsRepository

	// RewardRepo returns a RewardRepository bound to the current transaction.
	RewardRepo() RewardRepository

	// RedemptionRepo returns a RedemptionRepository bound to the current transaction.
	RedemptionRepo() RedemptionRepository

	// SubmissionRepo returns a SubmissionRepository bound to the current transaction.
	SubmissionRepo() SubmissionRepository
}
