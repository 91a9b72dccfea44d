package repository

import "context"

// TransactionManager runs a unit of work atomically. Donation transitions use it so the status
// change, the pickup row and the notification rows commit or roll back together.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories obtained from
	// the factory share fn's transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one open transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewDonationRepository() DonationRepository
	NewPickupRepository() PickupRepository
	NewImpactRepository() ImpactRepository
	NewNotificationRepository() NotificationRepository
	NewActivityLogRepository() ActivityLogRepository
}
