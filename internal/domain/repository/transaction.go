package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// Accepting a friend request (status flip + two share rules) and removing a
// friend (request row + both rules) are the multi-row writes that need it.
type RepositoryFactory interface {
	// NewFriendRequestRepository returns a FriendRequestRepository bound to the current transaction.
	NewFriendRequestRepository() FriendRequestRepository

	// NewShareRuleRepository returns a ShareRuleRepository bound to the current transaction.
	NewShareRuleRepository() ShareRuleRepository

	// NewProfileRepository returns a ProfileRepository bound to the current transaction.
	NewProfileRepository() ProfileRepository
}
