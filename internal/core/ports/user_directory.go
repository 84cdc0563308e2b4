package ports

import "context"

// UserDirectory answers whether a user id belongs to the known set.
// Implementations are read-only for the lifetime of the process.
type UserDirectory interface {
	Exists(ctx context.Context, userID int) (bool, error)
}
