package user

import "context"

// Directory is the remote collection of users behind the configured endpoint.
type Directory interface {
	FetchUsers(ctx context.Context) (Users, error)
	CreateUser(ctx context.Context, u User) error
}
