package ports

import (
	"context"

	"github.com/google/uuid"

	"user-form/internal/domain/form"
	"user-form/internal/domain/user"
)

type UserForm interface {
	Validate(values user.User) user.ValidationErrors
	Submit(ctx context.Context, values user.User) error
	FetchUsers(ctx context.Context) error
	Snapshot() form.Snapshot
}

type FormSessions interface {
	Open() (uuid.UUID, UserForm)
	Lookup(id uuid.UUID) (UserForm, bool)
	Len() int
}
