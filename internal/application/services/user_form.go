package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-form/internal/domain/form"
	"user-form/internal/domain/user"
	"user-form/internal/infrastructure/metrics"
)

// UserForm holds the state of one form instance. Calls on the same instance
// run one at a time; submit -> fetch is sequential.
type UserForm struct {
	directory user.Directory
	logger    *zap.Logger
	mCounter  *prometheus.CounterVec

	mu      sync.Mutex
	state   form.State
	outcome form.State
	values  user.User
	errs    user.ValidationErrors
	touched map[user.Field]bool
	users   user.Users
	fetches int
	lastErr error
}

func NewUserForm(
	directory user.Directory,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) *UserForm {
	return &UserForm{
		directory: directory,
		logger:    logger,
		mCounter:  mCounter,
		state:     form.Idle,
		touched:   make(map[user.Field]bool),
	}
}

// Validate is the pure field check; it does not change the form.
func (uf *UserForm) Validate(values user.User) user.ValidationErrors {
	return user.Validate(values)
}

func (uf *UserForm) Submit(ctx context.Context, values user.User) error {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	uf.transition(form.Validating)
	uf.values = user.Normalize(values)
	for _, f := range user.Fields {
		uf.touched[f] = true
	}

	if errs := user.Validate(uf.values); errs != nil {
		uf.errs = errs
		uf.settle(form.Invalid)
		metrics.Inc(uf.mCounter, metrics.UserValidationFailed)
		return &user.ValidationError{Fields: errs}
	}
	uf.errs = nil

	uf.transition(form.Submitting)
	if err := uf.directory.CreateUser(ctx, uf.values); err != nil {
		uf.lastErr = err
		uf.settle(form.SubmitFailed)
		metrics.Inc(uf.mCounter, metrics.UserSubmitFailed)
		uf.logger.Error("error submitting user", zap.Error(err))
		return fmt.Errorf("submit user: %w", err)
	}

	uf.values = user.User{}
	uf.touched = make(map[user.Field]bool)
	uf.lastErr = nil
	uf.settle(form.Submitted)
	metrics.Inc(uf.mCounter, metrics.UserSubmitted)

	// a failed refetch does not undo the submit; it stays visible in the snapshot
	_ = uf.fetch(ctx)

	return nil
}

func (uf *UserForm) FetchUsers(ctx context.Context) error {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	return uf.fetch(ctx)
}

func (uf *UserForm) Snapshot() form.Snapshot {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	touched := make(map[user.Field]bool, len(uf.touched))
	for f, ok := range uf.touched {
		touched[f] = ok
	}
	var errs user.ValidationErrors
	if uf.errs != nil {
		errs = make(user.ValidationErrors, len(uf.errs))
		for f, fail := range uf.errs {
			errs[f] = fail
		}
	}

	return form.Snapshot{
		State:   uf.state,
		Outcome: uf.outcome,
		Values:  uf.values,
		Errors:  errs,
		Touched: touched,
		Users:   append(user.Users(nil), uf.users...),
		Fetches: uf.fetches,
		Err:     uf.lastErr,
	}
}

func (uf *UserForm) fetch(ctx context.Context) error {
	uf.transition(form.Fetching)
	defer uf.transition(form.Idle)

	uf.fetches++
	users, err := uf.directory.FetchUsers(ctx)
	if err != nil {
		uf.lastErr = err
		metrics.Inc(uf.mCounter, metrics.UsersFetchFailed)
		uf.logger.Error("error fetching users", zap.Error(err))
		return fmt.Errorf("fetch users: %w", err)
	}

	uf.users = users
	uf.lastErr = nil
	metrics.Inc(uf.mCounter, metrics.UsersFetched)

	return nil
}

// settle records a submit outcome and returns the form to Idle.
func (uf *UserForm) settle(outcome form.State) {
	uf.transition(outcome)
	uf.outcome = outcome
	uf.transition(form.Idle)
}

func (uf *UserForm) transition(to form.State) {
	if !form.CanTransition(uf.state, to) {
		uf.logger.DPanic("illegal form transition",
			zap.String("from", string(uf.state)),
			zap.String("to", string(to)),
		)
	}
	uf.state = to
}
