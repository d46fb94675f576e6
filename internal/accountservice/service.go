// Package accountservice manages business logic layer of bank accounts.
package accountservice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jstoebel/exercises/internal/bankaccount"
	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/internal/metrics"
	"github.com/jstoebel/exercises/pkg/amountpkg"
)

// Service keeps bank accounts in memory keyed by their ID.
type Service struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*bankaccount.Account
}

// New returns account service struct to manage account business logic.
func New() *Service {
	return &Service{
		accounts: make(map[uuid.UUID]*bankaccount.Account),
	}
}

func (s *Service) lookup(id uuid.UUID) (*bankaccount.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

func parseAmount(amount string) (decimal.Decimal, error) {
	d, err := amountpkg.Parse(amount)
	switch err {
	case nil:
		return d, nil
	case amountpkg.ErrNonPositive:
		return d, domain.ErrNonPositiveAmount
	default:
		return d, domain.ErrInvalidAmount
	}
}

func view(id uuid.UUID, balance decimal.Decimal, open bool) domain.Account {
	acc := domain.Account{ID: id, Open: open}
	if open {
		acc.Balance = balance.String()
	}

	return acc
}

// Create creates, opens and returns a new account.
func (s *Service) Create(ctx context.Context) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a := bankaccount.New()
	if err := a.Open(); err != nil {
		l.Error().Err(err).Send()
		metrics.RecordAccountOperation("create", err)

		return domain.Account{}, err
	}

	id := uuid.New()

	s.mu.Lock()
	s.accounts[id] = a
	s.mu.Unlock()

	metrics.RecordAccountOperation("create", nil)
	metrics.IncAccountsOpen()
	l.Debug().Str("account_id", id.String()).Msg("account created")

	return view(id, decimal.Zero, true), nil
}

// Get returns the open account for the given ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	a, err := s.lookup(id)
	if err != nil {
		metrics.RecordAccountOperation("get", err)
		return domain.Account{}, err
	}

	balance, err := a.Balance()
	metrics.RecordAccountOperation("get", err)

	if err != nil {
		return domain.Account{}, err
	}

	return view(id, balance, true), nil
}

// Open reopens a closed account with a zero balance.
func (s *Service) Open(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	a, err := s.lookup(id)
	if err != nil {
		metrics.RecordAccountOperation("open", err)
		return domain.Account{}, err
	}

	err = a.Open()
	metrics.RecordAccountOperation("open", err)

	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("account_id", id.String()).Send()
		return domain.Account{}, err
	}

	metrics.IncAccountsOpen()

	return view(id, decimal.Zero, true), nil
}

// Close closes an open account.
func (s *Service) Close(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	a, err := s.lookup(id)
	if err != nil {
		metrics.RecordAccountOperation("close", err)
		return domain.Account{}, err
	}

	err = a.Close()
	metrics.RecordAccountOperation("close", err)

	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("account_id", id.String()).Send()
		return domain.Account{}, err
	}

	metrics.DecAccountsOpen()

	return view(id, decimal.Zero, false), nil
}

// Deposit adds amount to the account balance.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount string) (domain.Account, error) {
	return s.apply(ctx, "deposit", id, amount, (*bankaccount.Account).Deposit)
}

// Withdraw takes amount from the account balance.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, amount string) (domain.Account, error) {
	return s.apply(ctx, "withdraw", id, amount, (*bankaccount.Account).Withdraw)
}

func (s *Service) apply(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	amount string,
	fn func(*bankaccount.Account, decimal.Decimal) (decimal.Decimal, error),
) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	d, err := parseAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		metrics.RecordAccountOperation(operation, err)

		return domain.Account{}, err
	}

	a, err := s.lookup(id)
	if err != nil {
		metrics.RecordAccountOperation(operation, err)
		return domain.Account{}, err
	}

	balance, err := fn(a, d)
	metrics.RecordAccountOperation(operation, err)

	if err != nil {
		l.Info().Err(err).Str("account_id", id.String()).Str("operation", operation).Send()
		return domain.Account{}, err
	}

	return view(id, balance, true), nil
}
