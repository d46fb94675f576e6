// Package ledgerservice manages business logic layer of the IOU ledger.
package ledgerservice

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/internal/metrics"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	CreateUser(ctx context.Context, name string) error
	ListUsers(ctx context.Context) ([]string, error)
	AddIOU(ctx context.Context, iou domain.IOU) error
	// ListIOUs returns every IOU where lender or borrower is one of names.
	ListIOUs(ctx context.Context, names []string) ([]domain.IOU, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo Repo
}

// New returns ledger service struct to manage ledger business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Seed loads users and their debts into an empty ledger. Users are created
// first, then every Owes entry is recorded as an IOU from the counterparty.
// OwedBy entries mirror Owes entries of other users and are not recorded
// twice. A ledger that already has users is left untouched, so seeding on
// every start is safe. The seed is validated as a whole before anything is
// written.
func (s *Service) Seed(ctx context.Context, users []domain.User) error {
	l := zerolog.Ctx(ctx)

	if err := validSeed(users); err != nil {
		l.Error().Err(err).Msg("invalid seed")
		return err
	}

	existing, err := s.repo.ListUsers(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		l.Info().Int("users", len(existing)).Msg("ledger not empty, seed skipped")
		return nil
	}

	for _, u := range users {
		if err := s.createUser(ctx, u.Name); err != nil {
			l.Error().Err(err).Str("user", u.Name).Msg("seed user")
			return err
		}
	}

	for _, u := range users {
		for _, lender := range sortedKeys(u.Owes) {
			iou := domain.IOU{Lender: lender, Borrower: u.Name, Amount: u.Owes[lender]}
			if err := s.repo.AddIOU(ctx, iou); err != nil {
				l.Error().Err(err).Str("lender", lender).Str("borrower", u.Name).Msg("seed iou")
				return err
			}
		}
	}

	l.Info().Int("users", len(users)).Msg("ledger seeded")

	return nil
}

func validSeed(users []domain.User) error {
	names := make(map[string]bool, len(users))

	for _, u := range users {
		if strings.TrimSpace(u.Name) == "" {
			return domain.ErrInvalidUserName
		}

		if names[u.Name] {
			return fmt.Errorf("%w: %q", domain.ErrUserAlreadyExists, u.Name)
		}

		names[u.Name] = true
	}

	for _, u := range users {
		for _, lender := range sortedKeys(u.Owes) {
			if !names[lender] {
				return fmt.Errorf("%w: %q", domain.ErrUserNotFound, lender)
			}

			err := validIOU(domain.IOU{Lender: lender, Borrower: u.Name, Amount: u.Owes[lender]})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Users returns the named users sorted by name. Unknown names are skipped,
// no names means every user.
func (s *Service) Users(ctx context.Context, names []string) ([]domain.User, error) {
	all, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	selected := all
	if len(names) > 0 {
		wanted := make(map[string]bool, len(names))
		for _, n := range names {
			wanted[n] = true
		}

		selected = make([]string, 0, len(names))
		for _, n := range all {
			if wanted[n] {
				selected = append(selected, n)
			}
		}
	}

	sort.Strings(selected)

	return s.build(ctx, selected)
}

// AddUser creates a user without debts.
func (s *Service) AddUser(ctx context.Context, name string) (domain.User, error) {
	if err := s.createUser(ctx, name); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("user", name).Send()
		return domain.User{}, err
	}

	return domain.NewUser(name), nil
}

func (s *Service) createUser(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidUserName
	}

	if err := s.repo.CreateUser(ctx, name); err != nil {
		return err
	}

	metrics.RecordUserCreated()

	return nil
}

// AddIOU records the IOU and returns lender and borrower sorted by name.
func (s *Service) AddIOU(ctx context.Context, iou domain.IOU) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	err := validIOU(iou)
	if err == nil {
		err = s.repo.AddIOU(ctx, iou)
	}

	metrics.RecordIOU(err)

	if err != nil {
		l.Info().Err(err).Str("lender", iou.Lender).Str("borrower", iou.Borrower).Send()
		return nil, err
	}

	names := []string{iou.Lender, iou.Borrower}
	sort.Strings(names)

	return s.build(ctx, names)
}

func validIOU(iou domain.IOU) error {
	if iou.Lender == iou.Borrower {
		return domain.ErrSelfIOU
	}

	if !iou.Amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}

	return nil
}

// build computes the netted view of the given users, keeping their order.
func (s *Service) build(ctx context.Context, names []string) ([]domain.User, error) {
	users := make([]domain.User, 0, len(names))
	if len(names) == 0 {
		return users, nil
	}

	ious, err := s.repo.ListIOUs(ctx, names)
	if err != nil {
		return nil, err
	}

	// net[a][b] > 0 means b owes a.
	net := make(map[string]map[string]decimal.Decimal)
	add := func(a, b string, amount decimal.Decimal) {
		if net[a] == nil {
			net[a] = make(map[string]decimal.Decimal)
		}
		net[a][b] = net[a][b].Add(amount)
	}

	for _, iou := range ious {
		add(iou.Lender, iou.Borrower, iou.Amount)
		add(iou.Borrower, iou.Lender, iou.Amount.Neg())
	}

	for _, name := range names {
		u := domain.NewUser(name)

		for other, amount := range net[name] {
			switch amount.Sign() {
			case 1:
				u.OwedBy[other] = amount
			case -1:
				u.Owes[other] = amount.Neg()
			}

			u.Balance = u.Balance.Add(amount)
		}

		users = append(users, u)
	}

	return users, nil
}
