package ledgerrepo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/internal/ledgerservice"
	"github.com/jstoebel/exercises/pkg/dbpkg"
	"github.com/jstoebel/exercises/pkg/randompkg"
)

// Every case gets a fresh repo and performs at most one failing statement,
// as its last step, so postgres transactions are never left aborted.
type repoFactory func(t *testing.T) ledgerservice.Repo

func factories() map[string]repoFactory {
	return map[string]repoFactory{
		"Mem": func(t *testing.T) ledgerservice.Repo {
			return NewRepoMem()
		},
		"PGS": func(t *testing.T) ledgerservice.Repo {
			return NewRepoPGS(dbpkg.SetupTX(t))
		},
	}
}

func seedUsers(t *testing.T, r ledgerservice.Repo, n int) []string {
	t.Helper()

	names := make([]string, n)
	for i := range names {
		names[i] = randompkg.Name()
		require.NoError(t, r.CreateUser(context.Background(), names[i]))
	}

	return names
}

func TestCreateUser(t *testing.T) {
	for name, newRepo := range factories() {
		newRepo := newRepo

		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r := newRepo(t)

			names := seedUsers(t, r, 2)

			got, err := r.ListUsers(ctx)
			require.NoError(t, err)
			require.Subset(t, got, names)
			require.IsNonDecreasing(t, got)

			err = r.CreateUser(ctx, names[0])
			require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		})
	}
}

func TestAddIOU(t *testing.T) {
	for name, newRepo := range factories() {
		newRepo := newRepo

		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r := newRepo(t)

			names := seedUsers(t, r, 3)
			a, b, c := names[0], names[1], names[2]

			ious := []domain.IOU{
				{Lender: a, Borrower: b, Amount: decimal.RequireFromString("10")},
				{Lender: b, Borrower: a, Amount: decimal.RequireFromString("2.5")},
				{Lender: b, Borrower: c, Amount: randompkg.Amount(1, 100)},
			}

			for _, iou := range ious {
				require.NoError(t, r.AddIOU(ctx, iou))
			}

			got, err := r.ListIOUs(ctx, []string{a})
			require.NoError(t, err)
			require.Len(t, got, 2)

			for i, iou := range got {
				require.Equal(t, ious[i].Lender, iou.Lender)
				require.Equal(t, ious[i].Borrower, iou.Borrower)
				require.True(t, ious[i].Amount.Equal(iou.Amount), "amount %s, want %s", iou.Amount, ious[i].Amount)
			}

			got, err = r.ListIOUs(ctx, []string{c})
			require.NoError(t, err)
			require.Len(t, got, 1)

			got, err = r.ListIOUs(ctx, []string{a, c})
			require.NoError(t, err)
			require.Len(t, got, 3)
		})
	}
}

func TestAddIOUUnknownUser(t *testing.T) {
	for name, newRepo := range factories() {
		newRepo := newRepo

		t.Run(name, func(t *testing.T) {
			r := newRepo(t)

			names := seedUsers(t, r, 1)

			err := r.AddIOU(context.Background(), domain.IOU{
				Lender:   names[0],
				Borrower: "nobody-" + randompkg.Word(8),
				Amount:   decimal.NewFromInt(1),
			})
			require.ErrorIs(t, err, domain.ErrUserNotFound)
		})
	}
}

func TestListIOUsEmpty(t *testing.T) {
	for name, newRepo := range factories() {
		newRepo := newRepo

		t.Run(name, func(t *testing.T) {
			r := newRepo(t)

			names := seedUsers(t, r, 1)

			got, err := r.ListIOUs(context.Background(), names)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Empty(t, got)
		})
	}
}
