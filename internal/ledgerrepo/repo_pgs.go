package ledgerrepo

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/pkg/dbpkg"
	"github.com/jstoebel/exercises/pkg/errorspkg"
)

// RepoPGS keeps the ledger in PostgreSQL.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createUserQuery = `
INSERT INTO
    ledger_users (name)
VALUES
    ($1)
`

// CreateUser stores a new user name.
func (r *RepoPGS) CreateUser(ctx context.Context, name string) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, createUserQuery, name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "ledger_users_pkey" {
			return domain.ErrUserAlreadyExists
		}

		l.Error().Err(err).Msgf("CreateUser(ctx, %q)", name)

		return errorspkg.ErrInternal
	}

	return nil
}

const listUsersQuery = `
SELECT name FROM ledger_users
ORDER BY name COLLATE "C"
`

// ListUsers returns all user names sorted.
func (r *RepoPGS) ListUsers(ctx context.Context) ([]string, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	names := []string{}

	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}
		names = append(names, n)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return names, nil
}

const addIOUQuery = `
INSERT INTO
    ledger_ious (lender, borrower, amount)
VALUES
    ($1, $2, $3)
`

// AddIOU stores the IOU when both users exist.
func (r *RepoPGS) AddIOU(ctx context.Context, iou domain.IOU) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, addIOUQuery, iou.Lender, iou.Borrower, iou.Amount)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "ledger_ious_lender_fkey", "ledger_ious_borrower_fkey":
				return domain.ErrUserNotFound
			case "ledger_ious_amount_check":
				return domain.ErrNonPositiveAmount
			case "ledger_ious_distinct_users_check":
				return domain.ErrSelfIOU
			}
		}

		l.Error().Err(err).Msgf("AddIOU(ctx, %+v)", iou)

		return errorspkg.ErrInternal
	}

	return nil
}

const listIOUsQuery = `
SELECT lender, borrower, amount FROM ledger_ious
WHERE lender = ANY($1) OR borrower = ANY($1)
ORDER BY id
`

// ListIOUs returns IOUs touching any of names in insertion order.
func (r *RepoPGS) ListIOUs(ctx context.Context, names []string) ([]domain.IOU, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listIOUsQuery, pq.Array(names))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	ious := []domain.IOU{}

	for rows.Next() {
		var iou domain.IOU
		if err := rows.Scan(&iou.Lender, &iou.Borrower, &iou.Amount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}
		ious = append(ious, iou)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return ious, nil
}
