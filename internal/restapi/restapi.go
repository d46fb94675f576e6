// Package restapi simulates a small REST API over the IOU ledger. Calls are
// dispatched in-process and exchange JSON payloads, nothing goes over a
// network.
package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/internal/ledgerrepo"
	"github.com/jstoebel/exercises/internal/ledgerservice"
)

var (
	// ErrRouteNotFound indicates that no handler is registered for the url.
	ErrRouteNotFound = errors.New("route not found")
	// ErrBadPayload indicates that the payload could not be decoded.
	ErrBadPayload = errors.New("bad payload")
)

type handlerFunc func(ctx context.Context, payload []byte) (any, error)

// API dispatches GET and POST calls to the ledger.
type API struct {
	ledger *ledgerservice.Service
	get    map[string]handlerFunc
	post   map[string]handlerFunc
}

// New returns an API backed by an in-memory ledger. A nil seed starts an
// empty ledger, otherwise seed is a {"users":[...]} document.
func New(ctx context.Context, seed []byte) (*API, error) {
	api := &API{ledger: ledgerservice.New(ledgerrepo.NewRepoMem())}

	api.get = map[string]handlerFunc{
		"/users": api.users,
	}
	api.post = map[string]handlerFunc{
		"/add": api.add,
		"/iou": api.iou,
	}

	if len(seed) == 0 {
		return api, nil
	}

	var snap domain.LedgerSnapshot
	if err := json.Unmarshal(seed, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	if err := api.ledger.Seed(ctx, snap.Users); err != nil {
		return nil, err
	}

	return api, nil
}

// Get serves a GET call.
func (a *API) Get(ctx context.Context, url string, payload []byte) ([]byte, error) {
	return a.dispatch(ctx, a.get, url, payload)
}

// Post serves a POST call.
func (a *API) Post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	return a.dispatch(ctx, a.post, url, payload)
}

func (a *API) dispatch(ctx context.Context, routes map[string]handlerFunc, url string, payload []byte) ([]byte, error) {
	l := zerolog.Ctx(ctx).With().Str("url", url).Logger()

	h, ok := routes[url]
	if !ok {
		l.Info().Err(ErrRouteNotFound).Send()
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, url)
	}

	res, err := h(ctx, payload)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	return json.Marshal(res)
}

func decode(payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return nil
}

func (a *API) users(ctx context.Context, payload []byte) (any, error) {
	var req struct {
		Users []string `json:"users"`
	}

	if len(payload) > 0 {
		if err := decode(payload, &req); err != nil {
			return nil, err
		}
	}

	users, err := a.ledger.Users(ctx, req.Users)
	if err != nil {
		return nil, err
	}

	return domain.LedgerSnapshot{Users: users}, nil
}

func (a *API) add(ctx context.Context, payload []byte) (any, error) {
	var req struct {
		User string `json:"user"`
	}

	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	return a.ledger.AddUser(ctx, req.User)
}

func (a *API) iou(ctx context.Context, payload []byte) (any, error) {
	var req struct {
		Lender   string          `json:"lender"`
		Borrower string          `json:"borrower"`
		Amount   decimal.Decimal `json:"amount"`
	}

	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	users, err := a.ledger.AddIOU(ctx, domain.IOU{
		Lender:   req.Lender,
		Borrower: req.Borrower,
		Amount:   req.Amount,
	})
	if err != nil {
		return nil, err
	}

	return domain.LedgerSnapshot{Users: users}, nil
}
