// Package accountdelivery manages delivery layer of bank accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/pkg/errorspkg"
	"github.com/jstoebel/exercises/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context) (domain.Account, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Account, error)
	Open(ctx context.Context, id uuid.UUID) (domain.Account, error)
	Close(ctx context.Context, id uuid.UUID) (domain.Account, error)
	Deposit(ctx context.Context, id uuid.UUID, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountClosed),
		errors.Is(err, domain.ErrAccountAlreadyOpen):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func respond(gctx *gin.Context, acc domain.Account, err error) {
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
			err = errorspkg.ErrInternal
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	gctx.JSON(http.StatusOK, web.Data(data{acc}))
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return uuid.Nil, false
	}

	// Already validated by the uuid binding tag.
	return uuid.MustParse(req.ID), true
}

// Create handles http request to create and open an account.
func (h *Handler) Create(gctx *gin.Context) {
	acc, err := h.service.Create(gctx.Request.Context())
	respond(gctx, acc, err)
}

// Get handles http request to get the balance of an account.
func (h *Handler) Get(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Get(gctx.Request.Context(), id)
	respond(gctx, acc, err)
}

// Open handles http request to reopen a closed account.
func (h *Handler) Open(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Open(gctx.Request.Context(), id)
	respond(gctx, acc, err)
}

// Close handles http request to close an account.
func (h *Handler) Close(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Close(gctx.Request.Context(), id)
	respond(gctx, acc, err)
}

// Deposit handles http request to deposit money.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.amountOperation(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.amountOperation(gctx, h.service.Withdraw)
}

func (h *Handler) amountOperation(
	gctx *gin.Context,
	op func(ctx context.Context, id uuid.UUID, amount string) (domain.Account, error),
) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	acc, err := op(gctx.Request.Context(), id, req.Amount)
	respond(gctx, acc, err)
}
