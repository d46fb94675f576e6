// Package ledgerdelivery manages delivery layer of the IOU ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/pkg/amountpkg"
	"github.com/jstoebel/exercises/pkg/errorspkg"
	"github.com/jstoebel/exercises/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Users(ctx context.Context, names []string) ([]domain.User, error)
	AddUser(ctx context.Context, name string) (domain.User, error)
	AddIOU(ctx context.Context, iou domain.IOU) ([]domain.User, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type usersRequest struct {
	Users []string `form:"users"`
}

type addUserRequest struct {
	User string `json:"user" binding:"required"`
}

type iouRequest struct {
	Lender   string `json:"lender" binding:"required"`
	Borrower string `json:"borrower" binding:"required"`
	Amount   string `json:"amount" binding:"required,amount"`
}

type usersData struct {
	Users []domain.User `json:"users"`
}

type userData struct {
	User domain.User `json:"user"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidUserName),
		errors.Is(err, domain.ErrSelfIOU),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func fail(gctx *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		err = errorspkg.ErrInternal
	}

	gctx.JSON(code, web.Error(err))
}

func bindingFailed(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.BindingError(err))
}

// Users handles http request to list ledger users.
func (h *Handler) Users(gctx *gin.Context) {
	var req usersRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingFailed(gctx, err)
		return
	}

	users, err := h.service.Users(gctx.Request.Context(), req.Users)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(usersData{users}))
}

// AddUser handles http request to create a ledger user.
func (h *Handler) AddUser(gctx *gin.Context) {
	var req addUserRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(gctx, err)
		return
	}

	user, err := h.service.AddUser(gctx.Request.Context(), req.User)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Data(userData{user}))
}

// AddIOU handles http request to record an IOU.
func (h *Handler) AddIOU(gctx *gin.Context) {
	var req iouRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(gctx, err)
		return
	}

	// Already validated by the amount binding tag.
	amount, err := amountpkg.Parse(req.Amount)
	if err != nil {
		fail(gctx, domain.ErrInvalidAmount)
		return
	}

	iou := domain.IOU{Lender: req.Lender, Borrower: req.Borrower, Amount: amount}

	users, err := h.service.AddIOU(gctx.Request.Context(), iou)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Data(usersData{users}))
}
