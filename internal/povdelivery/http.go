// Package povdelivery manages delivery layer of tree re-rooting and paths.
package povdelivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/internal/metrics"
	"github.com/jstoebel/exercises/internal/pov"
	"github.com/jstoebel/exercises/pkg/errorspkg"
	"github.com/jstoebel/exercises/pkg/web"
)

// Handler facilitates tree delivery layer logic. Trees travel with every
// request so the handler keeps no state.
type Handler struct{}

// NewHandler returns tree handler.
func NewHandler() *Handler {
	return &Handler{}
}

type povRequest struct {
	Tree *pov.Tree `json:"tree" binding:"required"`
	From string    `json:"from" binding:"required"`
}

type pathRequest struct {
	Tree *pov.Tree `json:"tree" binding:"required"`
	From string    `json:"from" binding:"required"`
	To   string    `json:"to" binding:"required"`
}

type povData struct {
	Tree *pov.Tree `json:"tree"`
}

type pathData struct {
	Path []string `json:"path"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pov.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, pov.ErrDuplicateLabel):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func bindingFailed(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	if errors.Is(err, pov.ErrInvalidTree) {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	gctx.JSON(http.StatusBadRequest, web.BindingError(err))
}

func fail(gctx *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		err = errorspkg.ErrInternal
	}

	gctx.JSON(code, web.Error(err))
}

// FromPov handles http request to re-root a tree.
func (h *Handler) FromPov(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req povRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(gctx, err)
		return
	}

	tree, err := req.Tree.FromPov(req.From)
	metrics.RecordTreeRequest("pov", err)

	if err != nil {
		l.Info().Err(err).Send()
		fail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Data(povData{tree}))
}

// PathTo handles http request to find the path between two nodes.
func (h *Handler) PathTo(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req pathRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingFailed(gctx, err)
		return
	}

	path, err := req.Tree.PathTo(req.From, req.To)
	metrics.RecordTreeRequest("path", err)

	if err != nil {
		l.Info().Err(err).Send()
		fail(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Data(pathData{path}))
}
