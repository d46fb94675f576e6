// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jstoebel/exercises/internal/accountdelivery"
	"github.com/jstoebel/exercises/internal/accountservice"
	"github.com/jstoebel/exercises/internal/domain"
	"github.com/jstoebel/exercises/internal/ledgerdelivery"
	"github.com/jstoebel/exercises/internal/ledgerrepo"
	"github.com/jstoebel/exercises/internal/ledgerservice"
	"github.com/jstoebel/exercises/internal/metrics"
	"github.com/jstoebel/exercises/internal/middleware"
	"github.com/jstoebel/exercises/internal/povdelivery"
	"github.com/jstoebel/exercises/pkg/amountpkg"
	"github.com/jstoebel/exercises/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
// A nil conn keeps the ledger in memory.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	var ledgerRepo ledgerservice.Repo = ledgerrepo.NewRepoMem()
	if conn != nil {
		ledgerRepo = ledgerrepo.NewRepoPGS(conn)
	}

	accountService := accountservice.New()
	ledgerService := ledgerservice.New(ledgerRepo)

	if config.LedgerSeedFile != "" {
		ctx := logger.WithContext(context.Background())
		if err := seedLedger(ctx, conn, ledgerService, config.LedgerSeedFile); err != nil {
			return nil, fmt.Errorf("cannot seed ledger: %w", err)
		}
	}

	accountHandler := accountdelivery.NewHandler(accountService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	povHandler := povdelivery.NewHandler()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Middleware())
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", metrics.Handler())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.POST("/accounts/:id/open", accountHandler.Open)
	engine.POST("/accounts/:id/close", accountHandler.Close)
	engine.POST("/accounts/:id/deposit", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdraw", accountHandler.Withdraw)

	engine.GET("/users", ledgerHandler.Users)
	engine.POST("/users", ledgerHandler.AddUser)
	engine.POST("/ious", ledgerHandler.AddIOU)

	engine.POST("/trees/pov", povHandler.FromPov)
	engine.POST("/trees/path", povHandler.PathTo)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", amountpkg.ValidAmount)
		if err != nil {
			return nil, fmt.Errorf("cannot register amount validator: %w", err)
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}

// seedLedger loads the seed file into an empty ledger. A postgres ledger is
// seeded in one transaction so a failing seed leaves no rows behind.
func seedLedger(ctx context.Context, conn *sql.DB, ls *ledgerservice.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var snap domain.LedgerSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	if conn == nil {
		return ls.Seed(ctx, snap.Users)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := ledgerservice.New(ledgerrepo.NewRepoPGS(tx)).Seed(ctx, snap.Users); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
