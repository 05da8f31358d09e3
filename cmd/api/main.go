package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/joefazee/streaks/app"
	"github.com/joefazee/streaks/app/api"
	"github.com/joefazee/streaks/app/betting"
	"github.com/joefazee/streaks/app/database"
	apiDoc "github.com/joefazee/streaks/app/doc"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/oracle"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/app/settlement"
	_ "github.com/joefazee/streaks/docs"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/internal/router"
	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/security"
)

// @title Streaks API
// @version 1.0
// @description Prediction markets with streak multipliers, pari-mutuel payouts and streak insurance.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLog := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "streaks-api",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		appLog.Fatal(err, map[string]interface{}{"stage": "database"})
	}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB.MigrationsDir, cfg.DB.URL()); err != nil {
			appLog.Fatal(err, map[string]interface{}{"stage": "migrate"})
		}
	}

	clock := clockwork.NewRealClock()
	tokenMaker, err := security.NewPasetoMaker(cfg.Security.SymmetricKey, clock)
	if err != nil {
		appLog.Fatal(err, map[string]interface{}{"stage": "token maker"})
	}

	container := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), appLog, clock, cfg.Cache)
	initModules(container, cfg)

	if err := ledger.FromContainer(container).SeedInsuranceFund(context.Background()); err != nil {
		appLog.Fatal(err, map[string]interface{}{"stage": "insurance fund"})
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware())
	r.GET("/api/v1/healthz", api.HealthCheck(cfg.Env, cfg.Version))

	limiter := api.NewRateLimiter(cfg.RateLimit, clock)
	mountRoutes(r, container, cfg, limiter)

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	apiDoc.Init(r, cfg.Env, addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("starting streaks api", map[string]interface{}{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, map[string]interface{}{"stage": "listen"})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error(err, map[string]interface{}{"stage": "shutdown"})
	}
	appLog.Info("server stopped", nil)
}

// initModules registers every module in dependency order
func initModules(container *deps.Container, cfg *app.Config) {
	ledger.InitRepositories(container, &cfg.Ledger)
	profiles.InitRepositories(container, &cfg.Profiles)
	oracle.InitService(container, &cfg.Oracle)
	markets.InitRepositories(container, &cfg.Markets)
	betting.InitRepositories(container, &cfg.Betting)
	settlement.InitRepositories(container, &cfg.Settlement)
}

func mountRoutes(r *gin.Engine, container *deps.Container, cfg *app.Config, limiter *api.RateLimiter) {
	mounter := router.NewMounter(container)

	mounter.Public(r, limiter.Middleware()).
		Mount(markets.MountPublic, betting.MountPublic)

	mounter.Authenticated(r, api.RequireIdentity(container.TokenMaker), limiter.Middleware()).
		Mount(
			ledger.MountAuthenticated,
			profiles.MountAuthenticated,
			markets.MountAuthenticated,
			betting.MountAuthenticated,
			settlement.MountAuthenticated,
		).
		MountIf(cfg.IsDevelopment() || cfg.Ledger.AirdropEnabled, ledger.MountAirdrop)
}
