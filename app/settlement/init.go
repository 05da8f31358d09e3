package settlement

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/streaks/app/betting"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
)

const (
	RepoKey    = "settlements_repository"
	ServiceKey = "settlements_service"
)

// InitRepositories registers the settlement repository and service.
// Every other domain module must be initialized first.
func InitRepositories(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid settlement configuration: " + err.Error())
	}

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo,
		container.DB,
		markets.FromContainer(container),
		betting.FromContainer(container),
		profiles.FromContainer(container),
		ledger.FromContainer(container),
		config,
		container.Clock,
		container.Logger.With(logger.Fields{"module": "settlement"}),
	)
	container.RegisterService(ServiceKey, srv)
}

// FromContainer returns the registered settlement service
func FromContainer(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

// MountAuthenticated mounts the settlement routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	r.POST("/markets/:id/settle", handler.Settle)
	r.POST("/markets/:id/settle-loss", handler.SettleLoss)
	r.POST("/markets/:id/sweep-losses", handler.SweepLosses)
	r.POST("/bets/:id/settle", handler.SettleBet)
	r.GET("/settlements/me", handler.GetMySettlements)
}
