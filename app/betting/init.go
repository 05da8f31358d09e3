package betting

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
)

const (
	RepoKey    = "bets_repository"
	ServiceKey = "bets_service"
)

// InitRepositories registers the bet repository and service.
// The ledger, profiles and markets modules must be initialized first.
func InitRepositories(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid betting configuration: " + err.Error())
	}

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo,
		container.DB,
		markets.FromContainer(container),
		profiles.FromContainer(container),
		ledger.FromContainer(container),
		config,
		container.Clock,
		container.Logger.With(logger.Fields{"module": "betting"}),
	)
	container.RegisterService(ServiceKey, srv)
}

// FromContainer returns the registered bet service
func FromContainer(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

// MountPublic mounts the read-only bet routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	r.GET("/markets/:id/bets", handler.GetMarketBets)
	r.GET("/bets/:id", handler.GetBetByID)
}

// MountAuthenticated mounts the bet routes that need a caller
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	r.POST("/markets/:id/bets", handler.PlaceBet)
	r.GET("/markets/:id/bets/me", handler.GetMyBet)
}
