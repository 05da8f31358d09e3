package markets

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/streaks/app/oracle"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
)

const (
	RepoKey    = "markets_repository"
	ServiceKey = "markets_service"
)

// InitRepositories registers the market repository and service.
// The profiles module and the oracle must be initialized first.
func InitRepositories(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid markets configuration: " + err.Error())
	}

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo,
		container.DB,
		profiles.FromContainer(container),
		oracle.FromContainer(container),
		container.Sanitizer,
		config,
		container.Clock,
		container.Logger.With(logger.Fields{"module": "markets"}),
	)
	container.RegisterService(ServiceKey, srv)
}

// FromContainer returns the registered market service
func FromContainer(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

// MountPublic mounts the read-only market routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	group := r.Group("/markets")
	group.GET("", handler.GetMarkets)
	group.GET("/:id", handler.GetMarketByID)
}

// MountAuthenticated mounts the market routes that need a caller
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	group := r.Group("/markets")
	group.POST("", handler.CreateMarket)
	group.POST("/:id/resolve", handler.ResolveMarket)
	group.POST("/:id/resolve/oracle", handler.ResolveMarketWithOracle)
}
