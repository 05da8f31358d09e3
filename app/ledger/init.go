package ledger

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
)

const (
	RepoKey    = "ledger_repository"
	ServiceKey = "ledger_service"
)

// InitRepositories registers the ledger repository and service
func InitRepositories(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid ledger configuration: " + err.Error())
	}

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo, container.DB, config, container.Clock, container.Logger.With(logger.Fields{"module": "ledger"}))
	container.RegisterService(ServiceKey, srv)
}

// FromContainer returns the registered ledger service
func FromContainer(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

// MountAuthenticated mounts the caller's ledger routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	group := r.Group("/ledger")
	group.GET("/balance", handler.GetBalance)
	group.GET("/entries", handler.GetEntries)
}

// MountAirdrop mounts the development airdrop route
func MountAirdrop(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))
	r.POST("/ledger/airdrop", handler.Airdrop)
}
