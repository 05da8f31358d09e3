package profiles

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
)

const (
	RepoKey    = "profiles_repository"
	ServiceKey = "profiles_service"
)

// InitRepositories registers the profile repository and service.
// The ledger module must be initialized first.
func InitRepositories(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid profiles configuration: " + err.Error())
	}

	profileCache, err := cache.New[models.UserProfile](container.Cache, "profiles", container.Clock)
	if err != nil {
		panic("Invalid profiles cache: " + err.Error())
	}

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo, container.DB, ledger.FromContainer(container), profileCache, config, container.Clock, container.Logger.With(logger.Fields{"module": "profiles"}))
	container.RegisterService(ServiceKey, srv)
}

// FromContainer returns the registered profile service
func FromContainer(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

// MountAuthenticated mounts the caller's profile routes
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(FromContainer(container))

	group := r.Group("/profiles")
	group.GET("/me", handler.GetMyProfile)
	group.POST("/me/insurance", handler.PurchaseInsurance)
}
