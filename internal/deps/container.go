package deps

import (
	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/security"
	"gorm.io/gorm"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Clock      clockwork.Clock
	Cache      cache.Config

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB,
	tokenMaker security.Maker,
	sanitizer sanitizer.HTMLStripperer,
	logger logger.Logger,
	clock clockwork.Clock,
	cacheConfig cache.Config,
) *Container {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Container{
		DB:           db,
		TokenMaker:   tokenMaker,
		Sanitizer:    sanitizer,
		Logger:       logger,
		Clock:        clock,
		Cache:        cacheConfig,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
