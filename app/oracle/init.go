package oracle

import (
	"fmt"

	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/deps"
	"github.com/joefazee/streaks/internal/logger"
)

const ServiceKey = "oracle_service"

// New builds the configured price oracle
func New(container *deps.Container, config *Config) (PriceOracle, error) {
	switch config.Provider {
	case HermesProvider:
		quotes, err := cache.New[Quote](container.Cache, "quotes", container.Clock)
		if err != nil {
			return nil, err
		}
		return NewHermesOracle(config, nil, quotes, container.Clock, container.Logger.With(logger.Fields{"module": "oracle"})), nil
	case StaticProvider:
		return NewStaticOracle(config.StaticPrices, container.Clock)
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", config.Provider)
	}
}

// InitService registers the price oracle
func InitService(container *deps.Container, config *Config) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid oracle configuration: " + err.Error())
	}

	o, err := New(container, config)
	if err != nil {
		panic("Invalid oracle: " + err.Error())
	}
	container.RegisterService(ServiceKey, o)
}

// FromContainer returns the registered price oracle
func FromContainer(container *deps.Container) PriceOracle {
	return container.GetService(ServiceKey).(PriceOracle)
}
