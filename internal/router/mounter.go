// Package router mounts module routes onto the /api/v1 prefix.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/streaks/internal/deps"
)

const apiPrefix = "/api/v1"

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// Public routes - no identity required
func (m *Mounter) Public(engine *gin.Engine, middleware ...gin.HandlerFunc) *RouteGroup {
	group := engine.Group(apiPrefix, middleware...)
	return &RouteGroup{group: group, container: m.container}
}

// Authenticated routes - identity must run first so handlers see the caller
func (m *Mounter) Authenticated(engine *gin.Engine, identity gin.HandlerFunc, middleware ...gin.HandlerFunc) *RouteGroup {
	group := engine.Group(apiPrefix, append([]gin.HandlerFunc{identity}, middleware...)...)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFuncs ...MountFunc) *RouteGroup {
	for _, mount := range mountFuncs {
		mount(rg.group, rg.container)
	}
	return rg
}

// MountIf mounts only when enabled, such as development-only routes
func (rg *RouteGroup) MountIf(enabled bool, mountFunc MountFunc) *RouteGroup {
	if enabled {
		mountFunc(rg.group, rg.container)
	}
	return rg
}
