package http_init

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// ControllerPool owns the gin engine and mounts every controller under the
// shared API prefix. WebSocket upgrades go through the same engine.
type ControllerPool struct {
	controllers []Controller
	rg          *gin.RouterGroup
	engine      *gin.Engine
}

func NewControllerPool() *ControllerPool {
	engine := gin.Default() // ! Change on NGINX setup

	engine.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return &ControllerPool{
		controllers: make([]Controller, 0, 4),
		rg:          engine.Group(apiPrefix),
		engine:      engine,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.controllers = append(pool.controllers, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.controllers {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}
