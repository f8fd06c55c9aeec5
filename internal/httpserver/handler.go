package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventory-service/internal/middleware"
	"inventory-service/internal/model"
	"inventory-service/pkg/response"
	"inventory-service/web"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerFormRoutes(); err != nil {
		return err
	}
	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(srv.fallback)
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	// Only the direct peer is trusted for client IPs in production.
	if srv.environment == string(model.EnvironmentProduction) {
		if err := srv.gin.SetTrustedProxies(nil); err != nil {
			srv.l.Warnf(ctx, "SetTrustedProxies: %v", err)
		}
		srv.l.Infof(ctx, "Proxy headers ignored (production)")
	} else {
		srv.l.Infof(ctx, "Environment: %s", srv.environment)
	}

	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog(), mw.RateLimit())
	if srv.rateLimitPerMin > 0 {
		srv.l.Infof(ctx, "Rate limit: %d requests/min per client", srv.rateLimitPerMin)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	swagger := ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	)
	srv.gin.GET("/docs/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
			return
		}
		swagger(c)
	})
}

// registerFormRoutes serves the embedded HTML forms.
func (srv HTTPServer) registerFormRoutes() error {
	for _, name := range web.FormNames {
		page, err := web.Forms.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading form %s: %w", name, err)
		}
		srv.gin.GET("/"+name, func(c *gin.Context) {
			response.Binary(c, response.ContentTypeHTML, page)
		})
	}
	return nil
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	srv.setupInventoryDomain(context.Background())
	return nil
}
