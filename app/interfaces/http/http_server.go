package http

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"lendsqr.dev/admin-api-gateway/app/interfaces/http/middleware"
	v1 "lendsqr.dev/admin-api-gateway/app/interfaces/http/routes/v1"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "lendsqr.dev/admin-api-gateway/docs"
)

type HttpServer struct {
	engine  *gin.Engine
	v1Route *v1.V1Route
}

func (s *HttpServer) bindSwagger() {
	g := s.engine.Group("/")

	g.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func NewHttpServer(v1Route *v1.V1Route) *HttpServer {
	if os.Getenv("local_dev") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HttpServer{
		gin.New(),
		v1Route,
	}
	server.engine.Use(middleware.CORS())
	server.engine.Use(middleware.LoggerMiddleware(logger.Logger))
	server.engine.Use(middleware.TransactionMiddleware())
	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	server.bindSwagger()
	return &server
}

func (httpServer *HttpServer) Run() error {
	port := 8080
	root := httpServer.engine.Group("/")
	httpServer.v1Route.RegisterRouter(root)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
