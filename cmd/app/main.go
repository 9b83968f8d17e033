package main

import (
	"context"
	"fmt"
	"net/http"

	"valuekit/cmd"
	adapter "valuekit/internal/adapters/in/http"
	"valuekit/internal/core/domain/model/kernel"
	"valuekit/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)
	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	// A .env file is optional, process environment wins either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPHost:    cmd.EnvOrDefault("HTTP_HOST", "0.0.0.0"),
		HTTPPort:    cmd.EnvOrDefault("HTTP_PORT", "8000"),
		OpenAPISpec: cmd.EnvOrDefault("OPENAPI_SPEC", "api/openapi.json"),
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	doc := loadOpenAPISpec(configs.OpenAPISpec)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return kernel.NewUUID().String()
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})

	server := adapter.NewServer(
		app.CreateGetGreetingQueryHandler(),
		app.CreateGetItemQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%s", configs.HTTPHost, configs.HTTPPort)))
}

func loadOpenAPISpec(path string) *openapi3.T {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Error loading OpenAPI spec from %s: %v", path, err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		log.Fatalf("Invalid OpenAPI spec %s: %v", path, err)
	}

	return doc
}
