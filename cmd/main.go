package main

import (
	"context"
	"net/http"

	api "github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/config"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/handler"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/helper/logger"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/jobs"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/services"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/rs/zerolog/log"
)

func init() {
	tonic.SetErrorHook(api.ProblemErrorHook)
}

func main() {
	cfg := config.Load()
	logger.Init()

	// Wire services and controller
	httpClient := services.NewHTTPClient(cfg.FetchTimeout)
	postmanSvc := services.NewPostmanService(cfg.ConvertOptions())
	swaggerSvc := services.NewSwaggerUIService(httpClient, postmanSvc, cfg.ConvertOptions())
	controller := handler.NewToolsController(postmanSvc, swaggerSvc, httpClient)
	router := api.NewRouter(cfg.APIVersion, controller)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jobs.ScheduleCollections(ctx, swaggerSvc, cfg.Sources, cfg.OutputDir, cfg.Schedule)

	// Start server
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("Server luistert")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server gestopt")
	}
}
