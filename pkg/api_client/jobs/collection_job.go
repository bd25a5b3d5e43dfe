package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/models"
	"github.com/developer-overheid-nl/don-swagger-postman/pkg/api_client/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RunCollections genereert één keer een collectie per bron. Een fout bij één bron
// stopt de andere niet; de laatste fout wordt teruggegeven.
func RunCollections(ctx context.Context, svc *services.SwaggerUIService, sources []models.CollectionSource, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	var lastErr error
	for _, src := range sources {
		col, err := svc.GenerateWithPath(ctx, src.URL, src.SwaggerPath)
		if err != nil {
			log.Error().Str("component", "job").Str("source", src.URL).Err(err).Msg("generatie mislukt")
			lastErr = err
			continue
		}
		name := src.Output
		if name == "" {
			name = services.DefaultOutputName(src.URL)
		}
		path := filepath.Join(outDir, filepath.Base(name))
		if err := services.WriteCollection(path, col); err != nil {
			log.Error().Str("component", "job").Str("file", path).Err(err).Msg("schrijven mislukt")
			lastErr = err
			continue
		}
		log.Info().Str("component", "job").Str("source", src.URL).Str("file", path).Msg("collectie geschreven")
	}
	return lastErr
}

// ScheduleCollections zet een cron job op die de opgegeven bronnen periodiek opnieuw genereert
func ScheduleCollections(ctx context.Context, svc *services.SwaggerUIService, sources []models.CollectionSource, outDir, spec string) *cron.Cron {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if len(sources) == 0 {
		log.Info().Str("component", "job").Msg("geen COLLECTION_SOURCES, geplande generatie staat uit")
		return c
	}

	_, err := c.AddFunc(spec, func() {
		jobCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()
		_ = RunCollections(jobCtx, svc, sources, outDir)
	})
	if err != nil {
		log.Error().Str("component", "job").Str("schedule", spec).Err(err).Msg("kon generatie niet plannen")
		return c
	}

	c.Start()
	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
