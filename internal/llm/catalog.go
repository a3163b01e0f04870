package llm

import (
	"context"

	"github.com/rs/zerolog/log"
)

// FetchCatalog lists the provider's generation-capable models. Catalog
// failure must never abort startup: any transport or provider error is
// logged and an empty catalog returned, which pushes Resolve to the
// configured fallback.
func FetchCatalog(ctx context.Context, client Client) []Model {
	models, err := client.ListModels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("model catalog fetch failed, falling back to default model")
		return nil
	}

	var catalog []Model
	for _, m := range models {
		if m.Generation {
			catalog = append(catalog, m)
		}
	}

	log.Info().Int("total", len(models)).Int("generation", len(catalog)).Msg("model catalog fetched")
	return catalog
}
