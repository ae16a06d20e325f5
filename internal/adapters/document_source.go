package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// DocumentSourceAdapter reads a cached page when one exists and otherwise
// fetches it, optionally persisting the fresh copy. The existence check
// is the only cache-vs-network decision.
type DocumentSourceAdapter struct {
	Cache   ports.DocumentCachePort
	Fetcher ports.DocumentFetcherPort
	Store   bool
}

func NewDocumentSourceAdapter(cache ports.DocumentCachePort, fetcher ports.DocumentFetcherPort, store bool) DocumentSourceAdapter {
	return DocumentSourceAdapter{Cache: cache, Fetcher: fetcher, Store: store}
}

func (a DocumentSourceAdapter) Load(ctx context.Context, id types.Identifier) (types.RawDocument, error) {
	if a.Cache != nil && a.Cache.Exists(id) {
		log.Ctx(ctx).Debug().Str("id", id.String()).Msg("reading cached document")
		return a.Cache.ReadCached(id)
	}
	raw, err := a.Fetcher.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	if a.Store && a.Cache != nil {
		if err := a.Cache.Store(id, raw); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to store document")
		}
	}
	return raw, nil
}

var _ ports.DocumentSourcePort = DocumentSourceAdapter{}
