package app

import (
	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/core"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
)

type Service struct {
	Source       ports.DocumentSourcePort
	Parser       ports.DocumentParserPort
	Rows         ports.RowPolicyPort
	Sink         ports.RecordSinkPort
	Identifiers  ports.IdentifierListPort
	MaxMergeHops int
}

func NewService(cfg Config) Service {
	cfg = NormalizeConfig(cfg)
	cache := adapters.NewDocumentCacheAdapter(cfg.CacheDir)
	fetcher := adapters.NewDocumentHTTPAdapter(cfg.BaseURL, cfg.RequestDelay, cfg.HTTPTimeout)
	return Service{
		Source:       adapters.NewDocumentSourceAdapter(cache, fetcher, cfg.Store),
		Parser:       adapters.NewHTMLParserAdapter(),
		Rows:         policies.NewDatasetPolicy(cfg.DatasetTag),
		Sink:         adapters.NewOutputSinkAdapter(cfg.OutputPath),
		Identifiers:  adapters.NewIdentifierListAdapter(),
		MaxMergeHops: cfg.MaxMergeHops,
	}
}

func (s Service) engine() core.ResolutionEngine {
	return core.NewResolutionEngine(s.Source, s.Parser, s.Rows, s.MaxMergeHops)
}
