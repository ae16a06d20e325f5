package app

import (
	"context"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// Inspect resolves an identifier without touching the sink.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (types.Resolution, error) {
	id, err := parseIdentifier(req.ID)
	if err != nil {
		return types.Resolution{}, err
	}
	return s.engine().Resolve(ctx, id)
}
