package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// GetDepotStateQueryHandler renders the depot state.
type GetDepotStateQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetDepotStateQueryHandler creates a handler backed by uowFactory.
func NewGetDepotStateQueryHandler(uowFactory ReadUoWFactory) GetDepotStateQueryHandler {
	return GetDepotStateQueryHandler{uowFactory: uowFactory}
}

// Handle returns the rendered state verbatim.
func (h GetDepotStateQueryHandler) Handle(ctx context.Context, query GetDepotStateQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var state string
	err := readDepot(ctx, h.uowFactory, func(d *depot.Depot) error {
		state = d.RenderState()
		return nil
	})
	if err != nil {
		return "", err
	}

	return state, nil
}
