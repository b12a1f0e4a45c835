package commands

import (
	"context"
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/adapters"
)

// openAdapter создает адаптер и подключается.
// Вызывающий обязан закрыть адаптер.
func openAdapter(ctx context.Context, config adapters.Config) (adapters.Adapter, error) {
	adapter, err := adapters.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter: %w", err)
	}
	return adapter, nil
}
