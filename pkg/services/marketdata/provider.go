package marketdata

import (
	"context"
	"time"

	"github.com/sandrolex/rsu/pkg/models/domain"
)

// Provider resolves the close price of a ticker for a given day. When the
// market was closed on that day, implementations fall back to the closest
// prior trading day.
type Provider interface {
	ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error)
}
