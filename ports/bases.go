package ports

import (
	"context"

	"nicegauss/domain/dist"
)

// BasesPort supplies the per-base niceness summaries the analysis runs over.
// The fetch owns all network concerns; the analysis treats the returned
// summaries as already-materialized input.
type BasesPort interface {
	FetchBases(ctx context.Context) ([]*dist.BaseSummary, error)
}
