package ports

import (
	"context"

	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
)

// MetricCalculator defines the interface for computing a metric between two strings.
type MetricCalculator interface {
	Compute(ctx context.Context, a, b string) (domain.Result, error)
}
