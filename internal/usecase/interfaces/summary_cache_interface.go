package interfaces

import (
	"context"
	"time"
)

// ISummaryCache keeps generated AI texts. Get reports found=false on a miss,
// without error.
type ISummaryCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
