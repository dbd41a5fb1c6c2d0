package cache

import (
	"context"
	"time"

	"github.com/stadust/gdcf/response"
)

// DrainSecondaries stores every secondary object from a response before the
// caller stores the primary result, per the snapshot-consistency invariant:
// nothing should ever be able to observe a primary in cache whose
// secondaries aren't there yet. A synthesized missing-id secondary is
// marked absent rather than stored, so a later lookup of that creator or
// song id doesn't trigger a needless network call.
func DrainSecondaries(ctx context.Context, c Cache, secondaries []response.Secondary, ttl time.Duration) error {
	for _, sec := range secondaries {
		if sec.Kind == response.SecondaryMissing {
			if err := c.MarkAbsent(ctx, sec.Key, ttl); err != nil {
				return err
			}
			continue
		}
		if err := c.Store(ctx, sec.Key, sec.Value, ttl); err != nil {
			return err
		}
	}
	return nil
}
