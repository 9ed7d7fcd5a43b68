package catalogrepo

import "pharmacy/internal/core/domain/model/kernel"

// aggregateTracker records aggregates written inside a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}
