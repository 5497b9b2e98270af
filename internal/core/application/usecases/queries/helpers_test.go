package queries_test

import (
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
)

// mockAggregateTracker satisfies the repositories' tracker dependency in
// tests that seed data directly through the repository implementations.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, interface{}) {}

func mustPrincipal(id kernel.UUID, role principal.Role) principal.Principal {
	p, err := principal.NewPrincipal(id, role)
	if err != nil {
		panic(err)
	}
	return p
}
