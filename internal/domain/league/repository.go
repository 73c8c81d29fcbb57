package league

import "context"

// Filter narrows league listings. Zero values mean "any". Lifecycle
// status is derived from the clock, so status filtering happens in the
// use case layer, not here.
type Filter struct {
	Sport SportType
	Kind  Kind
}

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	Create(ctx context.Context, l League) error
}
