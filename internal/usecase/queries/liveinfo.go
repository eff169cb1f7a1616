package queries

import (
	"context"

	"flute-live-api/internal/domain/event"
)

// ConfigReader is the read side of the configuration store. It never fails;
// an unreachable or empty store yields the built-in defaults.
type ConfigReader interface {
	Read(ctx context.Context) event.LiveInfo
}

type LiveInfoQueries interface {
	Get(ctx context.Context) event.LiveInfo
}

type liveInfoQueriesImpl struct {
	reader ConfigReader
}

func NewLiveInfoQueries(reader ConfigReader) LiveInfoQueries {
	return &liveInfoQueriesImpl{reader: reader}
}

func (q *liveInfoQueriesImpl) Get(ctx context.Context) event.LiveInfo {
	return q.reader.Read(ctx)
}
