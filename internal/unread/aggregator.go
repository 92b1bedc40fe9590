package unread

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
)

// DefaultConcurrency bounds the number of conversations checked at once.
const DefaultConcurrency = 8

// Source provides the two lookups an unread check needs.
type Source interface {
	LastRead(ctx context.Context, channelID string) (string, error)
	LatestTimestamp(ctx context.Context, channelID string) (string, error)
}

// Aggregator resolves unread signals for many conversations concurrently.
type Aggregator struct {
	src         Source
	concurrency int
	log         *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithConcurrency sets the maximum number of concurrent checks.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger that receives degraded lookups.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates an Aggregator over src.
func New(src Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		src:         src,
		concurrency: DefaultConcurrency,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Resolve checks every channel and returns one signal per input, in input
// order. It waits for all checks; a failed lookup yields Unknown for that
// channel only and is never returned as an error.
func (a *Aggregator) Resolve(ctx context.Context, channelIDs []string) []Signal {
	mapper := iter.Mapper[string, Signal]{MaxGoroutines: a.concurrency}
	return mapper.Map(channelIDs, func(id *string) Signal {
		return a.check(ctx, *id)
	})
}

func (a *Aggregator) check(ctx context.Context, id string) Signal {
	lastRead, err := a.src.LastRead(ctx, id)
	if err != nil {
		a.log.DebugContext(ctx, "unread check: last read lookup failed", "channel", id, "error", err)
		return Unknown
	}
	if lastRead == "" {
		a.log.DebugContext(ctx, "unread check: no last read marker", "channel", id)
		return Unknown
	}
	latest, err := a.src.LatestTimestamp(ctx, id)
	if err != nil {
		a.log.DebugContext(ctx, "unread check: history lookup failed", "channel", id, "error", err)
		return Unknown
	}
	s := Compute(lastRead, latest)
	a.log.DebugContext(ctx, "unread check", "channel", id, "last_read", lastRead, "latest", latest, "signal", s.String())
	return s
}

// Summary is a listing entry that can carry an unread signal.
type Summary[T any] interface {
	*T
	ChannelID() string
	Counter() *int
	SetSignal(Signal)
}

// Annotate resolves a signal for every channel and stores it in the entry
// at the same position. With unreadOnly, only entries passing Keep are
// returned; otherwise all entries are returned in order.
func Annotate[T any, P Summary[T]](ctx context.Context, a *Aggregator, channels []T, unreadOnly bool) []T {
	ids := make([]string, len(channels))
	for i := range channels {
		ids[i] = P(&channels[i]).ChannelID()
	}

	signals := a.Resolve(ctx, ids)
	for i := range channels {
		P(&channels[i]).SetSignal(signals[i])
	}

	if !unreadOnly {
		return channels
	}
	return lo.Filter(channels, func(c T, i int) bool {
		return Keep(P(&c).Counter(), signals[i])
	})
}
