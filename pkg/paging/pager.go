package paging

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoMorePages is returned by NextPage after the last page.
	ErrNoMorePages = errors.New("no more pages")
	// ErrRepeatedToken is returned when a page hands back a token that was
	// already followed in the same run.
	ErrRepeatedToken = errors.New("continuation token repeated")
)

// Fetcher retrieves one page. token is nil for the first request and the
// previous page's continuation token afterwards.
type Fetcher[P Continuable] func(ctx context.Context, token *string) (P, error)

// Option configures a Pager.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *Metrics
	policy  Policy
	runID   string
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records fetches and failures in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithPolicy labels the run with the envelope's policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}

// Pager follows continuation tokens until a page reports none. It is built
// on the Azure SDK pager and keeps its More/NextPage contract. A Pager is
// not safe for concurrent use.
type Pager[P Continuable] struct {
	inner  *runtime.Pager[P]
	opts   options
	seen   map[string]struct{}
	fetchN int
}

// NewPager returns a pager that calls fetch for every page.
func NewPager[P Continuable](fetch Fetcher[P], opts ...Option) *Pager[P] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	o.logger = o.logger.With(
		zap.String("run_id", o.runID),
		zap.String("family", o.policy.Family),
	)

	p := &Pager[P]{
		opts: o,
		seen: make(map[string]struct{}),
	}
	p.inner = runtime.NewPager(runtime.PagingHandler[P]{
		More: func(page P) bool {
			_, ok := page.ContinuationToken()
			return ok
		},
		Fetcher: func(ctx context.Context, current *P) (P, error) {
			return p.fetch(ctx, fetch, current)
		},
	})
	return p
}

// RunID identifies this pager in logs.
func (p *Pager[P]) RunID() string { return p.opts.runID }

// More reports whether another page can be requested.
func (p *Pager[P]) More() bool { return p.inner.More() }

// NextPage fetches the next page.
func (p *Pager[P]) NextPage(ctx context.Context) (P, error) {
	if !p.inner.More() {
		var zero P
		return zero, ErrNoMorePages
	}
	return p.inner.NextPage(ctx)
}

func (p *Pager[P]) fetch(ctx context.Context, fetch Fetcher[P], current *P) (P, error) {
	var zero P
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var token *string
	if current != nil {
		next, ok := (*current).ContinuationToken()
		if !ok {
			return zero, ErrNoMorePages
		}
		if _, dup := p.seen[next]; dup {
			p.opts.metrics.failed(p.opts.policy.Family)
			p.opts.logger.Error("continuation token repeated", zap.String("token", next))
			return zero, fmt.Errorf("%w: %q", ErrRepeatedToken, next)
		}
		if next == "" {
			p.opts.logger.Warn("following empty continuation token",
				zap.Stringer("policy", p.opts.policy.Empty),
				zap.String("review", p.opts.policy.Review))
		}
		token = &next
	}

	page, err := fetch(ctx, token)
	if err != nil {
		p.opts.metrics.failed(p.opts.policy.Family)
		p.opts.logger.Debug("page fetch failed", zap.Int("page", p.fetchN), zap.Error(err))
		return zero, err
	}
	// A token counts as followed only once its page arrived, so a failed
	// fetch can be retried with the same token.
	if token != nil {
		p.seen[*token] = struct{}{}
	}

	next, more := page.ContinuationToken()
	p.opts.metrics.fetched(p.opts.policy.Family)
	p.opts.logger.Debug("page fetched",
		zap.Int("page", p.fetchN),
		zap.Bool("more", more),
		zap.String("next", next))
	p.fetchN++
	return page, nil
}

// Collect drains pager and concatenates the items of every page in the
// order the pages were served.
func Collect[P Continuable, T any](ctx context.Context, pager *Pager[P], items func(P) []T) ([]T, error) {
	var out []T
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, items(page)...)
	}
	return out, nil
}
