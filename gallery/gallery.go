// Package gallery keeps the loaded state of the video gallery: which videos are shown, how far
// into the catalog it has read and whether more can be loaded. Every request is stamped with an
// epoch and only the outcome of the latest request is applied.
package gallery

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/streamio"
)

// ErrSuperseded is returned by Fetch for a request that a newer one replaced before it started.
var ErrSuperseded = errors.New("request superseded")

// Source assembles bounded result sets. *streamio.Aggregator implements it.
type Source interface {
	FetchUpTo(ctx context.Context, creds streamio.Credentials, q streamio.Query) (*streamio.Result, error)
}

// Options are the parameters a reload starts from.
type Options struct {
	Credentials streamio.Credentials
	// Total is the number of catalog records the gallery reads at most.
	Total int
	// Batch is how many records one request reads. Zero reads the whole Total at once.
	Batch int
	Tags  []string
	Sort  streamio.SortOrder
}

func (o Options) step() int {
	if o.Batch <= 0 || o.Batch > o.Total {
		return o.Total
	}
	return o.Batch
}

// Request is one epoch-stamped load.
type Request struct {
	Epoch  uint64
	Query  streamio.Query
	Append bool
}

// Outcome is a finished Request.
type Outcome struct {
	Request Request
	Result  *streamio.Result
	Err     error
}

// State is a snapshot of the gallery.
type State struct {
	Options Options
	// Videos are the ready videos in catalog order.
	Videos []*streamio.Video
	// Loaded counts raw records read, ready or not. It is the offset of the next page.
	Loaded       int
	Pending      bool
	Appending    bool
	CanLoadMore  bool
	Unconfigured bool
	// Err is the failure of the last applied request.
	Err   error
	Epoch uint64
}

// Gallery is safe for concurrent use.
type Gallery struct {
	source Source
	epoch  atomic.Uint64

	mu     sync.Mutex
	opts   Options
	cancel context.CancelFunc
	state  State
}

// New returns an empty gallery. Nothing is loaded until the first Reload.
func New(source Source, opts Options) *Gallery {
	return &Gallery{source: source, opts: opts}
}

// Epoch is the stamp of the latest request.
func (g *Gallery) Epoch() uint64 {
	return g.epoch.Load()
}

// Options returns the current parameters.
func (g *Gallery) Options() Options {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opts
}

// Configure replaces the parameters. They take effect on the next Reload.
func (g *Gallery) Configure(opts Options) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.opts = opts
}

// Reload starts over from the beginning of the catalog. It always supersedes whatever is in
// flight and clears the shown videos.
func (g *Gallery) Reload() Request {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}

	epoch := g.epoch.Add(1)
	g.state = State{Pending: true, Epoch: epoch}

	return Request{
		Epoch: epoch,
		Query: streamio.Query{
			Total: g.opts.step(),
			Tags:  g.opts.Tags,
			Sort:  g.opts.Sort,
		},
	}
}

// More continues where the last load stopped. It is refused while a request is pending or when
// nothing more can be loaded.
func (g *Gallery) More() (Request, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Pending || !g.state.CanLoadMore {
		return Request{}, false
	}

	epoch := g.epoch.Add(1)
	g.state.Pending = true
	g.state.Appending = true
	g.state.Epoch = epoch

	return Request{
		Epoch:  epoch,
		Append: true,
		Query: streamio.Query{
			Total:  min(g.opts.step(), g.opts.Total-g.state.Loaded),
			Tags:   g.opts.Tags,
			Sort:   g.opts.Sort,
			Offset: g.state.Loaded,
		},
	}, true
}

// Fetch runs req. A Reload issued meanwhile cancels it.
func (g *Gallery) Fetch(ctx context.Context, req Request) Outcome {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.mu.Lock()
	if req.Epoch != g.epoch.Load() {
		g.mu.Unlock()
		return Outcome{Request: req, Err: ErrSuperseded}
	}
	g.cancel = cancel
	creds := g.opts.Credentials
	g.mu.Unlock()

	result, err := g.source.FetchUpTo(ctx, creds, req.Query)
	return Outcome{Request: req, Result: result, Err: err}
}

// Apply folds a finished request into the state. It reports false and changes nothing when the
// outcome belongs to a superseded request.
func (g *Gallery) Apply(o Outcome) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if o.Request.Epoch != g.epoch.Load() {
		log.Debugf("discarding outcome of request %d, latest is %d", o.Request.Epoch, g.epoch.Load())
		return false
	}

	g.state.Pending = false
	g.state.Appending = false
	g.state.Options = g.opts

	if o.Err != nil {
		log.Errorf("gallery request %d failed: %v", o.Request.Epoch, o.Err)
		g.state.Err = o.Err
		if !o.Request.Append {
			g.state.CanLoadMore = false
		}
		return true
	}

	res := o.Result
	g.state.Err = nil
	g.state.Unconfigured = res.Unconfigured
	if res.Unconfigured {
		g.state.Videos = nil
		g.state.Loaded = 0
		g.state.CanLoadMore = false
		return true
	}

	ready := streamio.FilterReady(res.Videos)
	if o.Request.Append {
		g.state.Videos = append(g.state.Videos, ready...)
	} else {
		g.state.Videos = ready
	}

	g.state.Loaded = res.Offset
	g.state.CanLoadMore = g.state.Loaded < g.opts.Total && res.HasMore()

	log.Infof("gallery request %d applied: %d ready of %d read", o.Request.Epoch, len(g.state.Videos), g.state.Loaded)
	return true
}

// Load fetches and applies req in one go.
func (g *Gallery) Load(ctx context.Context, req Request) (State, error) {
	o := g.Fetch(ctx, req)
	if !g.Apply(o) && o.Err == nil {
		o.Err = ErrSuperseded
	}
	return g.State(), o.Err
}

// State returns a snapshot. The Videos slice is a copy.
func (g *Gallery) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	s.Options = g.opts
	s.Videos = append([]*streamio.Video(nil), g.state.Videos...)
	return s
}
