package hsn

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/courier-portal/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Loader produces the source taxonomy.
type Loader func() (Tree, error)

// State describes where a Provider is in its one-way lifecycle.
type State int32

const (
	// StateUnbuilt means no caller has requested the index yet.
	StateUnbuilt State = iota
	// StateBuilt means the index is available.
	StateBuilt
	// StateFailed means the build failed; the error is kept for the process lifetime.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilt:
		return "built"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Provider builds the Index lazily, exactly once. Concurrent first callers
// block on the same build. The result, success or failure, is never rebuilt.
type Provider struct {
	build func() (*Index, error)
	state atomic.Int32
	err   atomic.Pointer[error]
}

// NewProvider returns a Provider that calls load on first use.
func NewProvider(load Loader) *Provider {
	p := &Provider{}
	p.build = sync.OnceValues(func() (*Index, error) {
		start := time.Now()

		tree, err := load()
		if err != nil {
			err = fmt.Errorf("build hsn index: %w", err)
			metrics.RecordHSNIndexBuild(time.Since(start), 0, err)
			log.Error().Err(err).Msg("HSN index build failed")
			p.err.Store(&err)
			p.state.Store(int32(StateFailed))
			return nil, err
		}

		ix := NewIndex(tree)
		duration := time.Since(start)
		metrics.RecordHSNIndexBuild(duration, ix.Len(), nil)
		log.Info().
			Int("entries", ix.Len()).
			Dur("duration", duration).
			Msg("HSN index built")
		p.state.Store(int32(StateBuilt))
		return ix, nil
	})
	return p
}

// NewFileProvider returns a Provider that loads the dataset at path.
func NewFileProvider(path string) *Provider {
	return NewProvider(func() (Tree, error) {
		return LoadFile(path)
	})
}

// NewStaticProvider returns a Provider over an in-memory tree.
func NewStaticProvider(tree Tree) *Provider {
	return NewProvider(func() (Tree, error) {
		return tree, nil
	})
}

// Index returns the built index, building it on the first call.
func (p *Provider) Index() (*Index, error) {
	return p.build()
}

// State reports the current lifecycle state without triggering a build.
func (p *Provider) State() State {
	return State(p.state.Load())
}

// Check reports whether the index can serve searches. It never triggers a build:
// an unbuilt provider is healthy because the first search will build it.
func (p *Provider) Check() error {
	if p.State() == StateFailed {
		if err := p.err.Load(); err != nil {
			return *err
		}
	}
	return nil
}
