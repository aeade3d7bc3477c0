package extsort

// Observer receives progress notifications during one Sort call. It is
// the seam diagnostics (see internal/diag) hook into without extsort
// depending on any particular logging or manifest implementation.
type Observer interface {
	PassStart(key int)
	PassEnd(key int, resultPath string)
	SplitStart(path string)
	MergeStart(left, right string)
	ScratchCreated(path string)
	ScratchRemoved(path string)
}

type noopObserver struct{}

func (noopObserver) PassStart(int)            {}
func (noopObserver) PassEnd(int, string)      {}
func (noopObserver) SplitStart(string)        {}
func (noopObserver) MergeStart(string, string) {}
func (noopObserver) ScratchCreated(string)    {}
func (noopObserver) ScratchRemoved(string)    {}

// Option configures a Sort call.
type Option func(*config)

type config struct {
	observer Observer
}

func newConfig(opts []Option) *config {
	cfg := &config{observer: noopObserver{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithObserver attaches an Observer that is notified of split/merge/pass
// milestones and scratch file lifecycle events as Sort runs. Passing nil
// is a no-op.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		if o != nil {
			cfg.observer = o
		}
	}
}
