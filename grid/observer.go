package grid

// Observer provides hooks around each experiment's execution so an external
// reporting layer can watch a run (record timings, stream progress to a
// notebook, accumulate comparison tables) without the grid knowing anything
// about rendering. Hooks are invoked synchronously on the Train goroutine, in
// registration order.
type Observer interface {
	// BeforeExperiment fires after configuration merging, before preprocessing.
	BeforeExperiment(name string, effective Settings)

	// AfterExperiment fires once the experiment has either produced an
	// artifact or failed.
	AfterExperiment(o Outcome)
}

// NopObserver ignores all hooks. It is the default observer of a grid
// constructed without WithObserver.
type NopObserver struct{}

// BeforeExperiment implements Observer.
func (NopObserver) BeforeExperiment(string, Settings) {}

// AfterExperiment implements Observer.
func (NopObserver) AfterExperiment(Outcome) {}
