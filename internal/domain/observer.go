package domain

// Observer receives execution events. Implementations must not mutate the tree.
type Observer interface {
	ContextEntered(c *Context)
	ContextFailed(c *Context, err error)
	ExampleStarted(e *Example)
	ExampleFinished(e *Example)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) ContextEntered(*Context) {}
func (NopObserver) ContextFailed(*Context, error) {}
func (NopObserver) ExampleStarted(*Example) {}
func (NopObserver) ExampleFinished(*Example) {}

var (
	_ Scorer   = (*Context)(nil)
	_ Scorer   = (*ContextCollection)(nil)
	_ Observer = NopObserver{}
)
