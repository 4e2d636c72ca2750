package builder

import (
	"go.uber.org/zap"

	"github.com/roach88/specrun/internal/domain"
)

// Builder turns definition forests into context collections.
type Builder struct {
	logger *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates defs and wires them into a collection of root contexts.
// Nothing is returned on error, so a partial tree never reaches the runner.
func Build(defs ...*Definition) (*domain.ContextCollection, error) {
	return New().Build(defs...)
}

// Build validates defs and wires them into a collection of root contexts.
func (b *Builder) Build(defs ...*Definition) (*domain.ContextCollection, error) {
	// Validate the whole forest first
	for i, def := range defs {
		if def == nil {
			return nil, &DefinitionError{
				Code:    ErrCodeNilDefinition,
				Message: "root definition is nil",
				Path:    []string{rootLabel(i)},
			}
		}
		if err := validate(def, nil, make(map[*Definition]bool)); err != nil {
			return nil, err
		}
	}

	cc := &domain.ContextCollection{}
	for _, def := range defs {
		root, err := b.buildContext(def)
		if err != nil {
			return nil, err
		}
		if err := cc.Add(root); err != nil {
			return nil, &DefinitionError{
				Code:    ErrCodeWiring,
				Message: "cannot add root context",
				Path:    []string{def.Name},
				Err:     err,
			}
		}
	}

	b.logger.Debug("contexts built",
		zap.Int("roots", cc.Len()),
		zap.Int("examples", domain.Count(cc.AllExamples())),
	)
	return cc, nil
}

// buildContext creates the context for def and recursively its subtree.
func (b *Builder) buildContext(def *Definition) (*domain.Context, error) {
	c := domain.NewContext(def.Name)
	c.Before = def.Before
	c.Act = def.Act
	c.After = def.After
	c.BeforeAll = def.BeforeAll

	if def.Pending {
		if err := c.MarkPending(); err != nil {
			return nil, wiringError(def, err)
		}
	}
	if def.Failure != nil {
		b.logger.Warn("context declaration failed",
			zap.String("context", def.Name),
			zap.Error(def.Failure),
		)
		c.SetBuildFailure(def.Failure)
	}

	for _, childDef := range def.Contexts {
		child, err := b.buildContext(childDef)
		if err != nil {
			return nil, err
		}
		if err := c.AddContext(child); err != nil {
			return nil, wiringError(def, err)
		}
	}

	for _, exDef := range def.Examples {
		var example *domain.Example
		if exDef.Pending {
			example = domain.NewPendingExample(exDef.Description, exDef.Action)
		} else {
			example = domain.NewExample(exDef.Description, exDef.Action)
		}
		if err := c.AddExample(example); err != nil {
			return nil, wiringError(def, err)
		}
	}

	b.logger.Debug("context built",
		zap.String("context", c.FullContext()),
		zap.Int("contexts", len(def.Contexts)),
		zap.Int("examples", len(def.Examples)),
		zap.Bool("pending", c.IsPending()),
	)
	return c, nil
}

func wiringError(def *Definition, err error) *DefinitionError {
	return &DefinitionError{
		Code:    ErrCodeWiring,
		Message: "cannot wire context",
		Path:    []string{def.Name},
		Err:     err,
	}
}
