package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in shape kinds.
const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// ShapeContext carries everything the factory needs to create a shape:
// which kind to build and where to anchor it.
type ShapeContext struct {
	Kind string
	X    int
	Y    int
}

// ShapeConstructor builds one shape kind from a context.
type ShapeConstructor func(ctx ShapeContext, rng Rand) Shape

// ShapeFactory creates shapes from a ShapeContext by dispatching to a
// registered constructor. It is safe for concurrent use.
type ShapeFactory struct {
	mu           sync.RWMutex
	constructors map[string]ShapeConstructor
	rng          Rand
}

// NewShapeFactory creates a factory with the built-in circle and
// rectangle kinds registered. A nil rng falls back to the process-wide
// random source; a provided rng is serialized behind a mutex, since
// seeded sources like *rand.Rand are not goroutine-safe on their own.
func NewShapeFactory(rng Rand) *ShapeFactory {
	if rng == nil {
		rng = DefaultRand()
	} else {
		rng = &lockedRand{src: rng}
	}

	f := &ShapeFactory{
		constructors: make(map[string]ShapeConstructor),
		rng:          rng,
	}

	// Built-in kinds. Registration cannot fail on a fresh map.
	_ = f.Register(KindCircle, func(ctx ShapeContext, rng Rand) Shape {
		return NewCircle(ctx.X, ctx.Y, rng)
	})
	_ = f.Register(KindRectangle, func(ctx ShapeContext, rng Rand) Shape {
		return NewRectangle(ctx.X, ctx.Y, rng)
	})

	return f
}

// Register adds a constructor for a new shape kind.
// Returns ErrKindExists if the kind is already registered and
// ErrNilConstructor if the constructor is nil.
func (f *ShapeFactory) Register(kind string, constructor ShapeConstructor) error {
	if constructor == nil {
		return fmt.Errorf("%w: kind %q", ErrNilConstructor, kind)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.constructors[kind]; exists {
		return fmt.Errorf("%w: %q", ErrKindExists, kind)
	}

	f.constructors[kind] = constructor
	return nil
}

// Create builds a shape from the given context.
// Returns ErrUnknownKind if no constructor is registered for the
// context's kind.
func (f *ShapeFactory) Create(ctx ShapeContext) (Shape, error) {
	f.mu.RLock()
	constructor, ok := f.constructors[ctx.Kind]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ctx.Kind)
	}

	return constructor(ctx, f.rng), nil
}

// Kinds returns the registered kind names in sorted order.
func (f *ShapeFactory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]string, 0, len(f.constructors))
	for kind := range f.constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
