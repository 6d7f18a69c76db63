package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in bullet kinds.
const (
	KindFastBullet   = "fast"
	KindSlowBullet   = "slow"
	KindSplashBullet = "splash"
)

// Bullet is the product type of the bullet factory.
type Bullet interface {
	// Kind returns the bullet's registered kind name.
	Kind() string

	// Speed returns the bullet's travel speed in pixels per tick.
	Speed() float64

	// Damage returns the damage dealt on a direct hit.
	Damage() int
}

// FastBullet travels quickly and deals moderate damage.
type FastBullet struct{}

// Kind implements Bullet.
func (FastBullet) Kind() string { return KindFastBullet }

// Speed implements Bullet.
func (FastBullet) Speed() float64 { return 12.0 }

// Damage implements Bullet.
func (FastBullet) Damage() int { return 10 }

// SlowBullet travels slowly but hits hard.
type SlowBullet struct{}

// Kind implements Bullet.
func (SlowBullet) Kind() string { return KindSlowBullet }

// Speed implements Bullet.
func (SlowBullet) Speed() float64 { return 4.0 }

// Damage implements Bullet.
func (SlowBullet) Damage() int { return 25 }

// SplashBullet deals area damage around the impact point.
type SplashBullet struct{}

// Kind implements Bullet.
func (SplashBullet) Kind() string { return KindSplashBullet }

// Speed implements Bullet.
func (SplashBullet) Speed() float64 { return 7.0 }

// Damage implements Bullet.
func (SplashBullet) Damage() int { return 15 }

// BlastRadius is the radius of the splash damage area.
func (SplashBullet) BlastRadius() int { return 30 }

// BulletConstructor builds one bullet kind.
type BulletConstructor func() Bullet

// BulletFactory creates bullets by kind name, dispatching to a
// registered constructor. It is safe for concurrent use.
type BulletFactory struct {
	mu           sync.RWMutex
	constructors map[string]BulletConstructor
}

// NewBulletFactory creates a factory with the built-in fast, slow, and
// splash kinds registered.
func NewBulletFactory() *BulletFactory {
	f := &BulletFactory{
		constructors: make(map[string]BulletConstructor),
	}

	_ = f.Register(KindFastBullet, func() Bullet { return FastBullet{} })
	_ = f.Register(KindSlowBullet, func() Bullet { return SlowBullet{} })
	_ = f.Register(KindSplashBullet, func() Bullet { return SplashBullet{} })

	return f
}

// Register adds a constructor for a new bullet kind.
// Returns ErrKindExists if the kind is already registered and
// ErrNilConstructor if the constructor is nil.
func (f *BulletFactory) Register(kind string, constructor BulletConstructor) error {
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

// Create builds a bullet of the given kind.
// Returns ErrUnknownKind if no constructor is registered for it.
func (f *BulletFactory) Create(kind string) (Bullet, error) {
	f.mu.RLock()
	constructor, ok := f.constructors[kind]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return constructor(), nil
}

// Kinds returns the registered kind names in sorted order.
func (f *BulletFactory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]string, 0, len(f.constructors))
	for kind := range f.constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
