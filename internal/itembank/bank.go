package itembank

import "fmt"

// Bank holds the four fixed MST pools, keyed by module name.
// A Bank is read-only after construction.
type Bank struct {
	pools map[string]Pool
	order []string
}

// Default returns the seeded production bank.
func Default() *Bank {
	b, err := New([]Pool{seedRouting, seedLow, seedMedium, seedHigh})
	if err != nil {
		// Seed data is validated by tests; a bad seed is a programming error.
		panic(err)
	}
	return b
}

// New builds a Bank from the given pools and validates them.
func New(pools []Pool) (*Bank, error) {
	b := &Bank{pools: make(map[string]Pool, len(pools))}
	for _, p := range pools {
		if _, dup := b.pools[p.Name]; dup {
			return nil, fmt.Errorf("duplicate pool %q", p.Name)
		}
		b.pools[p.Name] = p
		b.order = append(b.order, p.Name)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Pool returns the pool for the given module name.
func (b *Bank) Pool(name string) (Pool, bool) {
	p, ok := b.pools[name]
	return p, ok
}

// Routing returns the routing module pool.
func (b *Bank) Routing() Pool {
	return b.pools[ModuleRouting]
}

// Modules returns pool names in insertion order.
func (b *Bank) Modules() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Items returns every item across all pools, in module order.
func (b *Bank) Items() []Item {
	var items []Item
	for _, name := range b.order {
		items = append(items, b.pools[name].Items...)
	}
	return items
}

// Validate checks the structural invariants of the bank:
// every pool has exactly PoolSize items with weights in (0,1), the routing
// pool covers each axis with exactly two items, and the three stage-2 pools
// share one axis distribution.
func (b *Bank) Validate() error {
	var tierDist map[Axis]int
	for _, name := range b.order {
		p := b.pools[name]
		if len(p.Items) != PoolSize {
			return fmt.Errorf("pool %q has %d items, want %d", p.Name, len(p.Items), PoolSize)
		}
		dist := make(map[Axis]int)
		for _, it := range p.Items {
			if it.Weight <= 0 || it.Weight >= 1 {
				return fmt.Errorf("pool %q item %s: weight %.2f outside (0,1)", p.Name, it.Key(), it.Weight)
			}
			dist[it.Axis]++
		}
		for _, axis := range AllAxes() {
			if dist[axis] == 0 {
				return fmt.Errorf("pool %q covers no %s items", p.Name, AxisDisplayName(axis))
			}
		}
		if p.Name == ModuleRouting {
			for _, axis := range AllAxes() {
				if dist[axis] != 2 {
					return fmt.Errorf("routing pool has %d %s items, want 2", dist[axis], AxisDisplayName(axis))
				}
			}
			continue
		}
		if tierDist == nil {
			tierDist = dist
			continue
		}
		for _, axis := range AllAxes() {
			if dist[axis] != tierDist[axis] {
				return fmt.Errorf("pool %q axis distribution differs from other stage-2 pools", p.Name)
			}
		}
	}
	return nil
}
