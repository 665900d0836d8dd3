package calculator

import (
	"slices"
	"sync"
)

// registry maps operation names to operations. Names are case-sensitive;
// writing an existing name replaces its operation.
type registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

func newRegistry() *registry {
	return &registry{ops: make(map[string]Operation)}
}

// merge writes every non-nil operation in ops and returns the written names,
// sorted.
func (r *registry) merge(ops Operations) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(ops))
	for name, op := range ops {
		if op == nil {
			continue
		}
		r.ops[name] = op
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry) get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// remove deletes the given names and returns the ones that were present,
// sorted.
func (r *registry) remove(names ...string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := r.ops[name]; ok {
			delete(r.ops, name)
			removed = append(removed, name)
		}
	}
	slices.Sort(removed)
	return removed
}

// names returns the registered names in lexical order.
func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}
