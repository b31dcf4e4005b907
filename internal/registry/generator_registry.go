package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mmrzaf/mockdata/internal/columns"
	"github.com/mmrzaf/mockdata/internal/domain"
)

// GeneratorRegistry maps a column kind to the generator that builds it.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[string]columns.Generator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[string]columns.Generator),
	}
}

func (r *GeneratorRegistry) Register(kind string, gen columns.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[kind] = gen
}

func (r *GeneratorRegistry) Get(kind string) (columns.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown column kind: %s", kind)
	}
	return gen, nil
}

// List returns the registered kinds in sorted order.
func (r *GeneratorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.generators))
	for kind := range r.generators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register(domain.KindDate, &columns.DateGenerator{})
	r.Register(domain.KindTime, &columns.TimeGenerator{})
	r.Register(domain.KindNumber, &columns.NumberGenerator{})
	r.Register(domain.KindName, &columns.NameGenerator{})
	r.Register(domain.KindEmail, &columns.EmailGenerator{})
	r.Register(domain.KindShuffle, &columns.ShuffleGenerator{})
	r.Register(domain.KindString, &columns.StringGenerator{})
	r.Register(domain.KindImage, &columns.ImageGenerator{})
	r.Register(domain.KindDistribution, &columns.DistributionGenerator{})
	r.Register(domain.KindUUID, &columns.UUIDGenerator{})
	return r
}
