// Package dataset builds named mock-data columns from a declarative plan and
// optionally writes them into a SQL table.
package dataset

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/columns"
	"github.com/mmrzaf/mockdata/internal/config"
	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/mmrzaf/mockdata/internal/hashing"
	"github.com/mmrzaf/mockdata/internal/logging"
	"github.com/mmrzaf/mockdata/internal/registry"
	"github.com/mmrzaf/mockdata/internal/validation"
)

type Builder struct {
	cfg         *config.Config
	logger      *logging.Logger
	genRegistry *registry.GeneratorRegistry
	validator   *validation.Validator
	names       generators.NameProvider
	now         func() time.Time
}

// NewBuilder starts from the MOCKDATA_* environment (see config.Load) and
// applies opts on top.
func NewBuilder(opts ...Option) *Builder {
	cfg := config.Load()
	genRegistry := registry.DefaultGeneratorRegistry()
	b := &Builder{
		cfg:         cfg,
		logger:      logging.NewLogger(cfg.LogLevel).WithComponent("dataset"),
		genRegistry: genRegistry,
		validator:   validation.NewValidator(genRegistry),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Kinds lists the column kinds a plan may use.
func (b *Builder) Kinds() []string {
	return b.genRegistry.List()
}

// Validate checks a plan without generating anything.
func (b *Builder) Validate(plan *Plan) error {
	return b.validate(plan, b.newContext(plan, b.now()))
}

func (b *Builder) validate(plan *Plan, ctx columns.GeneratorContext) error {
	if err := b.validator.ValidatePlan(plan, ctx); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	return nil
}

// newContext resolves the build count and reads the clock once, so plan
// validation and generation see the same now.
func (b *Builder) newContext(plan *Plan, now time.Time) columns.GeneratorContext {
	ctx := columns.GeneratorContext{
		Count:      b.cfg.Count,
		Now:        now,
		MaxRetries: b.cfg.MaxRetries,
		Country:    b.cfg.Country,
		Names:      b.names,
	}
	if plan != nil {
		if plan.Count != nil {
			ctx.Count = *plan.Count
		}
		ctx.ColumnValues = make(map[string][]any, len(plan.Columns))
	}
	return ctx
}

// Build generates every column of plan. Source columns are generated before
// the columns that read from them; each column draws from its own source
// derived from the build seed and the column name.
func (b *Builder) Build(plan *Plan) (*Dataset, error) {
	ctx := b.newContext(plan, b.now())
	if err := b.validate(plan, ctx); err != nil {
		return nil, err
	}

	order, err := validation.TopologicalSort(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to sort columns: %w", err)
	}

	seed := b.resolveSeed(plan)
	count := ctx.Count

	if ctx.Names == nil {
		generators.SeedFakerNames(seed)
		ctx.Names = generators.FakerNames{}
	}

	specs := make(map[string]domain.ColumnSpec, len(plan.Columns))
	for _, col := range plan.Columns {
		specs[col.Name] = col
	}

	b.logger.Infow("build.start", map[string]any{"plan": plan.Name, "seed": seed, "count": count, "columns": len(order)})
	start := time.Now()

	types := make(map[string]domain.ColumnType, len(order))
	for _, name := range order {
		spec := specs[name]
		gen, err := b.genRegistry.Get(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", name, err)
		}

		rng := mrand.New(mrand.NewSource(columnSeed(seed, name)))
		values, err := gen.Generate(rng, spec, ctx)
		if err != nil {
			b.logger.Errorw("column.failed", map[string]any{"column": name, "kind": spec.Kind, "error": err.Error()})
			return nil, fmt.Errorf("column '%s': %w", name, err)
		}
		ctx.ColumnValues[name] = values
		types[name] = gen.ColumnType(spec)

		if b.logger.Enabled(logging.LevelDebug) {
			b.logger.Debugw("column.generated", map[string]any{"column": name, "kind": spec.Kind, "values": len(values)})
		}
	}

	fingerprint, err := hashing.HashBuild(plan, hashing.BuildInputs{
		Count:      count,
		Seed:       seed,
		Now:        ctx.Now,
		Country:    ctx.Country,
		MaxRetries: ctx.MaxRetries,
		Names:      fmt.Sprintf("%T", ctx.Names),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint plan: %w", err)
	}

	columnNames := make([]string, len(plan.Columns))
	for i, col := range plan.Columns {
		columnNames[i] = col.Name
	}

	ds := &Dataset{
		ID:          uuid.NewString(),
		Name:        plan.Name,
		Seed:        seed,
		Count:       count,
		Fingerprint: fingerprint,
		columns:     columnNames,
		types:       types,
		values:      ctx.ColumnValues,
	}

	b.logger.Infow("build.done", map[string]any{
		"plan":        plan.Name,
		"dataset":     ds.ID,
		"fingerprint": fingerprint,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return ds, nil
}

func (b *Builder) resolveSeed(plan *Plan) int64 {
	if plan.Seed != nil {
		return *plan.Seed
	}
	if b.cfg.Seed != nil {
		return *b.cfg.Seed
	}
	seed := generateSeed()
	b.logger.Warn("plan %s has no seed, using random seed %d", plan.Name, seed)
	return seed
}

func columnSeed(seed int64, column string) int64 {
	h := fnv.New64a()
	h.Write([]byte(column))
	return seed ^ int64(h.Sum64())
}

func generateSeed() int64 {
	var b [8]byte
	rand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}
