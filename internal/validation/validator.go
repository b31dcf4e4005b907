package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mmrzaf/mockdata/internal/columns"
	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/mmrzaf/mockdata/internal/registry"
	"github.com/spf13/cast"
)

type Validator struct {
	genRegistry *registry.GeneratorRegistry
}

func NewValidator(genRegistry *registry.GeneratorRegistry) *Validator {
	return &Validator{genRegistry: genRegistry}
}

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

// ValidatePlan checks plan against ctx, the context the build will generate
// with, so relative dates and default time windows resolve the same way.
func (v *Validator) ValidatePlan(plan *domain.Plan, ctx columns.GeneratorContext) error {
	if plan == nil {
		return errors.New("plan is required")
	}
	if plan.Name == "" {
		return errors.New("plan name is required")
	}
	if plan.Count != nil && *plan.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", *plan.Count)
	}
	if len(plan.Columns) == 0 {
		return errors.New("plan must have at least one column")
	}

	columnNames := make(map[string]bool)
	for _, col := range plan.Columns {
		if err := v.validateColumn(col, columnNames, ctx); err != nil {
			return fmt.Errorf("column '%s': %w", col.Name, err)
		}
	}

	if err := validateDependencies(plan); err != nil {
		return fmt.Errorf("dependency validation failed: %w", err)
	}

	return nil
}

func (v *Validator) validateColumn(col domain.ColumnSpec, columnNames map[string]bool, ctx columns.GeneratorContext) error {
	if col.Name == "" {
		return errors.New("column name is required")
	}
	if !IsValidIdentifier(col.Name) {
		return fmt.Errorf("invalid column identifier: %s", col.Name)
	}

	if columnNames[col.Name] {
		return fmt.Errorf("duplicate column name: %s", col.Name)
	}
	columnNames[col.Name] = true

	if col.Kind == "" {
		return errors.New("column kind is required")
	}

	gen, err := v.genRegistry.Get(col.Kind)
	if err != nil {
		return err
	}

	if raw, ok := col.Param("count"); ok {
		n, err := cast.ToIntE(raw)
		if err != nil {
			return fmt.Errorf("'count' must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("count must be >= 0, got %d", n)
		}
	}

	if err := gen.Validate(col, ctx); err != nil {
		return fmt.Errorf("generator validation failed: %w", err)
	}

	return nil
}

func validateDependencies(plan *domain.Plan) error {
	known := make(map[string]bool, len(plan.Columns))
	for _, col := range plan.Columns {
		known[col.Name] = true
	}

	graph := make(map[string][]string)
	for _, col := range plan.Columns {
		deps := make([]string, 0)
		if from, ok := columns.DependsOn(col); ok {
			if !known[from] {
				return fmt.Errorf("column '%s': referenced column '%s' not found", col.Name, from)
			}
			deps = append(deps, from)
		}
		graph[col.Name] = deps
	}

	if hasCycle(graph) {
		return errors.New("cyclic dependencies detected")
	}

	return nil
}

func hasCycle(graph map[string][]string) bool {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for node := range graph {
		if !visited[node] {
			if hasCycleDFS(node, graph, visited, recStack) {
				return true
			}
		}
	}
	return false
}

func hasCycleDFS(node string, graph map[string][]string, visited, recStack map[string]bool) bool {
	visited[node] = true
	recStack[node] = true

	for _, neighbor := range graph[node] {
		if !visited[neighbor] {
			if hasCycleDFS(neighbor, graph, visited, recStack) {
				return true
			}
		} else if recStack[neighbor] {
			return true
		}
	}

	recStack[node] = false
	return false
}

// TopologicalSort orders columns so every source column precedes the columns
// reading from it. Independent columns keep their plan order.
func TopologicalSort(plan *domain.Plan) ([]string, error) {
	graph := make(map[string][]string) // dependency -> dependents
	inDegree := make(map[string]int)
	position := make(map[string]int)

	for i, col := range plan.Columns {
		position[col.Name] = i
		if _, ok := inDegree[col.Name]; !ok {
			inDegree[col.Name] = 0
		}
		if from, ok := columns.DependsOn(col); ok {
			graph[from] = append(graph[from], col.Name)
			inDegree[col.Name]++
		}
	}

	byPosition := func(names []string) {
		sort.Slice(names, func(i, j int) bool { return position[names[i]] < position[names[j]] })
	}

	queue := make([]string, 0)
	for _, col := range plan.Columns {
		if inDegree[col.Name] == 0 {
			queue = append(queue, col.Name)
		}
	}

	result := make([]string, 0, len(plan.Columns))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, dependent := range graph[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
		byPosition(queue)
	}

	if len(result) != len(plan.Columns) {
		return nil, errors.New("cycle detected in column dependencies")
	}

	return result, nil
}
