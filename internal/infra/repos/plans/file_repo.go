package plans

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmrzaf/mockdata/internal/domain"
	"gopkg.in/yaml.v3"
)

type Repository interface {
	List() ([]*domain.Plan, error)
	Get(id string) (*domain.Plan, error)
	GetByPath(path string) (*domain.Plan, error)
}

// FileRepository reads plan files (.yaml, .yml, .json) from one directory.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

// List loads every plan in the directory, sorted by file name. Files that fail
// to parse are reported rather than skipped.
func (r *FileRepository) List() ([]*domain.Plan, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Plan{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	plans := make([]*domain.Plan, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isPlanFile(entry.Name()) {
			continue
		}

		plan, err := loadPlan(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("plan file %s: %w", entry.Name(), err)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (r *FileRepository) Get(id string) (*domain.Plan, error) {
	plans, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, p := range plans {
		if p.ID == id || p.Name == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("plan not found: %s", id)
}

// GetByPath loads one plan; the path must stay inside the repository directory.
func (r *FileRepository) GetByPath(path string) (*domain.Plan, error) {
	resolved, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return loadPlan(resolved)
}

func (r *FileRepository) resolve(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(base, path)
	}
	full = filepath.Clean(full)

	rel, err := filepath.Rel(base, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("plan path escapes %s: %s", r.baseDir, path)
	}
	return full, nil
}

func isPlanFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func loadPlan(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format := FormatYAML
	if filepath.Ext(path) == ".json" {
		format = FormatJSON
	}
	plan, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	if plan.ID == "" {
		plan.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return plan, nil
}

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Decode parses a plan document. An empty format means YAML.
func Decode(data []byte, format string) (*domain.Plan, error) {
	var plan domain.Plan
	var err error

	switch strings.ToLower(format) {
	case FormatJSON:
		err = json.Unmarshal(data, &plan)
	case FormatYAML, "yml", "":
		err = yaml.Unmarshal(data, &plan)
	default:
		return nil, fmt.Errorf("unsupported plan format: %s", format)
	}

	if err != nil {
		return nil, err
	}
	return &plan, nil
}
