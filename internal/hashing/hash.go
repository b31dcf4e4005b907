package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/mmrzaf/mockdata/internal/domain"
)

func HashPlan(plan *domain.Plan) (string, error) {
	canonical := canonicalizePlan(plan)
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// BuildInputs are the build settings, besides the plan, that output depends on.
type BuildInputs struct {
	Count      int
	Seed       int64
	Now        time.Time
	Country    string
	MaxRetries int
	// Names identifies the name provider, e.g. its type name.
	Names string
}

type buildHashPayload struct {
	PlanHash   string `json:"plan_hash"`
	Count      int    `json:"count"`
	Seed       int64  `json:"seed"`
	Date       string `json:"date"`
	Clock      string `json:"clock,omitempty"`
	Country    string `json:"country"`
	MaxRetries int    `json:"max_retries"`
	Names      string `json:"names"`
}

// HashBuild fingerprints a plan together with the inputs a build actually
// used, so equal fingerprints mean equal output. The date of in.Now always
// counts; its clock time counts only when a time column ends at the current
// clock.
func HashBuild(plan *domain.Plan, in BuildInputs) (string, error) {
	ph, err := HashPlan(plan)
	if err != nil {
		return "", err
	}

	payload := buildHashPayload{
		PlanHash:   ph,
		Count:      in.Count,
		Seed:       in.Seed,
		Date:       in.Now.Format("2006-01-02"),
		Country:    in.Country,
		MaxRetries: in.MaxRetries,
		Names:      in.Names,
	}
	if usesCurrentClock(plan) {
		payload.Clock = in.Now.Format("15:04:05")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func usesCurrentClock(plan *domain.Plan) bool {
	for _, col := range plan.Columns {
		if col.Kind != domain.KindTime {
			continue
		}
		if end, ok := col.Params["end"]; !ok || end == nil || end == "" {
			return true
		}
	}
	return false
}

func canonicalizePlan(plan *domain.Plan) map[string]interface{} {
	columns := make([]map[string]interface{}, len(plan.Columns))
	for i, col := range plan.Columns {
		colMap := map[string]interface{}{
			"name": col.Name,
			"kind": col.Kind,
		}
		if len(col.Params) > 0 {
			colMap["params"] = canonicalizeParams(col.Params)
		}
		columns[i] = colMap
	}

	result := map[string]interface{}{
		"name":    plan.Name,
		"columns": columns,
	}
	if plan.ID != "" {
		result["id"] = plan.ID
	}
	if plan.Description != "" {
		result["description"] = plan.Description
	}

	return result
}

func canonicalizeParams(params map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch val := params[k].(type) {
		case map[string]interface{}:
			result[k] = canonicalizeParams(val)
		default:
			result[k] = val
		}
	}
	return result
}
