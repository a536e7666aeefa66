// Package catalog holds the fixed set of selectable chat models: a short
// human-readable label mapped to the OpenRouter model identifier it routes to.
package catalog

import "sort"

// DefaultModel is used when a user has never picked a model explicitly.
const DefaultModel = "tngtech/deepseek-r1t2-chimera:free"

var defaultModels = map[string]string{
	"DeepSeek":     "tngtech/deepseek-r1t2-chimera:free",
	"Moonshot":     "moonshotai/kimi-k2:free",
	"Qwen":         "qwen/qwen3-235b-a22b-07-25:free",
	"Meta Llama":   "meta-llama/llama-3-70b-instruct",
	"Google Gemma": "google/gemma-3n-e2b-it:free",
	"Tencent":      "tencent/hunyuan-a13b-instruct:free",
	"Mistralai":    "mistralai/mistral-small-3.2-24b-instruct:free",
	"Microsoft":    "microsoft/phi-3-medium-4k-instruct",
}

// Catalog is read-only after construction.
type Catalog struct {
	models map[string]string
	labels []string
}

func New(models map[string]string) *Catalog {
	c := &Catalog{
		models: make(map[string]string, len(models)),
		labels: make([]string, 0, len(models)),
	}
	for label, id := range models {
		c.models[label] = id
		c.labels = append(c.labels, label)
	}
	// Stable order so the selection keyboard is deterministic.
	sort.Strings(c.labels)
	return c
}

func Default() *Catalog {
	return New(defaultModels)
}

// Labels returns the labels in sorted order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Labels() []string {
	return c.labels
}

// Resolve maps a label to its model identifier.
func (c *Catalog) Resolve(label string) (string, bool) {
	id, ok := c.models[label]
	return id, ok
}

func (c *Catalog) Has(label string) bool {
	_, ok := c.models[label]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.models)
}
