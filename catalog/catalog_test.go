package catalog

import "testing"

func TestDefaultCatalogResolve(t *testing.T) {
	c := Default()
	id, ok := c.Resolve("DeepSeek")
	if !ok {
		t.Fatalf("expected DeepSeek to resolve")
	}
	if id != "tngtech/deepseek-r1t2-chimera:free" {
		t.Errorf("unexpected model id: %s", id)
	}
	if !c.Has("Moonshot") {
		t.Errorf("expected Moonshot in catalog")
	}
	if c.Has("NotAModel") {
		t.Errorf("did not expect NotAModel in catalog")
	}
}

func TestLabelsSortedAndStable(t *testing.T) {
	c := New(map[string]string{"b": "2", "a": "1", "c": "3"})
	labels := c.Labels()
	want := []string{"a", "b", "c"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %s, want %s", i, labels[i], want[i])
		}
	}
	again := c.Labels()
	for i := range labels {
		if labels[i] != again[i] {
			t.Fatalf("labels changed between calls")
		}
	}
}

func TestResolveUnknownLabel(t *testing.T) {
	c := Default()
	if _, ok := c.Resolve("tampered"); ok {
		t.Errorf("unknown label must not resolve")
	}
}
