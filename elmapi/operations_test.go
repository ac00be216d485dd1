package elmapi

import (
	"testing"
)

func TestOperations(t *testing.T) {
	if len(Operations) != 9 {
		t.Fatalf("expected 9 operations, got %d", len(Operations))
	}
	seen := map[string]bool{}
	lists, params := 0, 0
	for _, op := range Operations {
		if seen[op.Method] {
			t.Errorf("duplicate operation %s", op)
		}
		seen[op.Method] = true
		if op.List {
			lists++
		}
		if op.TakesParam() {
			params++
		}
	}
	if lists != 5 || params != 6 {
		t.Errorf("expected 5 list and 6 parameterized operations, got %d and %d", lists, params)
	}
	if GetELMsByTextSearch.Param != QueryTextParam || GetFunctionalSitesByTextSearch.Param != QueryTextParam {
		t.Error("text searches take QueryText")
	}
	if GetAllELMInstances.Kind.String() != "ELM instance" {
		t.Errorf("unexpected kind %s", GetAllELMInstances.Kind)
	}
}

func TestFaultMessages(t *testing.T) {
	expected := []string{
		"No such ELM accession",
		"No such ELM identifier",
		"No such ELM instance accession",
		"No such functional site accession",
	}
	for i, m := range FaultMarkers {
		if m.Message() != expected[i] {
			t.Errorf("%s: expected %q, got %q", m, expected[i], m.Message())
		}
	}
	if FaultMarker("Other").Message() != "Unknown fault Other" {
		t.Error("unexpected message for an unknown marker")
	}
}
