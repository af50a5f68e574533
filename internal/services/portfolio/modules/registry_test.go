package modules

import "testing"

func TestDefaultModulesHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, m := range DefaultModules() {
		if m == nil {
			t.Fatal("nil module in registry")
		}
		if seen[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = true
	}
	for _, id := range []string{"public", "projects", "feed"} {
		if !seen[id] {
			t.Fatalf("missing module %q", id)
		}
	}
}
