package resolver

import "testing"

func newFixtureResolver() *Resolver {
	fileIndex := map[string]string{
		"src/utils.py":        "src/utils.py",
		"src/api/client.py":   "src/api/client.py",
		"src/api/__init__.py": "src/api/__init__.py",
		"lib/index.js":        "lib/index.js",
		"components/Button.tsx": "components/Button.tsx",
	}
	extensions := []string{".py", ".js", ".ts", ".tsx"}
	return New(fileIndex, extensions)
}

func TestResolve_ExactMatch(t *testing.T) {
	r := newFixtureResolver()
	got, ok := r.Resolve("src/utils.py")
	if !ok || got != "src/utils.py" {
		t.Errorf("expected (src/utils.py, true), got (%s, %v)", got, ok)
	}
}

func TestResolve_ExtensionProbe(t *testing.T) {
	r := newFixtureResolver()
	got, ok := r.Resolve("src/utils")
	if !ok || got != "src/utils.py" {
		t.Errorf("expected (src/utils.py, true), got (%s, %v)", got, ok)
	}
}

func TestResolve_DirectoryIndexPython(t *testing.T) {
	r := newFixtureResolver()
	got, ok := r.Resolve("src/api")
	if !ok || got != "src/api/__init__.py" {
		t.Errorf("expected (src/api/__init__.py, true), got (%s, %v)", got, ok)
	}
}

func TestResolve_DirectoryIndexJS(t *testing.T) {
	r := newFixtureResolver()
	got, ok := r.Resolve("lib")
	if !ok || got != "lib/index.js" {
		t.Errorf("expected (lib/index.js, true), got (%s, %v)", got, ok)
	}
}

func TestResolve_BasenameMatch(t *testing.T) {
	r := newFixtureResolver()
	got, ok := r.Resolve("utils")
	if !ok || got != "src/utils.py" {
		t.Errorf("expected (src/utils.py, true), got (%s, %v)", got, ok)
	}
}

func TestResolve_Unresolved(t *testing.T) {
	r := newFixtureResolver()
	_, ok := r.Resolve("nonexistent/module")
	if ok {
		t.Errorf("expected unresolved")
	}
}

func TestResolveBatch_PreservesOrderAndCardinality(t *testing.T) {
	r := newFixtureResolver()
	imports := []string{"src/utils", "src/api", "nonexistent"}
	results := r.ResolveBatch(imports)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Input != "src/utils" || !results[0].Found {
		t.Errorf("expected src/utils resolved, got %v", results[0])
	}
	if results[1].Input != "src/api" || !results[1].Found {
		t.Errorf("expected src/api resolved, got %v", results[1])
	}
	if results[2].Input != "nonexistent" || results[2].Found {
		t.Errorf("expected nonexistent unresolved, got %v", results[2])
	}
}

func TestGetResolutionStats(t *testing.T) {
	r := newFixtureResolver()
	imports := []string{"src/utils", "src/api", "nonexistent", "also_missing"}
	stats := r.GetResolutionStats(imports)

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.Resolved != 2 {
		t.Errorf("expected resolved 2, got %d", stats.Resolved)
	}
	if stats.Unresolved != 2 {
		t.Errorf("expected unresolved 2, got %d", stats.Unresolved)
	}
	if diff := stats.ResolutionRate - 0.5; diff < -0.01 || diff > 0.01 {
		t.Errorf("expected resolution rate ~0.5, got %f", stats.ResolutionRate)
	}
}

func TestGetResolutionStats_EmptyBatch(t *testing.T) {
	r := newFixtureResolver()
	stats := r.GetResolutionStats(nil)

	if stats.Total != 0 || stats.Resolved != 0 || stats.ResolutionRate != 0.0 {
		t.Errorf("expected all-zero stats for empty batch, got %+v", stats)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"./utils", "utils"},
		{"../lib/utils", "lib/utils"},
		{`src\api\client`, "src/api/client"},
		{"/absolute/path", "absolute/path"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"./utils", "../lib/utils", `src\api\client`, "/absolute/path", "plain/path.py"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestResolve_IdempotentUnderNormalizeComposition(t *testing.T) {
	r := newFixtureResolver()
	input := "./src/utils"

	direct, directOK := r.Resolve(input)
	viaNormalize, viaOK := r.Resolve(Normalize(input))

	if direct != viaNormalize || directOK != viaOK {
		t.Errorf("Resolve(%q) = (%s, %v), Resolve(Normalize(%q)) = (%s, %v)", input, direct, directOK, input, viaNormalize, viaOK)
	}
}

func TestResolve_NormalizedLookup_PrefersShortestOnMultipleCandidates(t *testing.T) {
	fileIndex := map[string]string{
		"pkg/nested/deep/widget.py": "pkg/nested/deep/widget.py",
		"pkg/widget.py":             "pkg/widget.py",
	}
	r := New(fileIndex, []string{".py"})

	// Neither exact, extension, nor directory-index strategies hit
	// "widget" directly (both entries have "widget" as the basename, so
	// the basename key in the normalized index collects both), forcing
	// strategy 4's shortest-path tie-break.
	got, ok := r.Resolve("widget")
	if !ok {
		t.Fatalf("expected resolution via normalized lookup")
	}
	if got != "pkg/widget.py" {
		t.Errorf("expected shortest candidate pkg/widget.py, got %s", got)
	}
}

func TestResolve_CascadeOrderExactBeatsNormalizedLookup(t *testing.T) {
	// A normalized-lookup/suffix match on a wrong file must never mask an
	// exact hit earlier in the cascade.
	fileIndex := map[string]string{
		"src/utils.py":        "src/utils.py",
		"other/src/utils.py":  "other/src/utils.py",
	}
	r := New(fileIndex, []string{".py"})

	got, ok := r.Resolve("src/utils.py")
	if !ok || got != "src/utils.py" {
		t.Errorf("expected exact match to win, got (%s, %v)", got, ok)
	}
}
