package route

import (
	"errors"
	"testing"
)

func TestAdd_RejectsMalformedPaths(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
	}{
		{"empty path", Entry{Path: "", View: "home"}},
		{"no leading slash", Entry{Path: "login", View: "login"}},
		{"whitespace path", Entry{Path: "   ", View: "home"}},
		{"missing view", Entry{Path: "/login", View: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New()
			err := tbl.Add(tc.entry)
			if !errors.Is(err, ErrBadPath) {
				t.Fatalf("Add(%+v) error = %v, want ErrBadPath", tc.entry, err)
			}
		})
	}
}

func TestAdd_RejectsDuplicatePath(t *testing.T) {
	tbl := New()
	if err := tbl.Add(Entry{Path: "/login", View: "login"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	err := tbl.Add(Entry{Path: "/login", View: "other"})
	if !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("Add duplicate error = %v, want ErrDuplicatePath", err)
	}
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	tbl := New()
	if err := tbl.Add(Entry{Path: "/login", View: "login", Title: "Login"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := tbl.Add(Entry{Path: "/dashboard", View: "dashboard", Title: "Dashboard"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	e, ok := tbl.Resolve("/dashboard")
	if !ok {
		t.Fatalf("Resolve(/dashboard) reported no match")
	}
	if e.View != "dashboard" || e.Title != "Dashboard" {
		t.Fatalf("Resolve(/dashboard) = %+v, want view dashboard", e)
	}

	// Near misses must not match: no prefixes, no trailing slashes.
	for _, path := range []string{"/dashboard/", "/dash", "/login/extra", "/LOGIN", ""} {
		if _, ok := tbl.Resolve(path); ok {
			t.Fatalf("Resolve(%q) matched, want miss", path)
		}
	}
}

func TestAdd_TrimsFields(t *testing.T) {
	tbl := New()
	if err := tbl.Add(Entry{Path: "  /login  ", View: " login ", Title: " Login "}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	e, ok := tbl.Resolve("/login")
	if !ok {
		t.Fatalf("Resolve(/login) reported no match after trimmed Add")
	}
	if e.View != "login" || e.Title != "Login" {
		t.Fatalf("entry = %+v, want trimmed fields", e)
	}
}

func TestNearest_SuggestsCloseMatch(t *testing.T) {
	tbl := New()
	for _, e := range []Entry{
		{Path: "/login", View: "login"},
		{Path: "/dashboard", View: "dashboard"},
		{Path: "/settings", View: "settings"},
	} {
		if err := tbl.Add(e); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	e, ok := tbl.Nearest("/dashbord")
	if !ok {
		t.Fatalf("Nearest(/dashbord) reported no suggestion")
	}
	if e.Path != "/dashboard" {
		t.Fatalf("Nearest(/dashbord) = %q, want /dashboard", e.Path)
	}
}

func TestNearest_RejectsDistantPaths(t *testing.T) {
	tbl := New()
	if err := tbl.Add(Entry{Path: "/login", View: "login"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if e, ok := tbl.Nearest("/completely-unrelated-path"); ok {
		t.Fatalf("Nearest suggested %q, want no suggestion", e.Path)
	}
}

func TestNearest_EmptyTable(t *testing.T) {
	if _, ok := New().Nearest("/anything"); ok {
		t.Fatalf("Nearest on empty table reported a suggestion")
	}
}

func TestPaths_PreservesInsertionOrder(t *testing.T) {
	tbl := New()
	want := []string{"/login", "/dashboard", "/settings"}
	for _, p := range want {
		if err := tbl.Add(Entry{Path: p, View: "v"}); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	got := tbl.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Paths[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tbl.Len())
	}
}
