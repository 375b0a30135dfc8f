package course

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	want := []string{
		"hydrostatics", "gradients",
		"hole_cleaning", "boycott", "hydraulics",
		"gas_migration", "kick_response", "directional",
	}
	if diff := cmp.Diff(want, c.AllLessonIDs()); diff != "" {
		t.Errorf("lesson ids mismatch (-want +got):\n%s", diff)
	}

	for _, id := range want {
		l, ok := c.Lesson(id)
		if !ok {
			t.Fatalf("lesson %q missing", id)
		}
		if strings.TrimSpace(l.Content) == "" {
			t.Errorf("lesson %q has no content", id)
		}
	}

	labs := map[string]bool{"hydrostatic": true, "holeclean": true, "gas": true, "directional": true}
	for _, id := range want {
		l, _ := c.Lesson(id)
		if l.Lab != "" && !labs[l.Lab] {
			t.Errorf("lesson %q references unknown lab %q", id, l.Lab)
		}
	}
}

func TestModuleLookup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	m, ok := c.Module("circulation")
	if !ok {
		t.Fatal("module circulation missing")
	}
	if diff := cmp.Diff([]string{"hole_cleaning", "boycott", "hydraulics"}, c.LessonIDs(m.ID)); diff != "" {
		t.Errorf("module lessons (-want +got):\n%s", diff)
	}

	owner, ok := c.ModuleOf("gas_migration")
	if !ok || owner != "well_control" {
		t.Errorf("ModuleOf(gas_migration) = %q, %v", owner, ok)
	}

	if c.LessonIDs("nope") != nil {
		t.Error("unknown module should have no lessons")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "",
			wantErr: "empty",
		},
		{
			name:    "no modules",
			yaml:    "modules: []\n",
			wantErr: "no modules",
		},
		{
			name: "module without lessons",
			yaml: `
modules:
  - id: m1
    title: One
`,
			wantErr: "no lessons",
		},
		{
			name: "duplicate lesson",
			yaml: `
modules:
  - id: m1
    title: One
    lessons:
      - {id: a, title: A}
  - id: m2
    title: Two
    lessons:
      - {id: a, title: Again}
`,
			wantErr: "duplicate lesson id",
		},
		{
			name: "duplicate module",
			yaml: `
modules:
  - id: m1
    title: One
    lessons: [{id: a, title: A}]
  - id: m1
    title: Two
    lessons: [{id: b, title: B}]
`,
			wantErr: "duplicate module id",
		},
		{
			name: "unknown field",
			yaml: `
modules:
  - id: m1
    title: One
    color: red
    lessons: [{id: a, title: A}]
`,
			wantErr: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Minimal(t *testing.T) {
	c, err := Load(strings.NewReader(`
modules:
  - id: m1
    title: One
    objective: Learn one thing
    lessons:
      - id: a
        title: A
        duration: 5 min
        content: hello
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []Module{{
		ID:        "m1",
		Title:     "One",
		Objective: "Learn one thing",
		Lessons:   []Lesson{{ID: "a", Title: "A", Duration: "5 min", Content: "hello"}},
	}}
	if diff := cmp.Diff(want, c.Modules()); diff != "" {
		t.Errorf("modules (-want +got):\n%s", diff)
	}
}
