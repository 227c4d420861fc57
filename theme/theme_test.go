package theme

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariables_FixedOrderThenEffects(t *testing.T) {
	vars := TechNoirBrutalism.Variables()
	require.Len(t, vars, 37+3)

	assert.Equal(t, Variable{"--color-background", "#0a0a0a"}, vars[0])
	assert.Equal(t, "--transition", vars[36].Name)

	var tail []string
	for _, v := range vars[37:] {
		tail = append(tail, v.Name)
	}
	assert.Equal(t, []string{"--effect-textShadow", "--effect-glowStrong", "--effect-scanLine"}, tail)
}

func TestVariables_Values(t *testing.T) {
	m := ClassicClean.Variables().Map()
	assert.Equal(t, "#d5cfc0", m["--color-background"])
	assert.Equal(t, "#faf9f5", m["--color-button-primary-text"])
	assert.Equal(t, `"Courier New", monospace`, m["--font-family-code"])
	assert.Equal(t, "1000px", m["--container-max-width"])
	assert.Equal(t, "8px", m["--border-radius"])
	for k := range m {
		assert.False(t, strings.HasPrefix(k, "--effect-"), "default theme has no custom effects: %s", k)
	}
}

func TestVariables_Deterministic(t *testing.T) {
	for _, th := range Builtin().All() {
		a, b := th.Variables(), th.Variables()
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s variables differ between calls (-first +second):\n%s", th.Name, diff)
		}
	}
}

func TestVariables_NoBlankNames(t *testing.T) {
	for _, th := range Builtin().All() {
		for _, v := range th.Variables() {
			assert.NotEmpty(t, v.Value, "%s %s", th.Name, v.Name)
		}
	}
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet(TechNoirBrutalism)
	assert.True(t, strings.HasPrefix(css, ":root {\n  --color-background: #0a0a0a;\n"))
	assert.Contains(t, css, "  --effect-scanLine: repeating-linear-gradient(")
	assert.Contains(t, css, "@keyframes glitch")

	plain := Stylesheet(ClassicClean)
	assert.True(t, strings.HasSuffix(plain, "}\n"))
}

func TestRegistry_GetFallsBackToDefault(t *testing.T) {
	r := Builtin()
	assert.Equal(t, TechNoir, r.Get(TechNoir).Name)
	assert.Equal(t, Default, r.Get("no-such-theme").Name)
	assert.Equal(t, Default, r.Get(Editorial).Name)
	assert.Equal(t, Default, r.Get(Retro).Name)

	_, ok := r.Lookup("no-such-theme")
	assert.False(t, ok)
}

func TestRegistry_AllDeduplicates(t *testing.T) {
	r := Builtin()
	var names []Name
	for _, th := range r.All() {
		names = append(names, th.Name)
	}
	want := []Name{Default, TechNoir, MinitelCyan, NTTOrange, CADAmber, CyanWireframe}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("All() names (-want +got):\n%s", diff)
	}
	assert.Len(t, r.Names(), 9)
}

func TestRegistry_AliasUnknownTarget(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Alias("x", "missing"), ErrUnknownTheme)
	assert.Equal(t, Default, r.Get("x").Name)
}

const sampleYAML = `name: paper
displayName: Paper
colors:
  background: "#fff"
  text:
    primary: "#111"
effects:
  borderRadius: 2px
  customEffects:
    zeta: one
    alpha: two
customCSS: "body { margin: 0; }"
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, Name("paper"), th.Name)
	assert.Equal(t, "#111", th.Colors.Text.Primary)
	assert.Equal(t, Extras{{"zeta", "one"}, {"alpha", "two"}}, th.Effects.Custom)

	vars := th.Variables()
	assert.Equal(t, "--effect-zeta", vars[37].Name)
	assert.Equal(t, "--effect-alpha", vars[38].Name)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("displayName: Nameless\n"))
	assert.ErrorIs(t, err, ErrNoName)

	_, err = Parse([]byte("name: x\neffects:\n  customEffects: [a, b]\n"))
	assert.Error(t, err)
}

func TestRegistry_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"paper.yaml":   {Data: []byte(sampleYAML)},
		"override.yml": {Data: []byte("name: default\ndisplayName: Custom Default\n")},
		"notes.txt":    {Data: []byte("ignored")},
	}
	r := Builtin()
	n, err := r.Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Paper", r.Get("paper").DisplayName)
	assert.Equal(t, "Custom Default", r.Get(Default).DisplayName)
}

type memStore struct {
	name Name
	err  error
}

func (m *memStore) Load() (Name, error) { return m.name, m.err }
func (m *memStore) Save(n Name) error  { m.name = n; return nil }

func TestResolvePreference(t *testing.T) {
	tests := []struct {
		name  string
		store PreferenceStore
		want  Name
	}{
		{"nil store", nil, Default},
		{"empty", &memStore{}, Default},
		{"tech-noir", &memStore{name: TechNoir}, TechNoir},
		{"default", &memStore{name: Default}, Default},
		{"not selectable", &memStore{name: CADAmber}, Default},
		{"garbage", &memStore{name: "<script>"}, Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePreference(tt.store, Default))
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, TechNoir, Toggle(Default))
	assert.Equal(t, Default, Toggle(TechNoir))
	assert.Equal(t, TechNoir, Toggle("unknown"))
}
