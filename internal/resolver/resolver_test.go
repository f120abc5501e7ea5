package resolver

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/classreflect/internal/ctxlog"
	"github.com/specialistvlad/classreflect/internal/reflection"
	"github.com/specialistvlad/classreflect/internal/reflection/reflectiontest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestResolver builds a resolver over db with a logger that writes into
// the returned buffer.
func newTestResolver(t *testing.T, db *reflection.Database) (*Resolver, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &logs))
	r, err := New(ctx, db, DefaultConfig())
	require.NoError(t, err)
	return r, &logs
}

func TestNew(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())

	_, err := New(ctx, nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNilDatabase)

	_, err = New(ctx, reflection.NewDatabase(), Config{ServiceTag: "Singleton"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resolver config")

	r, err := New(ctx, reflection.NewDatabase(), Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), r.cfg)
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{RootClass: "Object"})
	require.NoError(t, err)
	assert.Equal(t, "Object", cfg.RootClass)
	assert.Equal(t, reflection.Service, cfg.ServiceTag)

	cfg, err = NewConfig(Config{ServiceTag: reflection.Settings})
	require.NoError(t, err)
	assert.Equal(t, DefaultRootClass, cfg.RootClass)
	assert.Equal(t, reflection.Settings, cfg.ServiceTag)

	_, err = NewConfig(Config{ServiceTag: "service"})
	require.Error(t, err)
}

func TestClassExists(t *testing.T) {
	r, _ := newTestResolver(t, reflectiontest.Standard(t))

	assert.True(t, r.ClassExists("Part"))
	assert.True(t, r.ClassExists("Instance"))
	assert.True(t, r.ClassExists("DanglingPart"))
	assert.False(t, r.ClassExists("part"))
	assert.False(t, r.ClassExists("MissingBase"))
	assert.False(t, r.ClassExists(""))
	assert.False(t, r.ClassExists(" Part"))
}

func TestAncestors(t *testing.T) {
	r, _ := newTestResolver(t, reflectiontest.Standard(t))

	type step struct {
		Name    string
		Missing bool
	}
	collect := func(className string) []step {
		var steps []step
		for name, class := range r.Ancestors(className) {
			steps = append(steps, step{Name: name, Missing: class == nil})
		}
		return steps
	}

	testCases := []struct {
		name      string
		className string
		want      []step
	}{
		{
			name:      "full chain",
			className: "Part",
			want: []step{
				{Name: "Part"},
				{Name: "FormFactorPart"},
				{Name: "BasePart"},
				{Name: "PVInstance"},
				{Name: "Instance"},
			},
		},
		{
			name:      "root class",
			className: "Instance",
			want:      []step{{Name: "Instance"}},
		},
		{
			name:      "dangling superclass",
			className: "DanglingPart",
			want:      []step{{Name: "DanglingPart"}, {Name: "MissingBase", Missing: true}},
		},
		{
			name:      "unknown class",
			className: "No Such Class",
			want:      []step{{Name: "No Such Class", Missing: true}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, collect(tc.className)); diff != "" {
				t.Errorf("Ancestors(%q) mismatch (-want +got):\n%s", tc.className, diff)
			}
		})
	}
}

func TestAncestorsStopsEarly(t *testing.T) {
	r, _ := newTestResolver(t, reflectiontest.Standard(t))

	var visited []string
	for name := range r.Ancestors("Part") {
		visited = append(visited, name)
		if name == "BasePart" {
			break
		}
	}
	assert.Equal(t, []string{"Part", "FormFactorPart", "BasePart"}, visited)
}

func TestAncestorsCycle(t *testing.T) {
	db := reflection.NewDatabase(
		&reflection.ClassDescriptor{Name: "A", Superclass: "B"},
		&reflection.ClassDescriptor{Name: "B", Superclass: "A"},
	)
	r, logs := newTestResolver(t, db)

	var names []string
	var last *reflection.ClassDescriptor
	for name, class := range r.Ancestors("A") {
		names = append(names, name)
		last = class
	}

	assert.Nil(t, last, "a cyclic chain must end unresolved")
	assert.LessOrEqual(t, len(names), db.Len()+2)
	assert.Contains(t, logs.String(), "assuming a cycle")

	isA, known := r.ClassIsA("A", "C")
	assert.False(t, known)
	assert.False(t, isA)

	isService, known := r.ClassIsAService("B")
	assert.False(t, known)
	assert.False(t, isService)

	_, ok := r.FindPropertyInfo("A", "Anything")
	assert.False(t, ok)
}
