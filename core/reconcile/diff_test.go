package reconcile

import (
	"testing"

	"facet-reconciler/core/args"
	"facet-reconciler/core/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jvmTargetAdditional is the default table with jvmTarget moved out of the
// JVM exposed fields.
func jvmTargetAdditional(t *testing.T) *classify.Registry {
	t.Helper()
	tables := classify.DefaultTables()
	jvm := tables[args.PlatformJVM]
	exposed := make([]args.FieldID, 0, len(jvm.Exposed))
	for _, id := range jvm.Exposed {
		if id != args.JvmTarget {
			exposed = append(exposed, id)
		}
	}
	jvm.Exposed = exposed
	tables[args.PlatformJVM] = jvm

	r, err := classify.NewRegistry(tables)
	require.NoError(t, err)
	return r
}

func TestAdditionalArguments_JvmTargetScenario(t *testing.T) {
	registry := jvmTargetAdditional(t)

	current := args.NewBucket().
		MustSet(args.LanguageVersion, args.Single("1.9")).
		MustSet(args.JvmTarget, args.Single("17"))
	defaults := args.NewBucket().
		MustSet(args.LanguageVersion, args.Single("1.9")).
		MustSet(args.JvmTarget, args.Single("1.8"))

	got, err := AdditionalArguments(registry, current, defaults, args.PlatformJVM)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, args.JvmTarget, got[0].Field)
	assert.Equal(t, "17", *got[0].Value.Str())
}

func TestAdditionalArguments_NoPrimaryLeakage(t *testing.T) {
	current := args.NewBucket().
		MustSet(args.LanguageVersion, args.Single("2.0")).
		MustSet(args.JvmTarget, args.Single("21")).
		MustSet(args.PluginOptions, args.Multi("plugin:p:a=1")).
		MustSet(args.PluginClasspaths, args.Multi("/opt/p.jar")).
		MustSet(args.JdkHome, args.Single("/opt/jdk")).
		MustSet(args.NoJdk, args.Flag(true)).
		MustSet(args.Verbose, args.Flag(true))

	got, err := AdditionalArguments(nil, current, args.NewBucket(), args.PlatformJVM)
	require.NoError(t, err)

	registry := classify.Default()
	for _, a := range got {
		assert.Equal(t, classify.Additional, registry.Classify(args.PlatformJVM, a.Field), "field %s", a.Field)
	}
	require.Len(t, got, 1)
	assert.Equal(t, args.Verbose, got[0].Field)
}

func TestAdditionalArguments_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		current  *args.Bucket
		defaults *args.Bucket
		want     []args.FieldID
	}{
		{
			name:     "EqualSingleOmitted",
			current:  args.NewBucket().MustSet(args.ModuleName, args.Single("app")),
			defaults: args.NewBucket().MustSet(args.ModuleName, args.Single("app")),
			want:     []args.FieldID{},
		},
		{
			name:     "NullDiffersFromEmpty",
			current:  args.NewBucket().MustSet(args.ModuleName, args.Single("")),
			defaults: args.NewBucket().MustSet(args.ModuleName, args.Null()),
			want:     []args.FieldID{args.ModuleName},
		},
		{
			name:     "AbsentDefaultComparesToZero",
			current:  args.NewBucket().MustSet(args.NoReflect, args.Flag(false)),
			defaults: args.NewBucket(),
			want:     []args.FieldID{},
		},
		{
			name:     "FlagSetAgainstAbsentDefault",
			current:  args.NewBucket().MustSet(args.NoReflect, args.Flag(true)),
			defaults: args.NewBucket(),
			want:     []args.FieldID{args.NoReflect},
		},
		{
			name:     "ReorderedListIsChange",
			current:  args.NewBucket().MustSet(args.OptIn, args.Multi("b", "a")),
			defaults: args.NewBucket().MustSet(args.OptIn, args.Multi("a", "b")),
			want:     []args.FieldID{args.OptIn},
		},
		{
			name:     "EmptyListEqualsAbsent",
			current:  args.NewBucket().MustSet(args.OptIn, args.Multi()),
			defaults: args.NewBucket(),
			want:     []args.FieldID{},
		},
		{
			name: "CurrentOrderKept",
			current: args.NewBucket().
				MustSet(args.Verbose, args.Flag(true)).
				MustSet(args.ModuleName, args.Single("x")).
				MustSet(args.NoStdlib, args.Flag(true)),
			defaults: args.NewBucket(),
			want:     []args.FieldID{args.Verbose, args.ModuleName, args.NoStdlib},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdditionalArguments(nil, tt.current, tt.defaults, args.PlatformJVM)
			require.NoError(t, err)
			ids := make([]args.FieldID, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.Field)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAdditionalArguments_Minimal(t *testing.T) {
	defaults := args.NewBucket().
		MustSet(args.ModuleName, args.Single("core")).
		MustSet(args.OptIn, args.Multi("kotlin.RequiresOptIn"))

	got, err := AdditionalArguments(nil, defaults.Clone(), defaults, args.PlatformJVM)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdditionalArguments_RejectsForeignField(t *testing.T) {
	current := args.NewBucket().MustSet(args.SourceMap, args.Flag(true))

	_, err := AdditionalArguments(nil, current, args.NewBucket(), args.PlatformJVM)
	assert.ErrorIs(t, err, args.ErrUnknownField)
}
