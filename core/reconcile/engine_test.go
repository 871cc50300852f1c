package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"facet-reconciler/core/args"
	"facet-reconciler/core/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	java8  = sdk.Candidate{ID: "jdk-8", Name: "1.8", Kind: sdk.KindJava, HomePath: "/opt/jdk8"}
	java17 = sdk.Candidate{ID: "jdk-17", Name: "17", Kind: sdk.KindJava, HomePath: "/opt/jdk17"}
	kotlin = sdk.Candidate{ID: "kotlin", Name: "Kotlin SDK", Kind: sdk.KindKotlin}
)

func TestEngine_MergesPluginOptions(t *testing.T) {
	module := Module{
		Name:     "app",
		Platform: args.PlatformJVM,
		Current: args.NewBucket().
			MustSet(args.PluginOptions, args.Multi("plugin:pluginA:x=9", "plugin:pluginC:z=3")),
		Settings: Settings{PluginOptions: []string{"plugin:pluginA:x=1", "plugin:pluginB:y=2"}},
	}

	result, err := NewEngine().Reconcile(module, args.NewBucket(), Environment{})
	require.NoError(t, err)

	assert.Equal(t, []string{"plugin:pluginA:x=9", "plugin:pluginB:y=2", "plugin:pluginC:z=3"}, result.PluginOptions)
	assert.Empty(t, result.AdditionalArguments)
	assert.Equal(t, sdk.ActionSkip, result.Sdk.Action)

	// The caller's bucket is left alone.
	opts, _ := module.Current.Get(args.PluginOptions)
	assert.Equal(t, []string{"plugin:pluginA:x=9", "plugin:pluginC:z=3"}, opts.Strings())
}

func TestEngine_NormalizesBeforeDiff(t *testing.T) {
	module := Module{
		Name:     "app",
		Platform: args.PlatformJVM,
		Current: args.NewBucket().
			MustSet(args.ScriptTemplates, args.Multi("a")).
			MustSet(args.JavaModulePath, args.Single(`C:\mods\.\lib\`)),
	}
	defaults := args.NewBucket().
		MustSet(args.JavaModulePath, args.Single("C:/mods/lib"))

	result, err := NewEngine().Reconcile(module, defaults, Environment{})
	require.NoError(t, err)

	ids := make([]args.FieldID, 0, len(result.AdditionalArguments))
	for _, a := range result.AdditionalArguments {
		ids = append(ids, a.Field)
	}
	assert.NotContains(t, ids, args.JavaModulePath)
}

func TestEngine_ResolvesSdk(t *testing.T) {
	engine := NewEngine(WithResolver(sdk.NewResolver(sdk.WithCaseInsensitivePaths(false))))

	tests := []struct {
		name       string
		module     Module
		env        Environment
		wantAction sdk.Action
		wantSdk    string
	}{
		{
			name:   "Java8ProjectDefaultInherited",
			module: Module{Name: "app", Platform: args.PlatformJVM, Current: args.NewBucket()},
			env: Environment{
				SdkEnvironment: SdkEnvironment{ProjectSdk: &java8, Available: []sdk.Candidate{java8, java17}},
				ResolveSdk:     true,
			},
			wantAction: sdk.ActionInherit,
			wantSdk:    "jdk-8",
		},
		{
			name: "JdkHomeAssigned",
			module: Module{
				Name:     "app",
				Platform: args.PlatformJVM,
				Current:  args.NewBucket().MustSet(args.JdkHome, args.Single(`/opt/jdk17/`)),
			},
			env: Environment{
				SdkEnvironment: SdkEnvironment{ProjectSdk: &java8, Available: []sdk.Candidate{java8, java17}},
				ResolveSdk:     true,
			},
			wantAction: sdk.ActionAssign,
			wantSdk:    "jdk-17",
		},
		{
			name:   "JsUsesKotlinSdk",
			module: Module{Name: "web", Platform: args.PlatformJS, Current: args.NewBucket()},
			env: Environment{
				SdkEnvironment: SdkEnvironment{ProjectSdk: &java8, Available: []sdk.Candidate{java8, kotlin}},
				ResolveSdk:     true,
			},
			wantAction: sdk.ActionAssign,
			wantSdk:    "kotlin",
		},
		{
			name:       "ResolutionDisabled",
			module:     Module{Name: "app", Platform: args.PlatformJVM, Current: args.NewBucket()},
			env:        Environment{SdkEnvironment: SdkEnvironment{ProjectSdk: &java8}},
			wantAction: sdk.ActionSkip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Reconcile(tt.module, args.NewBucket(), tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, result.Sdk.Action)
			if tt.wantSdk != "" {
				require.NotNil(t, result.Sdk.Sdk)
				assert.Equal(t, tt.wantSdk, result.Sdk.Sdk.ID)
			}
		})
	}
}

func TestEngine_ResolvesSdkThroughSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "jdk-17.0.2")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "jdk17")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	linked := sdk.Candidate{ID: "jdk-17", Name: "17", Kind: sdk.KindJava, HomePath: link}
	env := Environment{
		SdkEnvironment: SdkEnvironment{ProjectSdk: &java8, Available: []sdk.Candidate{java8, linked}},
		ResolveSdk:     true,
	}

	for _, home := range []string{link, target} {
		t.Run(filepath.Base(home), func(t *testing.T) {
			module := Module{
				Name:     "app",
				Platform: args.PlatformJVM,
				Current:  args.NewBucket().MustSet(args.JdkHome, args.Single(home)),
			}

			engine := NewEngine(WithNormalizer(args.Normalizer{ResolveSymlinks: true}))
			result, err := engine.Reconcile(module, args.NewBucket(), env)
			require.NoError(t, err)
			assert.Equal(t, sdk.ActionAssign, result.Sdk.Action)
			require.NotNil(t, result.Sdk.Sdk)
			assert.Equal(t, "jdk-17", result.Sdk.Sdk.ID)
			assert.Equal(t, "explicit-home", result.Sdk.Strategy)
		})
	}
}

func TestEngine_InvalidInput(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Reconcile(Module{Name: "x", Platform: "wasm", Current: args.NewBucket()}, args.NewBucket(), Environment{})
	assert.ErrorIs(t, err, args.ErrUnknownPlatform)

	_, err = engine.Reconcile(Module{
		Name:     "x",
		Platform: args.PlatformNative,
		Current:  args.NewBucket().MustSet(args.JvmTarget, args.Single("17")),
	}, args.NewBucket(), Environment{})
	assert.ErrorIs(t, err, args.ErrUnknownField)

	_, err = engine.Reconcile(Module{Name: "x", Platform: args.PlatformJS, Current: args.NewBucket()},
		args.NewBucket().MustSet(args.NoJdk, args.Flag(true)), Environment{})
	assert.ErrorIs(t, err, args.ErrUnknownField)
}

func TestSettings_Equal(t *testing.T) {
	a := Settings{
		AdditionalArguments: []args.Argument{{Field: args.Verbose, Value: args.Flag(true)}},
		PluginOptions:       []string{"plugin:p:a=1"},
	}
	b := Settings{
		AdditionalArguments: []args.Argument{{Field: args.Verbose, Value: args.Flag(true)}},
		PluginOptions:       []string{"plugin:p:a=1"},
	}
	assert.True(t, a.Equal(b))

	b.PluginOptions = []string{"plugin:p:a=2"}
	assert.False(t, a.Equal(b))

	assert.True(t, Settings{}.Equal(Settings{AdditionalArguments: []args.Argument{}, PluginOptions: []string{}}))
}
