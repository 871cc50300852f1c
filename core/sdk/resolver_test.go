package sdk_test

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
	java17 = sdk.Candidate{ID: "jdk-17", Name: "17", Kind: sdk.KindJava, HomePath: `C:\Java\jdk-17`}
	kotlin = sdk.Candidate{ID: "kotlin", Name: "Kotlin SDK", Kind: sdk.KindKotlin}
)

func withJdkHome(home string) *args.Bucket {
	return args.NewBucket().MustSet(args.JdkHome, args.Single(home))
}

func TestResolve_JVM(t *testing.T) {
	r := sdk.NewResolver(sdk.WithCaseInsensitivePaths(false))

	tests := []struct {
		name         string
		req          sdk.Request
		wantAction   sdk.Action
		wantSdk      string
		wantStrategy string
	}{
		{
			name: "ProjectDefaultIsInherited",
			req: sdk.Request{
				Platform:   args.PlatformJVM,
				Bucket:     args.NewBucket(),
				ProjectSdk: &java8,
				Available:  []sdk.Candidate{java8, java17},
			},
			wantAction:   sdk.ActionInherit,
			wantSdk:      "jdk-8",
			wantStrategy: "project-default",
		},
		{
			name: "ExplicitHomeWinsOverProjectDefault",
			req: sdk.Request{
				Platform:   args.PlatformJVM,
				Bucket:     withJdkHome("C:/Java/jdk-17/"),
				ProjectSdk: &java8,
				Available:  []sdk.Candidate{java8, java17},
			},
			wantAction:   sdk.ActionAssign,
			wantSdk:      "jdk-17",
			wantStrategy: "explicit-home",
		},
		{
			name: "ExplicitHomeMatchingProjectSdkIsInherited",
			req: sdk.Request{
				Platform:   args.PlatformJVM,
				Bucket:     withJdkHome("/opt//jdk8"),
				ProjectSdk: &java8,
				Available:  []sdk.Candidate{java17, java8},
			},
			wantAction:   sdk.ActionInherit,
			wantSdk:      "jdk-8",
			wantStrategy: "explicit-home",
		},
		{
			name: "UnmatchedExplicitHomeInherits",
			req: sdk.Request{
				Platform:   args.PlatformJVM,
				Bucket:     withJdkHome("/opt/jdk21"),
				ProjectSdk: &java8,
				Available:  []sdk.Candidate{java8, java17},
			},
			wantAction:   sdk.ActionInherit,
			wantStrategy: "explicit-home",
		},
		{
			name: "NonJavaProjectSdkFallsBackToFirstJdk",
			req: sdk.Request{
				Platform:   args.PlatformJVM,
				Bucket:     args.NewBucket(),
				ProjectSdk: &kotlin,
				Available:  []sdk.Candidate{kotlin, java17, java8},
			},
			wantAction:   sdk.ActionAssign,
			wantSdk:      "jdk-17",
			wantStrategy: "first-java",
		},
		{
			name: "NothingAvailable",
			req: sdk.Request{
				Platform: args.PlatformJVM,
				Bucket:   args.NewBucket(),
			},
			wantAction: sdk.ActionInherit,
		},
		{
			name: "KotlinCandidateIgnoredForJdkHome",
			req: sdk.Request{
				Platform:  args.PlatformJVM,
				Bucket:    withJdkHome("/opt/kotlin"),
				Available: []sdk.Candidate{{ID: "k", Kind: sdk.KindKotlin, HomePath: "/opt/kotlin"}},
			},
			wantAction:   sdk.ActionInherit,
			wantStrategy: "explicit-home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Resolve(tt.req)
			assert.Equal(t, tt.wantAction, d.Action)
			assert.Equal(t, tt.wantStrategy, d.Strategy)
			if tt.wantSdk == "" {
				assert.Nil(t, d.Sdk)
			} else {
				require.NotNil(t, d.Sdk)
				assert.Equal(t, tt.wantSdk, d.Sdk.ID)
			}
		})
	}
}

func TestResolve_NonJVM(t *testing.T) {
	r := sdk.NewResolver()
	siblingKotlin := sdk.Candidate{ID: "kotlin-sibling", Kind: sdk.KindKotlin}

	t.Run("FirstKotlinCandidate", func(t *testing.T) {
		d := r.Resolve(sdk.Request{
			Platform:  args.PlatformJS,
			Available: []sdk.Candidate{java8, kotlin},
		})
		assert.Equal(t, sdk.ActionAssign, d.Action)
		assert.Equal(t, "kotlin", d.Sdk.ID)
		assert.Equal(t, "available-kotlin", d.Strategy)
	})

	t.Run("FallsBackToSiblings", func(t *testing.T) {
		d := r.Resolve(sdk.Request{
			Platform:  args.PlatformNative,
			Available: []sdk.Candidate{java8},
			Siblings: []sdk.Sibling{
				{Name: "app", Sdk: &java8},
				{Name: "empty"},
				{Name: "shared", Sdk: &siblingKotlin},
			},
		})
		assert.Equal(t, sdk.ActionAssign, d.Action)
		assert.Equal(t, "kotlin-sibling", d.Sdk.ID)
		assert.Equal(t, "sibling-kotlin", d.Strategy)
	})

	t.Run("NoKotlinAnywhereInherits", func(t *testing.T) {
		d := r.Resolve(sdk.Request{
			Platform:   args.PlatformMetadata,
			ProjectSdk: &java8,
			Available:  []sdk.Candidate{java8},
		})
		assert.Equal(t, sdk.ActionInherit, d.Action)
		assert.Nil(t, d.Sdk)
	})

	t.Run("JdkHomeDoesNotMatterOffJVM", func(t *testing.T) {
		d := r.Resolve(sdk.Request{
			Platform:  args.PlatformJS,
			Bucket:    args.NewBucket(),
			Available: []sdk.Candidate{kotlin},
		})
		assert.Equal(t, "kotlin", d.Sdk.ID)
	})
}

func TestResolve_ExternalOwnership(t *testing.T) {
	r := sdk.NewResolver()

	tests := []struct {
		name     string
		module   sdk.Module
		platform args.Platform
		bucket   *args.Bucket
		want     sdk.Action
	}{
		{"PlatformManaged", sdk.Module{PlatformManaged: true}, args.PlatformJVM, withJdkHome("/opt/jdk8"), sdk.ActionSkip},
		{"ExternalWithoutOverride", sdk.Module{ExternalSdk: true}, args.PlatformJVM, args.NewBucket(), sdk.ActionSkip},
		{"ExternalOverriddenByJdkHome", sdk.Module{ExternalSdk: true}, args.PlatformJVM, withJdkHome("/opt/jdk8"), sdk.ActionInherit},
		{"ExternalNonJVMCannotBeOverridden", sdk.Module{ExternalSdk: true}, args.PlatformJS, args.NewBucket(), sdk.ActionSkip},
		{"NotExternal", sdk.Module{}, args.PlatformJVM, args.NewBucket(), sdk.ActionInherit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Resolve(sdk.Request{
				Module:     tt.module,
				Platform:   tt.platform,
				Bucket:     tt.bucket,
				ProjectSdk: &java8,
				Available:  []sdk.Candidate{java8},
			})
			assert.Equal(t, tt.want, d.Action)
		})
	}
}

func TestResolve_CustomChain(t *testing.T) {
	r := sdk.NewResolver(sdk.WithJVMStrategies(sdk.FirstAvailable("first-java", sdk.KindJava)))
	d := r.Resolve(sdk.Request{
		Platform:   args.PlatformJVM,
		Bucket:     withJdkHome("/opt/jdk8"),
		ProjectSdk: &java8,
		Available:  []sdk.Candidate{java17, java8},
	})
	assert.Equal(t, sdk.ActionAssign, d.Action)
	assert.Equal(t, "jdk-17", d.Sdk.ID)
}

func TestComparePaths(t *testing.T) {
	plain := args.Normalizer{}
	assert.True(t, sdk.ComparePaths(plain, false)(`C:\jdk\`, "C:/jdk"))
	assert.False(t, sdk.ComparePaths(plain, false)("/opt/JDK", "/opt/jdk"))
	assert.True(t, sdk.ComparePaths(plain, true)("/opt/JDK", "/opt/jdk"))
}

func TestResolve_NormalizerResolvesCandidateHomes(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "jdk-17.0.2")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "jdk17")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	linked := sdk.Candidate{ID: "jdk-17", Name: "17", Kind: sdk.KindJava, HomePath: link}
	req := sdk.Request{
		Module:     sdk.Module{Name: "app"},
		Platform:   args.PlatformJVM,
		Bucket:     withJdkHome(target),
		ProjectSdk: &java8,
		Available:  []sdk.Candidate{java8, linked},
	}

	plain := sdk.NewResolver(sdk.WithCaseInsensitivePaths(false))
	assert.Equal(t, sdk.ActionInherit, plain.Resolve(req).Action)

	resolving := plain.Normalizing(args.Normalizer{ResolveSymlinks: true})
	d := resolving.Resolve(req)
	assert.Equal(t, sdk.ActionAssign, d.Action)
	require.NotNil(t, d.Sdk)
	assert.Equal(t, "jdk-17", d.Sdk.ID)

	viaOption := sdk.NewResolver(sdk.WithCaseInsensitivePaths(false), sdk.WithNormalizer(args.Normalizer{ResolveSymlinks: true}))
	assert.Equal(t, sdk.ActionAssign, viaOption.Resolve(req).Action)
}
