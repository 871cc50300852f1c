package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
	"facet-reconciler/feature/facet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSdkEnvironment(t *testing.T) {
	t.Run("No Candidates", func(t *testing.T) {
		env, err := sdkEnvironment(nil, nil, "")
		require.NoError(t, err)
		assert.Nil(t, env)
	})

	t.Run("Project Sdk Without Candidates", func(t *testing.T) {
		_, err := sdkEnvironment(nil, nil, "jdk-17")
		assert.Error(t, err)
	})

	t.Run("Candidates In Order", func(t *testing.T) {
		env, err := sdkEnvironment([]string{"jdk-8=/opt/jdk8", "jdk-17=/opt/jdk17"}, []string{"kotlin"}, "jdk-17")
		require.NoError(t, err)
		require.Len(t, env.Available, 3)
		assert.Equal(t, "jdk-8", env.Available[0].ID)
		assert.Equal(t, "/opt/jdk8", env.Available[0].HomePath)
		assert.Equal(t, sdk.KindJava, env.Available[1].Kind)
		assert.Equal(t, sdk.KindKotlin, env.Available[2].Kind)
		require.NotNil(t, env.ProjectSdk)
		assert.Equal(t, "jdk-17", env.ProjectSdk.ID)
	})

	t.Run("Malformed Java", func(t *testing.T) {
		for _, raw := range []string{"jdk-8", "=/opt/jdk8", "jdk-8="} {
			_, err := sdkEnvironment([]string{raw}, nil, "")
			assert.Error(t, err, raw)
		}
	})

	t.Run("Unknown Project Sdk", func(t *testing.T) {
		_, err := sdkEnvironment(nil, []string{"kotlin"}, "jdk-17")
		assert.ErrorContains(t, err, "jdk-17")
	})
}

func TestFileReconcileFlags_OptionsKeepCommas(t *testing.T) {
	flags := fileReconcileCmd.Flags()
	t.Cleanup(func() {
		reset := flags.Lookup("options").Value.(interface{ Replace([]string) error })
		require.NoError(t, reset.Replace([]string{}))
	})

	require.NoError(t, flags.Parse([]string{
		"--options", "plugin:allopen:annotation=a.B,c.D",
		"--options", "plugin:kapt:aptMode=stubs",
	}))
	assert.Equal(t, []string{"plugin:allopen:annotation=a.B,c.D", "plugin:kapt:aptMode=stubs"}, fileOptions)
}

func TestReadBucket(t *testing.T) {
	dir := t.TempDir()

	t.Run("YAML", func(t *testing.T) {
		name := filepath.Join(dir, "app.yaml")
		require.NoError(t, os.WriteFile(name, []byte("jvmTarget: \"17\"\n"), 0o644))

		b, err := readBucket(name)
		require.NoError(t, err)
		v, ok := b.Get(args.JvmTarget)
		require.True(t, ok)
		assert.Equal(t, "17", *v.Str())
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := readBucket(filepath.Join(dir, "missing.json"))
		assert.ErrorContains(t, err, "failed to read")
	})

	t.Run("Bad Content", func(t *testing.T) {
		name := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(name, []byte("{"), 0o644))

		_, err := readBucket(name)
		assert.ErrorContains(t, err, "failed to decode")
	})
}

func TestRenderPlan(t *testing.T) {
	plan := &reconcile.ReconcilePlan{
		Project: "shop",
		Results: []reconcile.Result{{
			Module:   "core",
			Platform: args.PlatformJVM,
			AdditionalArguments: []args.Argument{
				{Field: args.JvmTarget, Value: args.Single("17")},
			},
			Sdk: sdk.Decision{Action: sdk.ActionAssign, Sdk: &sdk.Candidate{ID: "jdk-17"}, Strategy: "explicit-home"},
		}},
		Actions: []reconcile.Action{
			{Type: reconcile.ActionAssignSdk, Module: "core", SdkID: "jdk-17", Reason: "resolved by explicit-home"},
		},
		Summary: reconcile.PlanSummary{TotalModules: 1, SdkAssignments: 1},
	}

	out := renderPlan(plan)
	assert.Contains(t, out, "Project shop")
	assert.Contains(t, out, "core (jvm)")
	assert.Contains(t, out, string(args.JvmTarget))
	assert.Contains(t, out, "jdk-17")
	assert.Contains(t, out, "assign_sdk")
	assert.Contains(t, out, "1 modules")
	assert.NotContains(t, out, "Nothing to do.")

	plan.Actions = nil
	assert.Contains(t, renderPlan(plan), "Nothing to do.")
}

func TestRenderSdks(t *testing.T) {
	assert.Contains(t, renderSdks(nil), "No SDKs registered.")

	out := renderSdks([]models.Sdk{
		{ID: "jdk-17", Kind: "java", HomePath: "/opt/jdk17", Position: 1},
		{ID: "kotlin-sdk", Kind: "kotlin", Position: 2},
	})
	assert.Contains(t, out, "jdk-17")
	assert.Contains(t, out, "/opt/jdk17")
	assert.Contains(t, out, "kotlin-sdk")
}
