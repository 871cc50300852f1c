package classify

import "facet-reconciler/core/args"

var (
	commonExposed = []args.FieldID{
		args.LanguageVersion,
		args.APIVersion,
		args.SuppressWarnings,
		args.CoroutinesState,
	}
	commonHidden = []args.FieldID{
		args.PluginClasspaths,
		args.PluginOptions,
		args.MultiPlatform,
	}

	jvmExposed = []args.FieldID{
		args.JvmTarget,
		args.Destination,
		args.Classpath,
	}
	jvmHidden = []args.FieldID{
		args.FriendPaths,
	}
	// noJdk and jdkHome belong to the SDK resolver.
	jvmIgnored = []args.FieldID{
		args.NoJdk,
		args.JdkHome,
	}

	jsExposed = []args.FieldID{
		args.SourceMap,
		args.SourceMapPrefix,
		args.SourceMapEmbedSources,
		args.OutputPrefix,
		args.OutputPostfix,
		args.ModuleKind,
	}

	metadataExposed = []args.FieldID{
		args.Destination,
		args.Classpath,
	}
)

func concat(lists ...[]args.FieldID) []args.FieldID {
	var out []args.FieldID
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// DefaultTables returns the built-in classification tables.
func DefaultTables() map[args.Platform]Tables {
	return map[args.Platform]Tables{
		args.PlatformJVM: {
			Exposed: concat(commonExposed, jvmExposed),
			Hidden:  concat(commonHidden, jvmHidden),
			Ignored: jvmIgnored,
		},
		args.PlatformJS: {
			Exposed: concat(commonExposed, jsExposed),
			Hidden:  concat(commonHidden),
		},
		args.PlatformNative: {
			Exposed: concat(commonExposed),
			Hidden:  concat(commonHidden),
		},
		args.PlatformMetadata: {
			Exposed: concat(commonExposed, metadataExposed),
			Hidden:  concat(commonHidden),
		},
	}
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(DefaultTables())
	if err != nil {
		panic(err)
	}
	return r
}()

// Default returns the process-wide registry built from DefaultTables.
func Default() *Registry {
	return defaultRegistry
}
