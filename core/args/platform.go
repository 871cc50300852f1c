package args

import (
	"fmt"
	"strings"
)

// Platform is the compilation target of a module.
type Platform string

const (
	PlatformJVM      Platform = "jvm"
	PlatformJS       Platform = "js"
	PlatformNative   Platform = "native"
	PlatformMetadata Platform = "metadata"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformJVM, PlatformJS, PlatformNative, PlatformMetadata}

// ParsePlatform converts a platform name, case-insensitively.
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := platformSchemas[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
	return p, nil
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	_, ok := platformSchemas[p]
	return ok
}

// IsJVM reports whether p is the JVM platform.
func (p Platform) IsJVM() bool { return p == PlatformJVM }

var commonSchema = []FieldID{
	LanguageVersion, APIVersion, SuppressWarnings, CoroutinesState,
	PluginClasspaths, PluginOptions, MultiPlatform,
	AllWarningsAsErrors, Verbose, ProgressiveMode, OptIn, ExplicitAPI,
	IntellijPluginRoot, KotlinHome, NoInline, ReportPerf, CommonSources,
	SkipMetadataVersionCheck,
}

var platformSchemas = map[Platform]map[FieldID]struct{}{
	PlatformJVM: schemaSet(
		JvmTarget, Destination, Classpath, FriendPaths, NoJdk, JdkHome, NoStdlib,
		NoReflect, ModuleName, JavaParameters, JvmDefault, ScriptTemplates, JavaModulePath,
	),
	PlatformJS: schemaSet(
		SourceMap, SourceMapPrefix, SourceMapEmbedSources, OutputPrefix, OutputPostfix,
		ModuleKind, OutputFile, Libraries, Main, MetaInfo, Target, NoStdlib, ModuleName,
	),
	PlatformNative: schemaSet(
		Produce, Target, Libraries, NoPack, ModuleName,
	),
	PlatformMetadata: schemaSet(
		Destination, Classpath, FriendPaths, RefinesPaths, ModuleName,
	),
}

func schemaSet(platformFields ...FieldID) map[FieldID]struct{} {
	set := make(map[FieldID]struct{}, len(commonSchema)+len(platformFields))
	for _, id := range commonSchema {
		set[id] = struct{}{}
	}
	for _, id := range platformFields {
		set[id] = struct{}{}
	}
	return set
}

// Accepts reports whether the platform's schema contains the field.
func (p Platform) Accepts(id FieldID) bool {
	_, ok := platformSchemas[p][id]
	return ok
}
