package args

// SchemaVersion identifies the compiler-argument schema the field table describes.
// Field identifiers are only stable within one schema version.
const SchemaVersion = "1.9"

// Kind is the value kind carried by a field.
type Kind uint8

const (
	// KindSingle is an optional string value.
	KindSingle Kind = iota + 1
	// KindMulti is an ordered list of strings.
	KindMulti
	// KindFlag is a boolean switch.
	KindFlag
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	case KindFlag:
		return "flag"
	default:
		return "invalid"
	}
}

// FieldID is a compiler argument identifier.
type FieldID string

// Common fields, accepted by every platform.
const (
	LanguageVersion          FieldID = "languageVersion"
	APIVersion               FieldID = "apiVersion"
	SuppressWarnings         FieldID = "suppressWarnings"
	CoroutinesState          FieldID = "coroutinesState"
	PluginClasspaths         FieldID = "pluginClasspaths"
	PluginOptions            FieldID = "pluginOptions"
	MultiPlatform            FieldID = "multiPlatform"
	AllWarningsAsErrors      FieldID = "allWarningsAsErrors"
	Verbose                  FieldID = "verbose"
	ProgressiveMode          FieldID = "progressiveMode"
	OptIn                    FieldID = "optIn"
	ExplicitAPI              FieldID = "explicitApi"
	IntellijPluginRoot       FieldID = "intellijPluginRoot"
	KotlinHome               FieldID = "kotlinHome"
	NoInline                 FieldID = "noInline"
	ReportPerf               FieldID = "reportPerf"
	CommonSources            FieldID = "commonSources"
	SkipMetadataVersionCheck FieldID = "skipMetadataVersionCheck"
)

// JVM fields.
const (
	JvmTarget       FieldID = "jvmTarget"
	Destination     FieldID = "destination"
	Classpath       FieldID = "classpath"
	FriendPaths     FieldID = "friendPaths"
	NoJdk           FieldID = "noJdk"
	JdkHome         FieldID = "jdkHome"
	NoStdlib        FieldID = "noStdlib"
	NoReflect       FieldID = "noReflect"
	ModuleName      FieldID = "moduleName"
	JavaParameters  FieldID = "javaParameters"
	JvmDefault      FieldID = "jvmDefault"
	ScriptTemplates FieldID = "scriptTemplates"
	JavaModulePath  FieldID = "javaModulePath"
)

// JS fields.
const (
	SourceMap             FieldID = "sourceMap"
	SourceMapPrefix       FieldID = "sourceMapPrefix"
	SourceMapEmbedSources FieldID = "sourceMapEmbedSources"
	OutputPrefix          FieldID = "outputPrefix"
	OutputPostfix         FieldID = "outputPostfix"
	ModuleKind            FieldID = "moduleKind"
	OutputFile            FieldID = "outputFile"
	Libraries             FieldID = "libraries"
	Main                  FieldID = "main"
	MetaInfo              FieldID = "metaInfo"
	Target                FieldID = "target"
)

// Native and metadata fields.
const (
	Produce      FieldID = "produce"
	NoPack       FieldID = "nopack"
	RefinesPaths FieldID = "refinesPaths"
)

// FieldSpec describes one field: its identifier, value kind, and whether its
// values are filesystem paths.
type FieldSpec struct {
	ID   FieldID
	Kind Kind
	Path bool
}

var fieldTable = []FieldSpec{
	{ID: LanguageVersion, Kind: KindSingle},
	{ID: APIVersion, Kind: KindSingle},
	{ID: SuppressWarnings, Kind: KindFlag},
	{ID: CoroutinesState, Kind: KindSingle},
	{ID: PluginClasspaths, Kind: KindMulti, Path: true},
	{ID: PluginOptions, Kind: KindMulti},
	{ID: MultiPlatform, Kind: KindFlag},
	{ID: AllWarningsAsErrors, Kind: KindFlag},
	{ID: Verbose, Kind: KindFlag},
	{ID: ProgressiveMode, Kind: KindFlag},
	{ID: OptIn, Kind: KindMulti},
	{ID: ExplicitAPI, Kind: KindSingle},
	{ID: IntellijPluginRoot, Kind: KindSingle, Path: true},
	{ID: KotlinHome, Kind: KindSingle, Path: true},
	{ID: NoInline, Kind: KindFlag},
	{ID: ReportPerf, Kind: KindFlag},
	{ID: CommonSources, Kind: KindMulti, Path: true},
	{ID: SkipMetadataVersionCheck, Kind: KindFlag},

	{ID: JvmTarget, Kind: KindSingle},
	{ID: Destination, Kind: KindSingle, Path: true},
	{ID: Classpath, Kind: KindMulti, Path: true},
	{ID: FriendPaths, Kind: KindMulti, Path: true},
	{ID: NoJdk, Kind: KindFlag},
	{ID: JdkHome, Kind: KindSingle, Path: true},
	{ID: NoStdlib, Kind: KindFlag},
	{ID: NoReflect, Kind: KindFlag},
	{ID: ModuleName, Kind: KindSingle},
	{ID: JavaParameters, Kind: KindFlag},
	{ID: JvmDefault, Kind: KindSingle},
	{ID: ScriptTemplates, Kind: KindMulti},
	{ID: JavaModulePath, Kind: KindSingle, Path: true},

	{ID: SourceMap, Kind: KindFlag},
	{ID: SourceMapPrefix, Kind: KindSingle},
	{ID: SourceMapEmbedSources, Kind: KindSingle},
	{ID: OutputPrefix, Kind: KindSingle, Path: true},
	{ID: OutputPostfix, Kind: KindSingle, Path: true},
	{ID: ModuleKind, Kind: KindSingle},
	{ID: OutputFile, Kind: KindSingle, Path: true},
	{ID: Libraries, Kind: KindMulti, Path: true},
	{ID: Main, Kind: KindSingle},
	{ID: MetaInfo, Kind: KindFlag},
	{ID: Target, Kind: KindSingle},

	{ID: Produce, Kind: KindSingle},
	{ID: NoPack, Kind: KindFlag},
	{ID: RefinesPaths, Kind: KindMulti, Path: true},
}

var fieldsByID = func() map[FieldID]FieldSpec {
	m := make(map[FieldID]FieldSpec, len(fieldTable))
	for _, spec := range fieldTable {
		m[spec.ID] = spec
	}
	return m
}()

// Lookup returns the spec of a known field.
func Lookup(id FieldID) (FieldSpec, bool) {
	spec, ok := fieldsByID[id]
	return spec, ok
}

// MustLookup is like Lookup but panics for unknown identifiers. Use it only
// with the constants declared in this package.
func MustLookup(id FieldID) FieldSpec {
	spec, ok := fieldsByID[id]
	if !ok {
		panic("args: unknown field " + string(id))
	}
	return spec
}

// AllFields returns every field spec in schema order.
func AllFields() []FieldSpec {
	out := make([]FieldSpec, len(fieldTable))
	copy(out, fieldTable)
	return out
}
