// pkg/shlibs/constants.go
package shlibs

const (
	// ControlDir is the control subdirectory inside a staging tree
	ControlDir = "DEBIAN"

	// ShlibsFile is the generated dependency-control file name
	ShlibsFile = "shlibs"

	// TriggersFile holds the trigger registrations for the package
	TriggersFile = "triggers"

	// SymbolsFile is produced by the symbol-versioning tool
	SymbolsFile = "symbols"

	// ControlFileMode is the normalized permission for generated control files
	ControlFileMode = 0o644

	// LdconfigTrigger refreshes the dynamic-linker cache after install
	LdconfigTrigger = "activate-noawait ldconfig"

	// UdebPrefix tags dependency lines that apply to the udeb variant
	UdebPrefix = "udeb: "
)

// compatDefaultUpstream is the level at or above which the default
// dependency relation carries the upstream version. Pure configuration.
const compatDefaultUpstream = 12
