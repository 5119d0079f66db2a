package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Extraction fields.
	FieldExtensions   = "extensions"
	FieldFilesScanned = "files_scanned"
	FieldSymbols      = "symbols"

	// Map fields.
	FieldMapFile      = "map_file"
	FieldAddress      = "address"
	FieldWindow       = "window"
	FieldEntries      = "entries"
	FieldReplacements = "replacements"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
