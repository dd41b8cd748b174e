package gateway

import "errors"

// Error kinds surfaced to the session. None of them is fatal; the store
// keeps its last known good content through every failure.
var (
	// ErrParse means the import text is not syntactically valid JSON.
	ErrParse = errors.New("import text is not valid JSON")

	// ErrValidation means the JSON parsed but at least one record is not
	// marker-shaped (missing id, missing or malformed location, or a
	// duplicated id).
	ErrValidation = errors.New("import data failed validation")

	// ErrClipboard means the host clipboard rejected the export payload.
	ErrClipboard = errors.New("clipboard write failed")
)
