package repository

// Exported for tests.
var (
	FormatTime = formatTime
	ParseTime  = parseTime
	BoolToInt  = boolToInt
)
