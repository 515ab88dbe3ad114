package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	RenderError     = 3
	ExportError     = 4
	ServerError     = 5
)
