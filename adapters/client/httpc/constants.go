package httpc

// Log flags, combined with "|" in OptionsSt.LogFlags.
const (
	LogRequest = 1 << iota
	LogResponse
	NoLogError
	NoLogNotAuthorized
	NoLogBadStatus
)
