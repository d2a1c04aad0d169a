package httpc

import (
	"net/http"
	"time"
)

// OptionsSt is used both as client-wide defaults and per-call overrides.
// A "-" string (or a negative number) in the override clears the default.
type OptionsSt struct {
	Client        *http.Client
	BaseUrl       string
	BaseHeaders   http.Header
	BaseLogPrefix string

	Method        string
	Path          string
	Headers       http.Header
	LogFlags      int
	LogPrefix     string
	Timeout       time.Duration
	RetryCount    int
	RetryInterval time.Duration
}

func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := o

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.BaseHeaders != nil {
		res.BaseHeaders = v.BaseHeaders
	}
	if v.Headers != nil {
		res.Headers = v.Headers
	}

	res.BaseUrl = mergeStr(res.BaseUrl, v.BaseUrl)
	res.BaseLogPrefix = mergeStr(res.BaseLogPrefix, v.BaseLogPrefix)
	res.Method = mergeStr(res.Method, v.Method)
	res.Path = mergeStr(res.Path, v.Path)
	res.LogPrefix = mergeStr(res.LogPrefix, v.LogPrefix)

	if v.LogFlags != 0 {
		res.LogFlags = max(v.LogFlags, 0)
	}
	if v.RetryCount != 0 {
		res.RetryCount = max(v.RetryCount, 0)
	}
	if v.Timeout != 0 {
		res.Timeout = max(v.Timeout, 0)
	}
	if v.RetryInterval != 0 {
		res.RetryInterval = max(v.RetryInterval, 0)
	}

	return res
}

func mergeStr(base, v string) string {
	switch v {
	case "":
		return base
	case "-":
		return ""
	default:
		return v
	}
}
