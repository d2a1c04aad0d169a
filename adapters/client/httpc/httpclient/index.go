package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rendau/sens/adapters/client/httpc"
	"github.com/rendau/sens/errs"
	"github.com/rendau/sens/logger"
)

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.BaseUrl != "" {
		opts.BaseUrl = strings.TrimRight(opts.BaseUrl, "/") + "/"
	}

	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &St{
		lg:   lg,
		opts: opts,
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	opts = c.opts.GetMergedWith(opts)

	origLogFlags := opts.LogFlags

	var err error
	var repBody []byte

	for i := opts.RetryCount; i >= 0; i-- {
		if i == 0 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		repBody, err = c.send(ctx, reqBody, opts)
		if err == nil {
			return repBody, nil
		}

		if i > 0 && opts.RetryInterval > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryInterval):
			}
		}
	}

	return nil, err
}

func (c *St) send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	uri := opts.BaseUrl + opts.Path

	logPrefix := opts.BaseLogPrefix + opts.LogPrefix
	logError := opts.LogFlags&httpc.NoLogError <= 0

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(logPrefix+"request: /"+opts.Path,
			"uri", uri,
			"body", string(reqBody),
		)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, uri, bytes.NewReader(reqBody))
	if err != nil {
		if logError {
			c.lg.Errorw(logPrefix+"Fail to create http-request", err)
		}
		return nil, err
	}

	for k, v := range opts.BaseHeaders {
		req.Header[k] = v
	}
	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	rep, err := opts.Client.Do(req)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to send http-request", err,
				"uri", uri,
				"req_body", string(reqBody),
			)
		}
		return nil, err
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to read body", err,
				"uri", uri,
				"req_body", string(reqBody),
			)
		}
		return nil, err
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		sErr := &errs.StatusErr{
			Err:        errs.BadStatusCode,
			StatusCode: rep.StatusCode,
			Body:       repBody,
		}

		noLogFlag := httpc.NoLogBadStatus
		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusForbidden {
			sErr.Err = errs.NotAuthorized
			noLogFlag = httpc.NoLogNotAuthorized
		}

		if logError && opts.LogFlags&noLogFlag <= 0 {
			c.lg.Errorw(
				logPrefix+"Bad status code", nil,
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"uri", uri,
				"req_body", string(reqBody),
			)
		}

		return nil, sErr
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(logPrefix+"response: /"+opts.Path,
			"uri", uri,
			"body", string(repBody),
		)
	}

	return repBody, nil
}

func (c *St) SendJson(ctx context.Context, reqObj any, opts httpc.OptionsSt) ([]byte, error) {
	reqBody, err := c.marshal(reqObj, &opts)
	if err != nil {
		return nil, err
	}

	return c.Send(ctx, reqBody, opts)
}

func (c *St) SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = cloneHeader(opts.Headers)

	opts.Headers.Set("Accept", "application/json")

	repBody, err := c.Send(ctx, reqBody, opts)
	if err != nil {
		return nil, err
	}

	if len(repBody) > 0 && repObj != nil {
		err = json.Unmarshal(repBody, repObj)
		if err != nil {
			if merged := c.opts.GetMergedWith(opts); merged.LogFlags&httpc.NoLogError <= 0 {
				c.lg.Errorw(
					merged.BaseLogPrefix+merged.LogPrefix+"Fail to unmarshal body", err,
					"path", opts.Path,
					"rep_body", string(repBody),
				)
			}
			return nil, errs.ErrWithDesc{Err: errs.BadJson, Desc: err.Error()}
		}
	}

	return repBody, nil
}

func (c *St) SendJsonRecvJson(ctx context.Context, reqObj, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	reqBody, err := c.marshal(reqObj, &opts)
	if err != nil {
		return nil, err
	}

	return c.SendRecvJson(ctx, reqBody, repObj, opts)
}

func (c *St) marshal(reqObj any, opts *httpc.OptionsSt) ([]byte, error) {
	opts.Headers = cloneHeader(opts.Headers)

	if opts.Headers.Get("Content-Type") == "" {
		opts.Headers.Set("Content-Type", "application/json")
	}

	reqBody, err := json.Marshal(reqObj)
	if err != nil {
		if merged := c.opts.GetMergedWith(*opts); merged.LogFlags&httpc.NoLogError <= 0 {
			c.lg.Errorw(merged.BaseLogPrefix+merged.LogPrefix+"Fail to marshal json", err)
		}
		return nil, err
	}

	return reqBody, nil
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	return h.Clone()
}
