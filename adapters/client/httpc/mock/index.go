package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rendau/sens/adapters/client/httpc"
	"github.com/rendau/sens/errs"
	"github.com/rendau/sens/logger"
)

const (
	ErrPageNotFound = errs.Err("page_not_found")
)

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type RequestSt struct {
	Opts httpc.OptionsSt
	Raw  []byte
}

// ResponseSt is a canned reply. A non-nil Err is returned instead of the body.
type ResponseSt struct {
	Obj any
	Raw []byte
	Err error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponse(path string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	c.responses[path] = response
}

func (c *St) GetOptions() httpc.OptionsSt {
	return httpc.OptionsSt{}
}

func (c *St) Send(_ context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, &RequestSt{
		Opts: opts,
		Raw:  reqBody,
	})

	response, ok := c.responses[opts.Path]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "path", opts.Path)
		return nil, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, response.Err
	}

	return response.Raw, nil
}

func (c *St) SendJson(ctx context.Context, reqObj any, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = withDefaultHeader(opts.Headers, "Content-Type", "application/json")

	reqBody, err := json.Marshal(reqObj)
	if err != nil {
		return nil, err
	}

	return c.Send(ctx, reqBody, opts)
}

func (c *St) SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = withDefaultHeader(opts.Headers, "Accept", "application/json")

	repBody, err := c.Send(ctx, reqBody, opts)
	if err != nil {
		return nil, err
	}

	if len(repBody) > 0 && repObj != nil {
		err = json.Unmarshal(repBody, repObj)
		if err != nil {
			return nil, errs.ErrWithDesc{Err: errs.BadJson, Desc: err.Error()}
		}
	}

	return repBody, nil
}

func (c *St) SendJsonRecvJson(ctx context.Context, reqObj, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = withDefaultHeader(opts.Headers, "Content-Type", "application/json")

	reqBody, err := json.Marshal(reqObj)
	if err != nil {
		return nil, err
	}

	return c.SendRecvJson(ctx, reqBody, repObj, opts)
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

// GetRequest finds the first request sent to path and decodes its body into obj.
func (c *St) GetRequest(path string, obj any) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Opts.Path != path {
			continue
		}

		if len(req.Raw) > 0 && obj != nil {
			err := json.Unmarshal(req.Raw, obj)
			if err != nil {
				c.lg.Errorw("Fail to unmarshal json", err)
				return nil, false
			}
		}

		return req, true
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
}

func withDefaultHeader(h http.Header, key, value string) http.Header {
	if h == nil {
		h = http.Header{}
	} else {
		h = h.Clone()
	}

	if h.Get(key) == "" {
		h.Set(key, value)
	}

	return h
}
