package sens

import (
	"context"
	"net/http"
	"time"

	"github.com/rendau/sens/adapters/client/httpc"
	"github.com/rendau/sens/adapters/client/httpc/httpclient"
	"github.com/rendau/sens/adapters/sms"
	"github.com/rendau/sens/errs"
	"github.com/rendau/sens/logger"
)

type St struct {
	lg            logger.Lite
	httpc         httpc.HttpC
	cred          sms.CredentialSt
	callingNumber string

	now func() time.Time
}

func New(lg logger.Lite, httpc httpc.HttpC, cred sms.CredentialSt, callingNumber string) *St {
	return &St{
		lg:            lg,
		httpc:         httpc,
		cred:          cred,
		callingNumber: callingNumber,
		now:           time.Now,
	}
}

// NewHttpC returns a transport bound to the api host. Retries stay disabled.
func NewHttpC(lg logger.Lite, client *http.Client, timeout time.Duration) *httpclient.St {
	return httpclient.New(lg, httpc.OptionsSt{
		Client:        client,
		BaseUrl:       ApiHost,
		BaseLogPrefix: "sens: ",
		Timeout:       timeout,
	})
}

func (s *St) Send(ctx context.Context, receiver, content string) (*sms.SendRepSt, error) {
	req, err := sms.NewShortRequest(s.callingNumber, receiver, content)
	if err != nil {
		s.lg.Warnw("Sms rejected", "error", err)
		return nil, err
	}

	return s.send(ctx, req)
}

// SendRequest sends req as is, without validation.
func (s *St) SendRequest(ctx context.Context, req *sms.MessageRequestSt) (*sms.SendRepSt, error) {
	if req == nil {
		return nil, errs.ErrWithDesc{Err: errs.InvalidArguments, Desc: "nil request"}
	}

	return s.send(ctx, req)
}

// RequestMessage accepts either (receiver, content string) or a single
// sms.MessageRequestSt (value or pointer).
func (s *St) RequestMessage(ctx context.Context, args ...any) (*sms.SendRepSt, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case *sms.MessageRequestSt:
			return s.SendRequest(ctx, v)
		case sms.MessageRequestSt:
			return s.SendRequest(ctx, &v)
		}
	case 2:
		receiver, ok1 := args[0].(string)
		content, ok2 := args[1].(string)
		if ok1 && ok2 {
			return s.Send(ctx, receiver, content)
		}
	}

	return nil, errs.InvalidArguments
}

func (s *St) send(ctx context.Context, req *sms.MessageRequestSt) (*sms.SendRepSt, error) {
	path := "/sms/v2/services/" + s.cred.ServiceId + "/messages"

	headers := SignHeaders(http.MethodPost, path, s.now(), s.cred)
	headers.Set("Content-Type", contentType)

	repObj := &sms.SendRepSt{}

	_, err := s.httpc.SendJsonRecvJson(ctx, req, repObj, httpc.OptionsSt{
		Method:    http.MethodPost,
		Path:      path[1:],
		Headers:   headers,
		LogPrefix: "SendMessage: ",
	})
	if err != nil {
		return nil, err
	}

	s.lg.Infow("Sms accepted",
		"request_id", repObj.RequestId,
		"type", req.Type,
		"recipients", len(req.Messages),
	)

	return repObj, nil
}
