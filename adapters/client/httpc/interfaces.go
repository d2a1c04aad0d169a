package httpc

import (
	"context"
)

type HttpC interface {
	GetOptions() OptionsSt
	Send(ctx context.Context, reqBody []byte, opts OptionsSt) ([]byte, error)
	SendJson(ctx context.Context, reqObj any, opts OptionsSt) ([]byte, error)
	SendRecvJson(ctx context.Context, reqBody []byte, repObj any, opts OptionsSt) ([]byte, error)
	SendJsonRecvJson(ctx context.Context, reqObj, repObj any, opts OptionsSt) ([]byte, error)
}
