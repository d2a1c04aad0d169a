package sms

import (
	"context"
)

type Sms interface {
	Send(ctx context.Context, receiver, content string) (*SendRepSt, error)
	SendRequest(ctx context.Context, req *MessageRequestSt) (*SendRepSt, error)
}
