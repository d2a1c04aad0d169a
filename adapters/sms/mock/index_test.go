package mock

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rendau/sens/adapters/sms"
	"github.com/rendau/sens/errs"
	"github.com/rendau/sens/logger/zap"
)

var _ sms.Sms = (*St)(nil)

func TestSend(t *testing.T) {
	ctx := context.Background()

	m := New(zap.NewNop(), true, "16001234")

	rep, err := m.Send(ctx, "010-1234-5678", "Your code is 4821")
	if err != nil {
		t.Fatal(err)
	}
	if rep.StatusCode != "202" || rep.StatusName != "success" || rep.RequestId == "" {
		t.Errorf("rep = %+v", rep)
	}

	reqs := m.PullAll()
	if len(reqs) != 1 {
		t.Fatalf("len(reqs) = %d, want 1", len(reqs))
	}
	if reqs[0].Messages[0].To != "01012345678" || reqs[0].From != "16001234" || reqs[0].Type != sms.TypeSms {
		t.Errorf("req = %+v", reqs[0])
	}

	if len(m.PullAll()) != 0 {
		t.Error("queue is not drained")
	}
}

func TestSendValidation(t *testing.T) {
	m := New(zap.NewNop(), true, "16001234")

	_, err := m.Send(context.Background(), "12345", "hi")
	if !errors.Is(err, errs.InvalidPhoneNumber) {
		t.Fatalf("err = %v, want %v", err, errs.InvalidPhoneNumber)
	}

	_, err = m.SendRequest(context.Background(), nil)
	if !errors.Is(err, errs.InvalidArguments) {
		t.Fatalf("err = %v, want %v", err, errs.InvalidArguments)
	}

	if len(m.PullAll()) != 0 {
		t.Error("rejected message was queued")
	}
}

func TestPullCode(t *testing.T) {
	tests := []struct {
		req  *sms.MessageRequestSt
		want int
	}{
		{
			req:  &sms.MessageRequestSt{Content: "code: 1234", Messages: []sms.MessageSt{{To: "01012345678"}}},
			want: 1234,
		},
		{
			req:  &sms.MessageRequestSt{Content: "default", Messages: []sms.MessageSt{{To: "01012345678", Content: "your code 9876"}}},
			want: 9876,
		},
		{
			req:  &sms.MessageRequestSt{Content: "no code here"},
			want: 0,
		},
	}
	for i, tt := range tests {
		t.Run("Case-"+strconv.Itoa(i+1), func(t *testing.T) {
			m := New(zap.NewNop(), true, "16001234")

			if _, err := m.SendRequest(context.Background(), tt.req); err != nil {
				t.Fatal(err)
			}

			if got := m.PullCode(); got != tt.want {
				t.Errorf("PullCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotTesting(t *testing.T) {
	m := New(zap.NewNop(), false, "16001234")

	if _, err := m.Send(context.Background(), "01012345678", "hi"); err != nil {
		t.Fatal(err)
	}

	if len(m.PullAll()) != 0 {
		t.Error("message queued in non-testing mode")
	}
}

func TestQueueLimit(t *testing.T) {
	ctx := context.Background()

	m := New(zap.NewNop(), true, "16001234")

	for i := 0; i < queueLimit; i++ {
		if _, err := m.Send(ctx, "01012345678", "hi"); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(m.PullAll()); n != queueLimit {
		t.Fatalf("len(PullAll()) = %d, want %d", n, queueLimit)
	}

	for i := 0; i < queueLimit+1; i++ {
		if _, err := m.Send(ctx, "01012345678", "msg "+strconv.Itoa(i)); err != nil {
			t.Fatal(err)
		}
	}

	reqs := m.PullAll()
	if len(reqs) != 1 {
		t.Fatalf("len(PullAll()) = %d, want 1 after overflow", len(reqs))
	}
	if reqs[0].Content != "msg "+strconv.Itoa(queueLimit) {
		t.Errorf("kept %q, want the newest message", reqs[0].Content)
	}
}
