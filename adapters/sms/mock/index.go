package mock

import (
	"context"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rendau/sens/adapters/sms"
	"github.com/rendau/sens/errs"
	"github.com/rendau/sens/logger"
)

const queueLimit = 100

type St struct {
	lg            logger.Lite
	testing       bool
	callingNumber string

	q  []*sms.MessageRequestSt
	mu sync.Mutex

	smsCodeRegexp *regexp.Regexp
}

func New(lg logger.Lite, testing bool, callingNumber string) *St {
	return &St{
		lg:            lg,
		testing:       testing,
		callingNumber: callingNumber,
		q:             make([]*sms.MessageRequestSt, 0),
		smsCodeRegexp: regexp.MustCompile(`([0-9]{4})`),
	}
}

func (m *St) Send(ctx context.Context, receiver, content string) (*sms.SendRepSt, error) {
	req, err := sms.NewShortRequest(m.callingNumber, receiver, content)
	if err != nil {
		return nil, err
	}

	return m.SendRequest(ctx, req)
}

func (m *St) SendRequest(_ context.Context, req *sms.MessageRequestSt) (*sms.SendRepSt, error) {
	if req == nil {
		return nil, errs.ErrWithDesc{Err: errs.InvalidArguments, Desc: "nil request"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.testing {
		m.lg.Infow("Sms sent", "type", req.Type, "messages", req.Messages, "content", req.Content)
	} else {
		if len(m.q) >= queueLimit {
			m.q = make([]*sms.MessageRequestSt, 0)
		}

		m.q = append(m.q, req)
	}

	return &sms.SendRepSt{
		RequestId:   uuid.NewString(),
		RequestTime: time.Now().Format("2006-01-02T15:04:05.000"),
		StatusCode:  "202",
		StatusName:  "success",
	}, nil
}

func (m *St) PullAll() []*sms.MessageRequestSt {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]*sms.MessageRequestSt, 0)

	return q
}

// PullCode drains the queue and returns the first 4-digit code of the first message, or 0.
func (m *St) PullCode() int {
	reqs := m.PullAll()
	if len(reqs) < 1 {
		return 0
	}

	content := reqs[0].Content
	if len(reqs[0].Messages) > 0 && reqs[0].Messages[0].Content != "" {
		content = reqs[0].Messages[0].Content
	}

	matches := m.smsCodeRegexp.FindStringSubmatch(content)
	if len(matches) == 2 {
		code, _ := strconv.Atoi(matches[1])
		return code
	}

	return 0
}

func (m *St) Clean() {
	_ = m.PullAll()
}
