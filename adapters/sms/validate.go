package sms

import (
	"regexp"
	"strconv"

	"github.com/rendau/sens/errs"
)

const (
	MaxContentBytes = 2000
	LmsMinBytes     = 90
)

var (
	nonDigitRegexp = regexp.MustCompile(`[^0-9]`)
	phoneRegexp    = regexp.MustCompile(`^(010|8210)\d{8}$`)
)

func NormalizeReceiver(raw string) string {
	return nonDigitRegexp.ReplaceAllString(raw, "")
}

// ValidateReceiver returns the digits-only receiver if it is a korean mobile number.
func ValidateReceiver(raw string) (string, error) {
	receiver := NormalizeReceiver(raw)

	if !phoneRegexp.MatchString(receiver) {
		return "", errs.ErrWithDesc{
			Err:  errs.InvalidPhoneNumber,
			Desc: receiver + " is not a valid phone number format",
		}
	}

	return receiver, nil
}

func ContentByteLength(content string) int {
	return len(content)
}

func ClassifyContent(content string) (MessageType, error) {
	l := ContentByteLength(content)

	if l > MaxContentBytes {
		return "", errs.ErrWithDesc{
			Err:  errs.MessageTooLong,
			Desc: "max byte length is " + strconv.Itoa(MaxContentBytes) + ", got " + strconv.Itoa(l),
		}
	}

	if l >= LmsMinBytes {
		return TypeLms, nil
	}

	return TypeSms, nil
}

// NewShortRequest builds a single-recipient request, validating receiver and content.
func NewShortRequest(from, receiver, content string) (*MessageRequestSt, error) {
	to, err := ValidateReceiver(receiver)
	if err != nil {
		return nil, err
	}

	msgType, err := ClassifyContent(content)
	if err != nil {
		return nil, err
	}

	return &MessageRequestSt{
		Type:     msgType,
		From:     from,
		Content:  content,
		Messages: []MessageSt{{To: to}},
	}, nil
}
