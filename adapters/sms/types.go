package sms

type MessageType string

const (
	TypeSms MessageType = "SMS"
	TypeLms MessageType = "LMS"
)

type ContentType string

const (
	ContentTypeComm ContentType = "COMM"
	ContentTypeAd   ContentType = "AD"
)

type CredentialSt struct {
	ServiceId string
	SecretKey string
	AccessKey string
}

// MessageRequestSt is the request body of the send-message API.
// CountryCode defaults to "82" on the API side when omitted.
type MessageRequestSt struct {
	Type        MessageType `json:"type"`
	ContentType ContentType `json:"contentType,omitempty"`
	CountryCode string      `json:"countryCode,omitempty"`
	From        string      `json:"from"`
	Subject     string      `json:"subject,omitempty"`
	Content     string      `json:"content"`
	Messages    []MessageSt `json:"messages"`
}

// MessageSt is a single recipient. Subject and Content override the request defaults.
type MessageSt struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Content string `json:"content,omitempty"`
}

// SendRepSt acknowledges acceptance (status "202"), not delivery.
type SendRepSt struct {
	RequestId   string `json:"requestId"`
	RequestTime string `json:"requestTime"`
	StatusCode  string `json:"statusCode"`
	StatusName  string `json:"statusName"`
}
