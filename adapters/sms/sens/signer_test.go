package sens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
	"time"

	"github.com/rendau/sens/adapters/sms"
)

func TestSign(t *testing.T) {
	const (
		path      = "/sms/v2/services/ncp:sms:kr:123:svc/messages"
		timestamp = "1700000000000"
		secretKey = "SECRETKEY"
		accessKey = "ACCESSKEY"
	)

	got := Sign("POST", path, timestamp, secretKey, accessKey)

	if want := "qryO7wLonumf6MUI8Hv6m/Va7jFH1zwkJPHvU7fmoLk="; got != want {
		t.Errorf("Sign() = %v, want %v", got, want)
	}

	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte("POST " + path + "\n" + timestamp + "\n" + accessKey))
	if want := base64.StdEncoding.EncodeToString(h.Sum(nil)); got != want {
		t.Errorf("Sign() = %v, independently computed %v", got, want)
	}

	if again := Sign("POST", path, timestamp, secretKey, accessKey); again != got {
		t.Errorf("Sign() is not deterministic: %v != %v", again, got)
	}

	if other := Sign("POST", path, "1700000000001", secretKey, accessKey); other == got {
		t.Error("Sign() ignores timestamp")
	}
}

func TestSignHeaders(t *testing.T) {
	cred := sms.CredentialSt{
		ServiceId: "ncp:sms:kr:123:svc",
		SecretKey: "SECRETKEY",
		AccessKey: "ACCESSKEY",
	}

	h := SignHeaders("POST", "/sms/v2/services/ncp:sms:kr:123:svc/messages", time.UnixMilli(1700000000000), cred)

	if got := h.Get(HeaderAccessKey); got != "ACCESSKEY" {
		t.Errorf("%s = %q", HeaderAccessKey, got)
	}
	if got := h.Get(HeaderTimestamp); got != "1700000000000" {
		t.Errorf("%s = %q", HeaderTimestamp, got)
	}
	if got := h.Get(HeaderSignature); got != "qryO7wLonumf6MUI8Hv6m/Va7jFH1zwkJPHvU7fmoLk=" {
		t.Errorf("%s = %q", HeaderSignature, got)
	}
}
