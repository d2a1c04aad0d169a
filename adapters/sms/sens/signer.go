package sens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/rendau/sens/adapters/sms"
)

// Sign returns base64(hmac-sha256(secretKey, "METHOD PATH\nTIMESTAMP\nACCESS_KEY")).
func Sign(method, path, timestamp, secretKey, accessKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(method + " " + path + "\n" + timestamp + "\n" + accessKey))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func SignHeaders(method, path string, now time.Time, cred sms.CredentialSt) http.Header {
	ts := Timestamp(now)

	h := http.Header{}
	h.Set(HeaderAccessKey, cred.AccessKey)
	h.Set(HeaderTimestamp, ts)
	h.Set(HeaderSignature, Sign(method, path, ts, cred.SecretKey, cred.AccessKey))

	return h
}
