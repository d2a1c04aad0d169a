package sens

const (
	ApiHost = "https://sens.apigw.ntruss.com"

	HeaderAccessKey = "x-ncp-iam-access-key"
	HeaderTimestamp = "x-ncp-apigw-timestamp"
	HeaderSignature = "x-ncp-apigw-signature-v2"

	contentType = "application/json; charset=utf-8"
)
