package httpapi

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureHeader carries the gateway's HMAC-SHA512 hex digest of the raw
// request body.
const SignatureHeader = "x-nowpayments-sig"

// VerifySignature compares the header signature against an HMAC-SHA512 of
// the exact raw body in constant time.
func VerifySignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
