package session

import (
	"encoding/base64"
	"testing"
	"time"
)

func buildToken(t *testing.T, claims string) string {
	t.Helper()
	encode := func(segment string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(segment))
	}
	return encode(`{"alg":"HS256","typ":"JWT"}`) + "." + encode(claims) + "." + encode("signature")
}

func TestFromBearer_DecodesPrincipal(t *testing.T) {
	t.Parallel()

	token := buildToken(t, `{"sub":"admin_renca","exp":1767225600}`)

	sess, err := FromBearer(token)
	if err != nil {
		t.Fatalf("FromBearer: %v", err)
	}
	if sess.Username() != "admin_renca" {
		t.Fatalf("username = %q, want admin_renca", sess.Username())
	}
	if want := time.Unix(1767225600, 0); !sess.Principal.ExpiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want %v", sess.Principal.ExpiresAt, want)
	}
	if sess.Token != token {
		t.Fatal("session must keep the raw token for backend forwarding")
	}
}

func TestFromBearer_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "opaque-token"},
		{"two segments", "a.b"},
		{"bad base64", "a.!!!.c"},
		{"no subject", buildToken(t, `{"exp":1767225600}`)},
	}

	for _, tc := range cases {
		if _, err := FromBearer(tc.token); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestUsername_NilSessionIsEmpty(t *testing.T) {
	t.Parallel()

	var sess *Session
	if got := sess.Username(); got != "" {
		t.Fatalf("nil session username = %q, want empty", got)
	}
}
