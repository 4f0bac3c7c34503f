// Package oauth1 signs requests with OAuth 1.0a HMAC-SHA1, which is the
// only signature method the Instapaper Full API accepts. It covers just
// what the client needs: form-encoded POSTs, with or without a token.
package oauth1

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Token holds an access token and its secret.
type Token struct {
	Key    string
	Secret string
}

// Signer produces Authorization header values for signed requests.
type Signer struct {
	ConsumerKey    string
	ConsumerSecret string

	// Now and Nonce exist so tests can pin the signature inputs.
	Now   func() time.Time
	Nonce func() (string, error)
}

func NewSigner(consumerKey, consumerSecret string) *Signer {
	return &Signer{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Now:            time.Now,
		Nonce:          randomNonce,
	}
}

// AuthorizationHeader signs a request and returns the value for the
// Authorization header. form must contain the request's body parameters
// (they are part of the signature base for form-encoded POSTs). token may
// be nil for the xAuth access-token request itself.
func (s *Signer) AuthorizationHeader(method, rawURL string, form url.Values, token *Token) (string, error) {
	if s.ConsumerKey == "" || s.ConsumerSecret == "" {
		return "", errors.New("oauth1: consumer credentials not set")
	}

	nonce, err := s.Nonce()
	if err != nil {
		return "", err
	}

	params := map[string]string{
		"oauth_consumer_key":     s.ConsumerKey,
		"oauth_nonce":            nonce,
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        fmt.Sprintf("%d", s.Now().Unix()),
		"oauth_version":          "1.0",
	}
	if token != nil && token.Key != "" {
		params["oauth_token"] = token.Key
	}

	base, err := signatureBase(method, rawURL, params, form)
	if err != nil {
		return "", err
	}

	key := percentEncode(s.ConsumerSecret) + "&"
	if token != nil {
		key += percentEncode(token.Secret)
	}
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	params["oauth_signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"=\""+percentEncode(params[k])+"\"")
	}
	return "OAuth " + strings.Join(parts, ", "), nil
}

// signatureBase builds the OAuth 1.0 signature base string: uppercase
// method, the normalized URL, and the sorted, encoded parameter string.
func signatureBase(method, rawURL string, oauthParams map[string]string, form url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("oauth1: invalid request URL %q", rawURL)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	normalized := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + path

	type kv struct{ k, v string }
	pairs := make([]kv, 0, len(oauthParams)+len(form))
	for k, v := range oauthParams {
		pairs = append(pairs, kv{percentEncode(k), percentEncode(v)})
	}
	for k, vs := range form {
		for _, v := range vs {
			pairs = append(pairs, kv{percentEncode(k), percentEncode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k == pairs[j].k {
			return pairs[i].v < pairs[j].v
		}
		return pairs[i].k < pairs[j].k
	})

	encoded := make([]string, 0, len(pairs))
	for _, p := range pairs {
		encoded = append(encoded, p.k+"="+p.v)
	}
	paramString := strings.Join(encoded, "&")

	return strings.ToUpper(method) + "&" + percentEncode(normalized) + "&" + percentEncode(paramString), nil
}

func randomNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// percentEncode applies RFC 3986 encoding. Unreserved characters
// (ALPHA / DIGIT / "-" / "." / "_" / "~") pass through unchanged; OAuth
// base strings require exactly this encoding, not url.QueryEscape's.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '.' || c == '_' || c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
