package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"net/url"
	"sort"
	"strings"
)

// Package signature implements the canonicalization and HMAC scheme shared
// by the payment gateways. Each gateway signs a deterministic string built
// from its request/callback parameters; the two providers disagree on how
// that string is built, so Rules selects the convention:
//
//   - StyleSortedEncoded: keys sorted lexicographically (byte order),
//     URL-encoded key=value pairs joined by "&", empty values skipped.
//     This is the VNPay convention.
//   - StyleFixedOrder: raw key=value pairs joined by "&" in the exact order
//     given by Rules.FieldOrder. The order is part of the provider contract
//     and must match byte-for-byte. This is the MoMo convention.
//
// Everything here is pure: no I/O, no logging, no secrets retained.

type Style int

const (
	StyleSortedEncoded Style = iota
	StyleFixedOrder
)

// Rules describes how a provider canonicalizes its parameter set.
type Rules struct {
	Style Style
	// FieldOrder is required for StyleFixedOrder and ignored otherwise.
	FieldOrder []string
}

// Algorithm selects the HMAC hash function. Providers have changed
// algorithms before, so this is configuration, not a constant.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, &Error{Reason: fmt.Sprintf("unsupported algorithm %q", string(a))}
	}
}

// Error is the typed failure for canonicalization/signing problems. Callers
// must treat it as a signature failure, never as a reason to skip
// verification.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("signature: field %q: %s", e.Field, e.Reason)
	}
	return "signature: " + e.Reason
}

// Canonicalize converts params into the single string to be signed,
// following the provider convention in rules.
func Canonicalize(params map[string]string, rules Rules) (string, error) {
	switch rules.Style {
	case StyleSortedEncoded:
		return canonicalizeSorted(params)
	case StyleFixedOrder:
		return canonicalizeFixed(params, rules.FieldOrder)
	default:
		return "", &Error{Reason: fmt.Sprintf("unknown canonicalization style %d", rules.Style)}
	}
}

func canonicalizeSorted(params map[string]string) (string, error) {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", &Error{Reason: "no signable parameters"}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String(), nil
}

func canonicalizeFixed(params map[string]string, order []string) (string, error) {
	if len(order) == 0 {
		return "", &Error{Reason: "fixed-order canonicalization requires a field order"}
	}

	var b strings.Builder
	for i, k := range order {
		v, ok := params[k]
		if !ok {
			return "", &Error{Field: k, Reason: "missing required field"}
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String(), nil
}

// Sign computes the HMAC of canonical under secret and returns the
// lowercase hex digest.
func Sign(canonical, secret string, alg Algorithm) (string, error) {
	fn, err := alg.hashFunc()
	if err != nil {
		return "", err
	}
	mac := hmac.New(fn, []byte(secret))
	mac.Write([]byte(canonical))
	return fmt.Sprintf("%x", mac.Sum(nil)), nil
}

// Verify recomputes the signature and compares it to candidate in constant
// time. Plain string equality would leak a timing side channel, so the
// comparison goes through hmac.Equal. Any canonicalization or algorithm
// problem reports as a failed verification.
func Verify(candidate, canonical, secret string, alg Algorithm) bool {
	if candidate == "" {
		return false
	}
	expected, err := Sign(canonical, secret, alg)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(strings.ToLower(candidate)), []byte(expected))
}
