// Package format holds the small text helpers shared by the bot and the
// HTTP handlers for rendering currency amounts and on-chain addresses.
package format

import (
	"fmt"
	"strings"
)

// USD renders an amount as a grouped dollar string, e.g. $1,851,370.43.
// A nil amount renders as N/A so callers can pass optional fields
// straight through.
func USD(amount *float64) string {
	if amount == nil {
		return "N/A"
	}
	return "$" + group(fmt.Sprintf("%.2f", *amount))
}

// SignedPct renders a percentage with an explicit sign, e.g. +2.31% or
// -13.22%. Nil renders as N/A.
func SignedPct(pct *float64) string {
	if pct == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", *pct)
}

// ShortAddr abbreviates an on-chain address to its first six and last
// four characters. Addresses too short to abbreviate pass through
// unchanged.
func ShortAddr(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// group inserts thousands separators into the integer part of a fixed
// decimal string, preserving a leading minus sign.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + fracPart
}
