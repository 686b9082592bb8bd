// Package slug derives URL-safe identifiers from free-text titles.
//
// Make is deterministic: it lower-cases the input, collapses every run of
// characters outside [a-z0-9] into a single hyphen and trims hyphens from both
// ends. Non-ASCII characters are dropped rather than transliterated.
//
//	slug.Make("Senior Go Engineer (Remote)") // "senior-go-engineer-remote"
//
// Unique probes base, base-1, base-2, ... until the caller's exists function
// reports a free candidate. Callers that need uniqueness under concurrency
// must still back the slug with a storage-level unique constraint and retry.
package slug

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// ErrProbeLimit is returned when Unique gives up before finding a free slug.
var ErrProbeLimit = errors.New("slug: probe limit reached")

// MaxProbes bounds the number of candidates Unique will try.
const MaxProbes = 10000

// Make returns the slug for title.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for i := 0; i < len(title); i++ {
		c := title[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// Candidate returns the n-th probe for base: base itself for n == 0,
// otherwise base-n.
func Candidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// Unique returns the first candidate for base that exists reports as free.
func Unique(ctx context.Context, base string, exists func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	for n := 0; n < MaxProbes; n++ {
		candidate := Candidate(base, n)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrProbeLimit
}
