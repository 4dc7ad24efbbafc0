//go:build unit || e2e

package testutil

import (
	"net/url"
)

// returns a copy of base with each mutation applied
func QueryMap(base url.Values, muts ...func(url.Values)) url.Values {
	q := make(url.Values, len(base))
	for k, v := range base {
		q[k] = append([]string(nil), v...)
	}
	for _, f := range muts {
		f(q)
	}
	return q
}
