//go:build unit || e2e

package testutil

import (
	"fmt"
	"net/url"
)

// a helper function for dynamically modifying query fields in tests
func Field(key string, value any) func(q url.Values) {
	return func(q url.Values) {
		if value == nil {
			q.Del(key)
		} else {
			q.Set(key, fmt.Sprint(value))
		}
	}
}
