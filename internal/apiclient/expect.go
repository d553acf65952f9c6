package apiclient

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Matcher checks one field extracted from a response body.
type Matcher struct {
	Desc  string
	Match func(gjson.Result) bool
}

func Exists() Matcher {
	return Matcher{
		Desc:  "exists",
		Match: func(v gjson.Result) bool { return v.Exists() },
	}
}

func NonEmpty() Matcher {
	return Matcher{
		Desc: "is non-empty",
		Match: func(v gjson.Result) bool {
			if v.IsArray() {
				return len(v.Array()) > 0
			}
			return v.Exists() && v.String() != ""
		},
	}
}

func IntAtLeast(min int64) Matcher {
	return Matcher{
		Desc:  fmt.Sprintf("is an int >= %d", min),
		Match: func(v gjson.Result) bool { return v.Exists() && v.Int() >= min },
	}
}

func IntEquals(want int64) Matcher {
	return Matcher{
		Desc:  fmt.Sprintf("equals %d", want),
		Match: func(v gjson.Result) bool { return v.Exists() && v.Int() == want },
	}
}

func FloatBetween(lo, hi float64) Matcher {
	return Matcher{
		Desc: fmt.Sprintf("is within [%.2f, %.2f]", lo, hi),
		Match: func(v gjson.Result) bool {
			f := v.Float()
			return v.Exists() && f >= lo && f <= hi
		},
	}
}

func StringContains(sub string) Matcher {
	return Matcher{
		Desc: fmt.Sprintf("contains %q (case-insensitive)", sub),
		Match: func(v gjson.Result) bool {
			return strings.Contains(strings.ToLower(v.String()), strings.ToLower(sub))
		},
	}
}

// ExpectStatus reports an error when the response status differs from code.
func (r *Response) ExpectStatus(code int) error {
	if r.Status != code {
		return fmt.Errorf("expected status %d, got %d (body: %s)", code, r.Status, truncate(r.Body, 200))
	}
	return nil
}

// ExpectField reports an error when the value at the gjson path fails the
// matcher.
func (r *Response) ExpectField(path string, m Matcher) error {
	v := r.Field(path)
	if !m.Match(v) {
		return fmt.Errorf("field %q %s: got %s", path, m.Desc, v.Raw)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
