package helpers

import (
	"net/http"
	"net/url"
	"strings"
)

const tagQueryPrefix = "tag="

// ExtractTag returns the tag filter of a GET request whose raw query starts
// with "tag=". The remainder of the query is returned as is: it is neither
// decoded nor split, so "?tag=a%20b&page=2" yields "a%20b&page=2".
// Any other request, or one whose URI cannot be parsed, has no filter.
func ExtractTag(r *http.Request) string {
	if r == nil || r.Method != http.MethodGet {
		return ""
	}
	raw := r.RequestURI
	if raw == "" {
		if r.URL == nil {
			return ""
		}
		raw = r.URL.RequestURI()
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(u.RawQuery, tagQueryPrefix) {
		return ""
	}
	return u.RawQuery[len(tagQueryPrefix):]
}
