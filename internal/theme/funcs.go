package theme

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"gitlab.com/golang-commonmark/markdown"
	"golang.org/x/net/html"

	"tagtheme/internal/domain"
)

// JustNow is returned by RelativeTime for anything at most one second old.
const JustNow = "Just now"

var timeUnits = []struct {
	seconds int64
	name    string
}{
	{31104000, "year"},
	{2592000, "month"},
	{604800, "week"},
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// RelativeTime formats the time elapsed between t and now, e.g. "3 days ago".
// Future times are reported as JustNow.
func RelativeTime(t, now time.Time) string {
	elapsed := now.Unix() - t.Unix()
	if elapsed <= 1 {
		return JustNow
	}
	for _, u := range timeUnits {
		q := float64(elapsed) / float64(u.seconds)
		if q >= 1 {
			n := int(math.Round(q))
			return fmt.Sprintf("%d %s ago", n, Pluralise(n, u.name, ""))
		}
	}
	return JustNow
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate interprets v as a point in time. Integers and numeric strings are
// Unix seconds; other strings are parsed as date literals in loc.
func ParseDate(v any, loc *time.Location) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case int:
		return time.Unix(int64(d), 0).In(loc), nil
	case int64:
		return time.Unix(d, 0).In(loc), nil
	case float64:
		return time.Unix(int64(d), 0).In(loc), nil
	case string:
		s := strings.TrimSpace(d)
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(secs, 0).In(loc), nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised date %q", d)
	}
	return time.Time{}, fmt.Errorf("unsupported date type %T", v)
}

// RelativeTimeIn parses v with ParseDate and formats it relative to now in loc.
func RelativeTimeIn(v any, loc *time.Location, now time.Time) (string, error) {
	t, err := ParseDate(v, loc)
	if err != nil {
		return "", err
	}
	return RelativeTime(t, now.In(loc)), nil
}

// Pluralise returns str when amount is exactly 1, otherwise str with alt
// appended ("s" when alt is empty).
func Pluralise(amount int, str, alt string) string {
	if amount == 1 {
		return str
	}
	if alt == "" {
		alt = "s"
	}
	return str + alt
}

// Numeral returns n with its English ordinal suffix: 1st, 2nd, 3rd, 11th.
func Numeral(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	suffix := "th"
	if mod100 := abs % 100; mod100 < 4 || mod100 > 20 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// CountWords counts whitespace separated words in the text content of an HTML fragment.
func CountWords(fragment string) int {
	z := html.NewTokenizer(strings.NewReader(fragment))
	count := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way the count so far stands
			return count
		case html.TextToken:
			count += len(strings.Fields(string(z.Text())))
		}
	}
}

var md = markdown.New(markdown.XHTMLOutput(true), markdown.Tables(true), markdown.Linkify(true))

// Markdown renders a post body to HTML.
func Markdown(src string) template.HTML {
	return template.HTML(md.RenderToString([]byte(src)))
}

// Shade returns the lightness percentage for the i-th headline row of a page
// holding perPage posts, from 20 up to 40.
func Shade(i, perPage int) int {
	if perPage <= 0 {
		perPage = 1
	}
	return int(math.Round(float64(i)/float64(perPage)*20 + 20))
}

// TwitterAccount returns the site's twitter handle from the "twitter" meta key.
func TwitterAccount(site domain.SiteMeta) string {
	return site.Value("twitter", "")
}

// TwitterURL returns the profile URL of the site's twitter account.
func TwitterURL(site domain.SiteMeta) string {
	return "https://twitter.com/" + TwitterAccount(site)
}
