package aivis

import (
	"net/url"
	"strings"
	"unicode"
)

// CompanyNameFromURL derives a best-effort company name from a website URL:
// the first label of the domain, with a leading "www." removed and the
// first letter capitalized. It returns "Company" when the URL yields no
// usable domain.
func CompanyNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Company"
	}
	host := parsed.Hostname()
	if host == "" {
		return "Company"
	}
	host = strings.TrimPrefix(host, "www.")
	name, _, _ := strings.Cut(host, ".")
	if name == "" {
		return "Company"
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
