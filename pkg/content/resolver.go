package content

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	dqLinkRe = regexp.MustCompile(`(href|src)="(/[^"]+)"`)
	sqLinkRe = regexp.MustCompile(`(href|src)='(/[^']+)'`)
)

// Absolutize rewrites root-relative href and src attribute values of the html fragment
// into absolute urls joined against base. Values not starting with "/" are left untouched.
func Absolutize(fragment, base string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return fragment
	}
	fragment = rewriteAttrs(dqLinkRe, fragment, baseURL, `"`)
	return rewriteAttrs(sqLinkRe, fragment, baseURL, `'`)
}

// ResolveURL joins a root-relative ref against base, any other ref is returned as is
func ResolveURL(base, ref string) string {
	if !strings.HasPrefix(ref, "/") {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return resolve(baseURL, ref)
}

func rewriteAttrs(re *regexp.Regexp, fragment string, base *url.URL, quote string) string {
	return re.ReplaceAllStringFunc(fragment, func(m string) string {
		sub := re.FindStringSubmatch(m)
		return sub[1] + "=" + quote + resolve(base, sub[2]) + quote
	})
}

// resolve joins root-relative ref to the scheme and host of base as raw text, so the path
// keeps its original encoding. Protocol-relative refs take the scheme of base.
func resolve(base *url.URL, ref string) string {
	if strings.HasPrefix(ref, "//") {
		return base.Scheme + ":" + ref
	}
	return base.Scheme + "://" + base.Host + ref
}
