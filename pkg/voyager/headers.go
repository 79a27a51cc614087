package voyager

import (
	"net/http"

	"github.com/lincli/lincli/pkg/voyager/cookies"
	"github.com/lincli/lincli/pkg/voyager/types"
)

const BrowserName = "Chrome"
const ChromeVersion = "118"
const ChromeVersionFull = ChromeVersion + ".0.5993.89"
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/" + ChromeVersion + ".0.0.0 Safari/537.36"
const SecCHUserAgent = `"Chromium";v="` + ChromeVersion + `", "Google Chrome";v="` + ChromeVersion + `", "Not-A.Brand";v="99"`
const SecCHFullVersionList = `"Chromium";v="` + ChromeVersionFull + `", "Google Chrome";v="` + ChromeVersionFull + `", "Not-A.Brand";v="99.0.0.0"`
const OSName = "Linux"
const SecCHPlatform = `"` + OSName + `"`
const SecCHMobile = "?0"
const SecCHPrefersColorScheme = "light"

const RestliProtocolVersion = "2.0.0"
const XLiLang = "en_US"

// XLiTrack is sent verbatim on every Voyager request. The timezone is fixed
// on purpose: requests must look the same regardless of operator locale.
const XLiTrack = `{"clientVersion":"1.13.8031","mpVersion":"1.13.8031","osName":"web","timezoneOffset":2,"timezone":"Europe/Stockholm","deviceFormFactor":"DESKTOP","mpName":"voyager-web","displayDensity":1.125,"displayWidth":2560.5,"displayHeight":1440}`

var defaultConstantHeaders = http.Header{
	"accept":                      []string{"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"},
	"accept-language":             []string{"en-US,en;q=0.9"},
	"user-agent":                  []string{UserAgent},
	"sec-ch-ua":                   []string{SecCHUserAgent},
	"sec-ch-ua-platform":          []string{SecCHPlatform},
	"sec-ch-prefers-color-scheme": []string{SecCHPrefersColorScheme},
	"sec-ch-ua-full-version-list": []string{SecCHFullVersionList},
	"sec-ch-ua-mobile":            []string{SecCHMobile},
}

// buildHeaders is a pure function of the credentials and opts: only the
// cookie header and csrf token vary with input, everything else is constant.
func buildHeaders(creds *cookies.Credentials, opts types.HeaderOpts) http.Header {
	extra := make(map[string]string, len(opts.Extra)+6)
	for k, v := range opts.Extra {
		extra[k] = v
	}

	headers := defaultConstantHeaders.Clone()
	if opts.WithCookies {
		extra["cookie"] = creds.CookieString()
	}

	if opts.WithCsrfToken {
		extra["csrf-token"] = creds.CsrfToken()
	}

	if opts.Origin != "" {
		extra["origin"] = opts.Origin
	}

	if opts.WithXLiTrack {
		extra["x-li-track"] = XLiTrack
	}

	if opts.WithXLiLang {
		extra["x-li-lang"] = XLiLang
	}

	if opts.WithXLiProtocolVer {
		extra["x-restli-protocol-version"] = RestliProtocolVersion
	}

	if opts.Referer != "" {
		extra["referer"] = opts.Referer
	}

	for k, v := range extra {
		headers.Set(k, v)
	}

	return headers
}
