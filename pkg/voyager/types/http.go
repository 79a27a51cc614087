package types

type ContentType string

const (
	ContentTypeNone                   ContentType = ""
	ContentTypeJSON                   ContentType = "application/json"
	ContentTypeJSONPlaintextUTF8      ContentType = "application/json; charset=UTF-8"
	ContentTypeJSONLinkedInNormalized ContentType = "application/vnd.linkedin.normalized+json+2.1"
	ContentTypeForm                   ContentType = "application/x-www-form-urlencoded"
	ContentTypePlaintextUTF8          ContentType = "text/plain;charset=UTF-8"
)

type HeaderOpts struct {
	WithCookies        bool
	WithCsrfToken      bool
	WithXLiTrack       bool
	WithXLiProtocolVer bool
	WithXLiLang        bool
	Referer            string
	Origin             string
	Extra              map[string]string
}
