package voyager

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"

	"github.com/lincli/lincli/pkg/voyager/cookies"
	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/types"
)

// Encodable is implemented by the typed query and payload structs under
// routing/query and routing/payload.
type Encodable interface {
	Encode() ([]byte, error)
}

type ClientOpts struct {
	Credentials *cookies.Credentials

	// BaseURL overrides the production Voyager host, for tests.
	BaseURL string
}

// Client owns the session credentials and issues browser-authentic requests
// against Voyager. It is not safe for concurrent reuse across unrelated
// commands; each command runs its requests sequentially.
type Client struct {
	Logger     zerolog.Logger
	creds      *cookies.Credentials
	baseURL    string
	http       *http.Client
	httpProxy  func(*http.Request) (*url.URL, error)
	socksProxy proxy.Dialer
}

func NewClient(opts *ClientOpts, logger zerolog.Logger) *Client {
	cli := Client{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 40 * time.Second,
				ForceAttemptHTTP2:     true,
			},
			Timeout: 60 * time.Second,
		},
		Logger:  logger,
		creds:   opts.Credentials,
		baseURL: routing.BaseURL,
	}

	if opts.BaseURL != "" {
		cli.baseURL = opts.BaseURL
	}

	return &cli
}

// MakeRequest issues one HTTP request and reads the body. It does not inspect
// status codes; that belongs to MakeEndpointRequest.
func (c *Client) MakeRequest(requestURL string, method string, headers http.Header, payload []byte, contentType types.ContentType) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header = headers
	if contentType != types.ContentTypeNone {
		req.Header.Set("content-type", string(contentType))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	return resp, respBody, nil
}

// MakeEndpointRequest composes base URL, path table entry, built headers and
// optional query/payload, then maps non-2xx statuses to *APIError. Transport
// failures propagate unchanged; there are no retries.
func (c *Client) MakeEndpointRequest(endpoint routing.Endpoint, params map[string]string, queryData Encodable, payloadData Encodable) (*http.Response, []byte, error) {
	definition, ok := routing.RequestStoreDefinition[endpoint]
	if !ok {
		return nil, nil, fmt.Errorf("no request definition for endpoint %q", endpoint)
	}

	path, err := routing.BuildPath(endpoint, params)
	if err != nil {
		return nil, nil, err
	}

	requestURL := c.baseURL + path
	if queryData != nil {
		encodedQuery, err := queryData.Encode()
		if err != nil {
			return nil, nil, err
		}
		requestURL = fmt.Sprintf("%s?%s", requestURL, string(encodedQuery))
	}

	var payload []byte
	if payloadData != nil {
		payload, err = payloadData.Encode()
		if err != nil {
			return nil, nil, err
		}
	}

	headers := buildHeaders(c.creds, definition.HeaderOpts)
	resp, respBody, err := c.MakeRequest(requestURL, definition.Method, headers, payload, definition.ContentType)
	if err != nil {
		return resp, respBody, err
	}

	c.Logger.Debug().
		Str("path", path).
		Str("method", definition.Method).
		Int("status", resp.StatusCode).
		Msg("Voyager request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, respBody, &APIError{StatusCode: resp.StatusCode, Path: path}
	}

	return resp, respBody, nil
}

func (c *Client) SetProxy(proxyAddr string) error {
	proxyParsed, err := url.Parse(proxyAddr)
	if err != nil {
		return err
	}

	if proxyParsed.Scheme == "http" || proxyParsed.Scheme == "https" {
		c.httpProxy = http.ProxyURL(proxyParsed)
		c.http.Transport.(*http.Transport).Proxy = c.httpProxy
	} else if proxyParsed.Scheme == "socks5" {
		c.socksProxy, err = proxy.FromURL(proxyParsed, &net.Dialer{Timeout: 20 * time.Second})
		if err != nil {
			return err
		}
		c.http.Transport.(*http.Transport).DialContext = func(ctx context.Context, network string, addr string) (net.Conn, error) {
			return c.socksProxy.Dial(network, addr)
		}
		contextDialer, ok := c.socksProxy.(proxy.ContextDialer)
		if ok {
			c.http.Transport.(*http.Transport).DialContext = contextDialer.DialContext
		}
	}

	c.Logger.Debug().
		Str("scheme", proxyParsed.Scheme).
		Str("host", proxyParsed.Host).
		Msg("Using proxy")
	return nil
}
