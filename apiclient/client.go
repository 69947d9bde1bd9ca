package apiclient

import (
	"net/http"

	"github.com/google/uuid"
)

// DefaultAPIVersion is used when Config.APIVersion is empty.
const DefaultAPIVersion = "1"

// Config holds the static configuration of a Client. It is read once
// by New and never mutated afterwards.
type Config struct {
	// Scheme must be exactly "http" or "https".
	Scheme string `yaml:"scheme"`

	// Host is the platform API host, with optional port.
	Host string `yaml:"host"`

	// AppID and AppSecret identify the application. When both are set,
	// the default bearer token appID_appSecret is derived; when either
	// is absent, calls carry no Authorization header unless a per-call
	// token is supplied.
	AppID     string `yaml:"app_id"`
	AppSecret string `yaml:"app_secret"`

	// APIVersion selects the vendor media type version. Defaults to
	// DefaultAPIVersion.
	APIVersion string `yaml:"api_version"`

	// HTTPClient overrides the HTTP client used for calls. When nil,
	// http.DefaultClient is used. Configure it for custom TLS, proxy,
	// and timeout settings.
	HTTPClient *http.Client `yaml:"-"`

	// RequestIDFunc overrides generation of the X-Request-ID header
	// attached to every call. Defaults to a UUID v4 per call.
	RequestIDFunc func() string `yaml:"-"`
}

// Client issues REST calls against the netgrid platform. All fields
// are set at construction and read-only afterwards, so a Client is
// safe for concurrent use by any number of in-flight calls.
type Client struct {
	scheme      string
	host        string
	accept      string
	bearerToken string

	httpClient *http.Client
	requestID  func() string
}

// New validates cfg and creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Scheme != "http" && cfg.Scheme != "https" {
		return nil, ErrInvalidScheme
	}

	if cfg.Host == "" {
		return nil, ErrNoHost
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	var bearerToken string
	if cfg.AppID != "" && cfg.AppSecret != "" {
		bearerToken = cfg.AppID + "_" + cfg.AppSecret
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	requestID := cfg.RequestIDFunc
	if requestID == nil {
		requestID = uuid.NewString
	}

	return &Client{
		scheme:      cfg.Scheme,
		host:        cfg.Host,
		accept:      "application/vnd.netgrid.api-v" + version + "+json",
		bearerToken: bearerToken,
		httpClient:  httpClient,
		requestID:   requestID,
	}, nil
}

// CallOptions overrides client defaults for a single call. It does not
// persist beyond that call.
type CallOptions struct {
	// Accept overrides the default vendor media type.
	Accept string

	// AccessToken overrides the client's derived bearer token.
	AccessToken string

	// ContentType overrides the default content type of the request
	// body.
	ContentType string
}
