package santasdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Secret Santa service. Every operation is
// unauthenticated; guest tokens travel in the path.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
