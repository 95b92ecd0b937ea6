package clinic

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// RestClient is the shared transport for all clinic backend resources. One
// rate limiter spans every resource so the backend sees a single client.
type RestClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewRestClient(clinicConfig *config.Clinic) *RestClient {
	return &RestClient{
		baseURL:  clinicConfig.BaseUrl,
		apiToken: clinicConfig.APIToken,
		httpClient: &http.Client{
			Timeout: time.Duration(clinicConfig.RequestTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(
			rate.Limit(clinicConfig.OutboundRequestsPerSec),
			clinicConfig.OutboundRequestsBurstCap,
		),
	}
}

func (c *RestClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.apiToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

// backendMessage extracts the backend's error envelope from a non-2xx body.
// The raw body stands in when the envelope does not parse.
func backendMessage(body io.Reader) string {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return ""
	}

	var clinicErr responses.ClinicError
	if err := json.Unmarshal(bodyBytes, &clinicErr); err != nil || clinicErr.Message == "" {
		return string(bodyBytes)
	}
	return clinicErr.Message
}
