package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// OwnerStatus discriminates the outcome of an owner lookup.
type OwnerStatus int

const (
	OwnerFound OwnerStatus = iota
	OwnerNotFound
	OwnerUnavailable
)

func (s OwnerStatus) String() string {
	switch s {
	case OwnerFound:
		return "found"
	case OwnerNotFound:
		return "not_found"
	default:
		return "unavailable"
	}
}

// Owner is the subset of the CRM owner record used for display.
type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OwnerLookup is the result of GetOwner. Owner is only meaningful when Status
// is OwnerFound; Reason describes why it is not.
type OwnerLookup struct {
	Status     OwnerStatus
	Owner      Owner
	StatusCode int
	Reason     string
}

// Client defines the interface for interacting with the HubSpot CRM API
type Client interface {
	GetOwner(ctx context.Context, ownerID string) (OwnerLookup, error)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new HubSpot client. An empty baseURL selects the public
// API host and a nil httpClient selects http.DefaultClient.
func NewClient(apiKey, baseURL string, httpClient *http.Client) Client {
	if baseURL == "" {
		baseURL = "https://api.hubapi.com"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetOwner fetches /crm/v3/owners/{ownerID}. Only request construction
// failures are returned as errors; every remote failure is reported through
// OwnerLookup so callers can degrade.
func (c *clientImpl) GetOwner(ctx context.Context, ownerID string) (OwnerLookup, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return OwnerLookup{Status: OwnerNotFound, Reason: "no owner assigned"}, nil
	}

	endpoint := fmt.Sprintf("%s/crm/v3/owners/%s", c.baseURL, url.PathEscape(ownerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return OwnerLookup{}, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication header
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return OwnerLookup{Status: OwnerUnavailable, Reason: fmt.Sprintf("error calling HubSpot: %v", err)}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return OwnerLookup{Status: OwnerUnavailable, StatusCode: resp.StatusCode, Reason: fmt.Sprintf("error reading response: %v", err)}, nil
	}

	return classifyOwnerResponse(resp.StatusCode, body), nil
}

// ownerEnvelope carries both the owner record and the fields of the API
// error envelope.
type ownerEnvelope struct {
	Owner
	Status   string `json:"status"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

func classifyOwnerResponse(statusCode int, body []byte) OwnerLookup {
	lookup := OwnerLookup{StatusCode: statusCode}

	var env ownerEnvelope
	decodeErr := json.Unmarshal(body, &env)

	switch {
	case statusCode == http.StatusNotFound:
		lookup.Status = OwnerNotFound
		lookup.Reason = errorReason(env, body)
		return lookup
	case statusCode < 200 || statusCode >= 300:
		lookup.Status = OwnerUnavailable
		lookup.Reason = fmt.Sprintf("HubSpot returned %d: %s", statusCode, errorReason(env, body))
		return lookup
	case decodeErr != nil:
		lookup.Status = OwnerUnavailable
		lookup.Reason = fmt.Sprintf("error parsing response: %v", decodeErr)
		return lookup
	case strings.EqualFold(env.Status, "error") || env.Category != "":
		lookup.Status = OwnerUnavailable
		lookup.Reason = errorReason(env, body)
		return lookup
	case env.FirstName == "" && env.LastName == "" && env.Email == "":
		lookup.Status = OwnerNotFound
		lookup.Reason = "owner record has no name or email"
		return lookup
	}

	lookup.Status = OwnerFound
	lookup.Owner = env.Owner
	return lookup
}

func errorReason(env ownerEnvelope, body []byte) string {
	if env.Message != "" {
		return env.Message
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
