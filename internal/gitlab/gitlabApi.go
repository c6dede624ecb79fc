package gitlab

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	logger "labclone/internal/log"
)

// PerPage is the fixed listing page size.
const PerPage = 100

// Listing requests get a generous fixed timeout; past it the request
// fails and discovery treats that as fatal.
const requestTimeout = 120 * time.Second

/*
	APIClient manages access to the GitLab REST API.

It sits at the boundary to external data; all methods are synchronous,
channels and pipes are handled elsewhere.
*/
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPIClient(token, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (labApi *APIClient) url() string {
	return fmt.Sprintf("%s/api/v4", labApi.baseURL)
}

// ListProjects fetches one page of visible projects ordered by
// ascending id, with idAfter as the exclusive lower bound (zero for
// the first page). Idempotent for a given idAfter.
func (labApi *APIClient) ListProjects(idAfter uint64) ([]Project, error) {
	url := fmt.Sprintf("%s/projects?statistics=false&with_custom_attributes=false&all_available=true&order_by=id&sort=asc&pagination=keyset&per_page=%d&id_after=%d",
		labApi.url(), PerPage, idAfter)
	return gitlabGet[[]Project](labApi, url)
}

func gitlabGet[T any](labApi *APIClient, url string) (T, error) {
	var emptyResult T
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return emptyResult, err
	}
	if labApi.token != "" {
		req.Header.Set("PRIVATE-TOKEN", labApi.token)
	}

	resp, err := labApi.client.Do(req)
	if err != nil {
		return emptyResult, fmt.Errorf("GitLab API request on %s failed: %w", url, err)
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Errorf("Failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return emptyResult, fmt.Errorf("GitLab API request on %s failed with status: %s", url, resp.Status)
	}

	var decodedResult T
	if err := json.NewDecoder(resp.Body).Decode(&decodedResult); err != nil {
		return emptyResult, fmt.Errorf("failed to decode GitLab response from %s: %w", url, err)
	}

	return decodedResult, nil
}
