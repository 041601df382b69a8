package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

const (
	DefaultAPIBaseURL = "https://runalyze.com/api/v1"
	DefaultSiteURL    = "https://runalyze.com"

	// StatusImported is the status value the upload queue reports once an
	// activity has been fully imported.
	StatusImported = "successfully imported"
)

// Client talks to the Runalyze REST API. BaseURL and SiteURL are exported so
// tests can point the client at a local server.
type Client struct {
	BaseURL string
	SiteURL string
	Token   string
	client  *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		BaseURL: DefaultAPIBaseURL,
		SiteURL: DefaultSiteURL,
		Token:   token,
		client:  &http.Client{},
	}
}

// UploadResult is the response body of a successful activity upload.
// QueueID may be empty if the server did not hand out a queue entry.
type UploadResult struct {
	QueueID string `json:"queue_id"`
}

// UploadStatus is the response body of an upload verification request.
// ActivityID is only set once Status equals StatusImported.
type UploadStatus struct {
	Status     string `json:"status"`
	ActivityID string `json:"activity_id"`
}

// HTTPError is returned for any response outside the 200/201 range. Body
// holds the raw response so callers can surface it to the user.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// UploadActivity posts the raw bytes of the file at path as a multipart form
// to the activities upload endpoint. The file content is sent opaquely; no
// local parsing happens.
func (c *Client) UploadActivity(path string) (UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return UploadResult{}, err
	}
	defer f.Close()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	request, err := http.NewRequest("POST", c.BaseURL+"/activities/uploads", body)
	if err != nil {
		return UploadResult{}, err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("token", c.Token)

	response, err := c.client.Do(request)
	if err != nil {
		return UploadResult{}, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return UploadResult{}, err
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return UploadResult{}, &HTTPError{StatusCode: response.StatusCode, Body: string(raw)}
	}

	var result UploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return UploadResult{}, fmt.Errorf("failed to parse upload response: %w", err)
	}
	return result, nil
}

// VerifyUpload issues a single status query for the given queue id. There is
// no polling; the server reports whatever state the import is in right now.
func (c *Client) VerifyUpload(queueID string) (UploadStatus, error) {
	request, err := http.NewRequest("GET", c.BaseURL+"/activities/uploads/"+queueID, nil)
	if err != nil {
		return UploadStatus{}, err
	}
	request.Header.Set("token", c.Token)

	response, err := c.client.Do(request)
	if err != nil {
		return UploadStatus{}, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return UploadStatus{}, err
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return UploadStatus{}, &HTTPError{StatusCode: response.StatusCode, Body: string(raw)}
	}

	var status UploadStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return UploadStatus{}, fmt.Errorf("failed to parse verification response: %w", err)
	}
	return status, nil
}

// ActivityURL builds the shareable URL for an imported activity.
func (c *Client) ActivityURL(activityID string) string {
	return fmt.Sprintf("%s/activity/%s", c.SiteURL, activityID)
}
