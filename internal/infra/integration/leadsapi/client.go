package leadsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/mapper"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

// Client talks to the upstream leads CRM API. Responses are decoded
// verbatim into raw records; normalization happens in the mapper, never
// here. Non-2xx responses become *usecase.RemoteError with status and body
// kept for reporting. No retry — that is the caller's decision.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) FetchAll(ctx context.Context) ([]mapper.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leads/getall", nil)
	if err != nil {
		return nil, err
	}
	c.addHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raws []mapper.RawRecord
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("leadsapi: decoding getall response: %w", err)
	}
	return raws, nil
}

func (c *Client) Update(ctx context.Context, id string, payload mapper.RawRecord) (mapper.RawRecord, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("leadsapi: encoding update payload: %w", err)
	}

	url := fmt.Sprintf("%s/leads/update/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(buf))
	if err != nil {
		return nil, err
	}
	c.addHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	var raw mapper.RawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		// Some deployments reply with a bare status message; treat it as
		// "no record returned" and let the caller refresh.
		return nil, nil
	}
	return raw, nil
}

func (c *Client) Assign(ctx context.Context, leadIDs []string, bdaID, bdaName string) error {
	payload := AssignRequest{LeadIDs: leadIDs, BdaID: bdaID, BdaName: bdaName}
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("leadsapi: encoding assign payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/leads/assign", bytes.NewBuffer(buf))
	if err != nil {
		return err
	}
	c.addHeaders(req)

	_, err = c.do(req)
	return err
}

func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) ([]mapper.RawRecord, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/leads/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raws []mapper.RawRecord
	if err := json.Unmarshal(respBody, &raws); err != nil {
		return nil, fmt.Errorf("leadsapi: decoding upload response: %w", err)
	}
	return raws, nil
}

func (c *Client) FetchUsers(ctx context.Context) ([]entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bda-users", nil)
	if err != nil {
		return nil, err
	}
	c.addHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var dtos []UserDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("leadsapi: decoding bda-users response: %w", err)
	}

	users := make([]entity.User, 0, len(dtos))
	for _, d := range dtos {
		users = append(users, d.ToEntity())
	}
	return users, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &usecase.RemoteError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
