package nocodb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every request to the record service. There is
// no retry policy; a failed call is reported once to the caller.
const DefaultTimeout = 15 * time.Second

// Client talks to one NocoDB base. Table handles share the client's
// transport and credentials.
type Client struct {
	Host   string
	BaseID string
	Token  string

	HTTPClient *http.Client
}

// NewClient builds a client for the given host, base and API token.
func NewClient(host, baseID, token string) *Client {
	return &Client{
		Host:       strings.TrimRight(host, "/"),
		BaseID:     baseID,
		Token:      token,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Table returns a handle for CRUD operations against one table.
func (c *Client) Table(tableID string) *Table {
	return &Table{client: c, tableID: tableID}
}

type Table struct {
	client  *Client
	tableID string
}

func (t *Table) endpoint() string {
	return fmt.Sprintf("%s/api/v1/db/data/noco/%s/%s", t.client.Host, t.client.BaseID, t.tableID)
}

// List fetches every row of the table. The service answers either with
// a bare array or with an envelope holding the rows under "list" or
// "data"; all three forms normalize to a plain slice of records.
func (t *Table) List(ctx context.Context) ([]Record, error) {
	body, err := t.client.do(ctx, http.MethodGet, t.endpoint(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body)
}

// Create inserts a row and returns it as stored by the service.
func (t *Table) Create(ctx context.Context, record Record) (Record, error) {
	body, err := t.client.do(ctx, http.MethodPost, t.endpoint(), record)
	if err != nil {
		return nil, err
	}
	var created Record
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return created, nil
}

// Update patches the row with the given id.
func (t *Table) Update(ctx context.Context, id string, patch Record) (Record, error) {
	body, err := t.client.do(ctx, http.MethodPatch, t.endpoint()+"/"+id, patch)
	if err != nil {
		return nil, err
	}
	var updated Record
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return updated, nil
}

// Delete removes the row with the given id.
func (t *Table) Delete(ctx context.Context, id string) error {
	_, err := t.client.do(ctx, http.MethodDelete, t.endpoint()+"/"+id, nil)
	return err
}

// Count returns the number of rows in the table.
func (t *Table) Count(ctx context.Context) (int, error) {
	body, err := t.client.do(ctx, http.MethodGet, t.endpoint()+"/count", nil)
	if err != nil {
		return 0, err
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out.Count, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-token", c.Token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func decodeList(body []byte) ([]Record, error) {
	var bare []Record
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	for _, key := range []string{"list", "data"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("%w: %q is not an array", ErrUnexpectedShape, key)
		}
		return records, nil
	}
	return nil, fmt.Errorf("%w: no list found in envelope", ErrUnexpectedShape)
}

func formatID(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
