package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxErrorBody = 512

// PostgRESTStore talks to a Supabase/PostgREST endpoint. The service key is
// sent both as the apikey header and as a bearer token.
type PostgRESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ RowStore = (*PostgRESTStore)(nil)

func NewPostgRESTStore(baseURL, apiKey string, client *http.Client) *PostgRESTStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &PostgRESTStore{
		baseURL: strings.TrimRight(baseURL, "/") + "/rest/v1/",
		apiKey:  apiKey,
		client:  client,
	}
}

func (s *PostgRESTStore) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	params := filterParams(q.Filters)
	params.Set("select", "*")
	if q.OrderBy != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var rows []Row
	if err := s.do(ctx, http.MethodGet, table, params, nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (s *PostgRESTStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	var rows []Row
	if err := s.do(ctx, http.MethodPost, table, nil, encodeRow(row), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, remoteErr("insert", table, fmt.Errorf("empty representation"))
	}
	return rows[0], nil
}

func (s *PostgRESTStore) Update(ctx context.Context, table string, filters []Filter, patch Row) ([]Row, error) {
	var rows []Row
	if err := s.do(ctx, http.MethodPatch, table, filterParams(filters), encodeRow(patch), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (s *PostgRESTStore) Delete(ctx context.Context, table string, filters []Filter) (int, error) {
	var rows []Row
	if err := s.do(ctx, http.MethodDelete, table, filterParams(filters), nil, &rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *PostgRESTStore) do(ctx context.Context, method, table string, params url.Values, body any, out any) error {
	endpoint := s.baseURL + url.PathEscape(table)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return remoteErr(strings.ToLower(method), table, err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[rowstore][postgrest] %s %s transport error err=%v", method, table, err)
		return remoteErr(strings.ToLower(method), table, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return remoteErr(strings.ToLower(method), table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(raw)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		log.Printf("[rowstore][postgrest] %s %s status=%d body=%s", method, table, resp.StatusCode, msg)
		return remoteErr(strings.ToLower(method), table, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}
	if len(bytes.TrimSpace(raw)) == 0 || out == nil {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return remoteErr(strings.ToLower(method), table, err)
	}
	return nil
}

// filterParams renders filters as PostgREST operators (col=eq.value).
// Repeated columns become repeated parameters, which PostgREST ANDs.
func filterParams(filters []Filter) url.Values {
	params := url.Values{}
	for _, f := range filters {
		params.Add(f.Column, string(f.Op)+"."+filterLiteral(f.Value))
	}
	return params
}
