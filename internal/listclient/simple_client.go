package listclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/SystemBuilders/SortList/internal/routing"
)

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client using a plain http.Client.
type SimpleClient struct {
	baseURL string
	hc      *http.Client
}

// NewSimpleClient returns a client talking to the node at baseURL,
// for example "http://127.0.0.1:1234". A nil hc means
// http.DefaultClient.
func NewSimpleClient(baseURL string, hc *http.Client) *SimpleClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &SimpleClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
	}
}

// Create makes a POST call to the node and creates a list.
func (sc *SimpleClient) Create(order liststore.Order, display bool, limit int) (string, error) {
	var res routing.CreateResponse
	err := sc.do(http.MethodPost, "/lists", routing.CreateRequest{
		Order:   string(order),
		Display: display,
		Limit:   limit,
	}, &res)
	return res.ID, err
}

// Destroy makes a DELETE call to the node and releases the list.
func (sc *SimpleClient) Destroy(id string) error {
	return sc.do(http.MethodDelete, listPath(id), nil, nil)
}

// IDs returns the IDs of the lists on the node.
func (sc *SimpleClient) IDs() ([]string, error) {
	var res routing.IDsResponse
	err := sc.do(http.MethodGet, "/lists", nil, &res)
	return res.IDs, err
}

// ElementAt returns the element at the position.
func (sc *SimpleClient) ElementAt(id string, position int) (string, error) {
	var res routing.ElementResponse
	err := sc.do(http.MethodGet, elementPath(id, position), nil, &res)
	return res.Element, err
}

// InsertAt inserts the element at the position.
func (sc *SimpleClient) InsertAt(id string, position int, element string) error {
	return sc.do(http.MethodPost, listPath(id)+"/elements", routing.InsertRequest{
		Element:  element,
		Position: &position,
	}, nil)
}

// RemoveAt removes the element at the position and returns it.
func (sc *SimpleClient) RemoveAt(id string, position int) (string, error) {
	var res routing.ElementResponse
	err := sc.do(http.MethodDelete, elementPath(id, position), nil, &res)
	return res.Element, err
}

// RemoveValue removes the first element equal to the given one.
func (sc *SimpleClient) RemoveValue(id, element string) error {
	return sc.do(http.MethodDelete, valuePath(id, element), nil, nil)
}

// Insert adds the element in list order.
func (sc *SimpleClient) Insert(id, element string) error {
	return sc.do(http.MethodPost, listPath(id)+"/elements", routing.InsertRequest{
		Element: element,
	}, nil)
}

// Find locates the first element equal to the given one.
func (sc *SimpleClient) Find(id, element string) (liststore.FindResult, error) {
	var res liststore.FindResult
	err := sc.do(http.MethodGet, valuePath(id, element), nil, &res)
	return res, err
}

// Display returns the list as rendered by the node.
func (sc *SimpleClient) Display(id string) (string, error) {
	resp, err := sc.send(http.MethodGet, listPath(id)+"/display", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Values returns the elements of the list.
func (sc *SimpleClient) Values(id string) ([]string, error) {
	var res routing.ListResponse
	err := sc.do(http.MethodGet, listPath(id), nil, &res)
	return res.Values, err
}

// do sends the request and decodes the response body into out
// when out is not nil.
func (sc *SimpleClient) do(method, path string, in, out interface{}) error {
	resp, err := sc.send(method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// send makes the call and turns non-2xx responses into a RequestError.
func (sc *SimpleClient) send(method, path string, in interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		byteData, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(byteData)
	}

	req, err := http.NewRequest(method, sc.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sc.hc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 == 2 {
		return resp, nil
	}

	defer resp.Body.Close()
	reqErr := &RequestError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&reqErr.Response); err != nil {
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	return nil, reqErr
}

func listPath(id string) string {
	return "/lists/" + url.PathEscape(id)
}

func elementPath(id string, position int) string {
	return listPath(id) + "/elements/" + strconv.Itoa(position)
}

// valuePath carries the element in the query, where empty, "."
// and ".." elements survive untouched.
func valuePath(id, element string) string {
	return listPath(id) + "/values?" + url.Values{"element": {element}}.Encode()
}
