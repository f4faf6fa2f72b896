package routing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/gorilla/mux"
)

// create wraps the store Create function.
func create(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	var req CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, nil, nil)
		return
	}

	id, err := s.Create(liststore.Order(req.Order), req.Display, req.Limit)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id})
}

func destroy(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	if err := s.Destroy(mux.Vars(r)["id"]); err != nil {
		writeError(w, err, nil, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func listValues(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	id := mux.Vars(r)["id"]
	values, err := s.Values(id)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{
		ID:     id,
		Length: len(values),
		Values: values,
	})
}

func display(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	out, err := s.Display(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

// insert dispatches to InsertAt when the request names a position
// and to the ordered Insert otherwise.
func insert(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	var req InsertRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, nil, nil)
		return
	}

	id := mux.Vars(r)["id"]
	var err error
	if req.Position != nil {
		err = s.InsertAt(id, *req.Position, req.Element)
	} else {
		err = s.Insert(id, req.Element)
	}
	if err != nil {
		writeError(w, err, req.Position, &req.Element)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func elementAt(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	position, err := positionVar(r)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	element, err := s.ElementAt(mux.Vars(r)["id"], position)
	if err != nil {
		writeError(w, err, &position, nil)
		return
	}
	writeJSON(w, http.StatusOK, ElementResponse{Position: position, Element: element})
}

func removeAt(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	position, err := positionVar(r)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	element, err := s.RemoveAt(mux.Vars(r)["id"], position)
	if err != nil {
		writeError(w, err, &position, nil)
		return
	}
	writeJSON(w, http.StatusOK, ElementResponse{Position: position, Element: element})
}

func find(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	element, err := elementVar(r)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	res, err := s.Find(mux.Vars(r)["id"], element)
	if err != nil {
		writeError(w, err, nil, &element)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func removeValue(w http.ResponseWriter, r *http.Request, s liststore.Store) {
	element, err := elementVar(r)
	if err != nil {
		writeError(w, err, nil, nil)
		return
	}
	if err := s.RemoveValue(mux.Vars(r)["id"], element); err != nil {
		writeError(w, err, nil, &element)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", err, ErrBadRequest)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: %w", err, ErrBadRequest)
	}
	return nil
}

// positionVar parses the position path variable. Values outside
// the list bounds are passed through untouched for the list to reject.
func positionVar(r *http.Request) (int, error) {
	raw := mux.Vars(r)["position"]
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("position %q: %w", raw, ErrBadRequest)
	}
	return position, nil
}

// elementVar returns the element of the request, taken from the
// path variable when the route has one and from the "element"
// query parameter otherwise. The router matches on the encoded
// path, so path elements are unescaped here.
func elementVar(r *http.Request) (string, error) {
	raw, ok := mux.Vars(r)["element"]
	if !ok {
		values, ok := r.URL.Query()["element"]
		if !ok {
			return "", fmt.Errorf("missing element: %w", ErrBadRequest)
		}
		return values[0], nil
	}
	element, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("element %q: %w", raw, ErrBadRequest)
	}
	return element, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(byteData)
}

func writeError(w http.ResponseWriter, err error, position *int, element *string) {
	kind, status := KindOf(err)
	writeJSON(w, status, ErrorResponse{
		Error:    err.Error(),
		Kind:     kind,
		Position: position,
		Element:  element,
	})
}
