package routing

import (
	"net/http"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
//
// Routes match on the encoded, uncleaned path so that elements
// in the path may contain escaped slashes or be "." and "..".
// Elements may also be given as the "element" query parameter of
// the /values route, which is the only way to pass an empty one.
func SetupRouting(s liststore.Store, r *mux.Router) *mux.Router {
	r.UseEncodedPath()
	r.SkipClean(true)
	r.HandleFunc("/lists", makeCreateHandler(s)).Methods(http.MethodPost)
	r.HandleFunc("/lists", makeIDsHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeDestroyHandler(s)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}", makeValuesHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/display", makeDisplayHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/elements", makeInsertHandler(s)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/elements/{position}", makeElementAtHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/elements/{position}", makeRemoveAtHandler(s)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/values", makeFindHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/values", makeRemoveValueHandler(s)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/values/{element}", makeFindHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/values/{element}", makeRemoveValueHandler(s)).Methods(http.MethodDelete)
	return r
}

func makeCreateHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create(w, r, s)
	}
}

func makeIDsHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, IDsResponse{IDs: s.IDs()})
	}
}

func makeDestroyHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destroy(w, r, s)
	}
}

func makeValuesHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listValues(w, r, s)
	}
}

func makeDisplayHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		display(w, r, s)
	}
}

func makeInsertHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insert(w, r, s)
	}
}

func makeElementAtHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		elementAt(w, r, s)
	}
}

func makeRemoveAtHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removeAt(w, r, s)
	}
}

func makeFindHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		find(w, r, s)
	}
}

func makeRemoveValueHandler(s liststore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removeValue(w, r, s)
	}
}
