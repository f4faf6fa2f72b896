package liststore

import (
	"crypto/rand"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SystemBuilders/SortList/internal/list"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

var _ Store = (*SimpleStore)(nil)

// SimpleStore is a store that implements Store.
// It keeps the lists in a golang map keyed by ULID and guards
// every list with a mutex of its own, held for the duration of
// each operation. It has an in-built logger.
type SimpleStore struct {
	log zerolog.Logger

	mu    sync.RWMutex
	lists map[string]*entry

	idMu    sync.Mutex
	entropy io.Reader
}

// entry is one list of the store along with its lock.
type entry struct {
	mu    sync.Mutex
	order Order
	list  *list.List[string]
	gone  bool
}

// NewSimpleStore creates and returns a new store ready to use.
func NewSimpleStore(log zerolog.Logger) *SimpleStore {
	return &SimpleStore{
		log:     log,
		lists:   make(map[string]*entry),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Create makes a new list. Lists that display get a printer
// writing the elements verbatim.
func (s *SimpleStore) Create(order Order, display bool, limit int) (string, error) {
	o, err := ParseOrder(string(order))
	if err != nil {
		s.log.Debug().Str("order", string(order)).Msg("can't create, unknown order")
		return "", err
	}
	if limit < 0 {
		s.log.Debug().Int("limit", limit).Msg("can't create, negative limit")
		return "", fmt.Errorf("%d: %w", limit, ErrInvalidLimit)
	}
	var pr list.Printer[string]
	if display {
		pr = printElement
	}
	var opts []list.Option
	if limit > 0 {
		opts = append(opts, list.WithLimit(limit))
	}

	id, err := s.newID()
	if err != nil {
		return "", err
	}
	e := &entry{
		order: o,
		list:  list.New(o.comparator(), pr, opts...),
	}

	s.mu.Lock()
	s.lists[id] = e
	s.mu.Unlock()

	s.
		log.
		Debug().
		Str("list", id).
		Str("order", string(o)).
		Bool("display", display).
		Int("limit", limit).
		Msg("created")
	return id, nil
}

// Destroy removes the list from the store and releases its nodes.
func (s *SimpleStore) Destroy(id string) error {
	s.mu.Lock()
	e, ok := s.lists[id]
	if ok {
		delete(s.lists, id)
	}
	s.mu.Unlock()
	if !ok {
		s.log.Debug().Str("list", id).Msg("can't destroy, unknown list")
		return fmt.Errorf("%s: %w", id, ErrUnknownList)
	}

	e.mu.Lock()
	e.list.Destroy()
	e.gone = true
	e.mu.Unlock()

	s.log.Debug().Str("list", id).Msg("destroyed")
	return nil
}

// IDs returns the IDs of every list. ULIDs sort by creation time.
func (s *SimpleStore) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// ElementAt returns the element at the position.
func (s *SimpleStore) ElementAt(id string, position int) (string, error) {
	var element string
	err := s.withList(id, func(e *entry) (err error) {
		element, err = e.list.ElementAt(position)
		return err
	})
	if err != nil {
		s.logFailure(id, err).Int("position", position).Msg("can't get element")
		return "", err
	}
	s.log.Debug().Str("list", id).Int("position", position).Msg("element read")
	return element, nil
}

// InsertAt inserts the element at the position.
func (s *SimpleStore) InsertAt(id string, position int, element string) error {
	err := s.withList(id, func(e *entry) error {
		if err := e.order.validate(element); err != nil {
			return err
		}
		return e.list.InsertAt(position, element)
	})
	if err != nil {
		s.logFailure(id, err).Int("position", position).Str("element", element).Msg("can't insert")
		return err
	}
	s.log.Debug().Str("list", id).Int("position", position).Str("element", element).Msg("inserted at")
	return nil
}

// RemoveAt removes and returns the element at the position.
func (s *SimpleStore) RemoveAt(id string, position int) (string, error) {
	var element string
	err := s.withList(id, func(e *entry) (err error) {
		element, err = e.list.RemoveAt(position)
		return err
	})
	if err != nil {
		s.logFailure(id, err).Int("position", position).Msg("can't remove")
		return "", err
	}
	s.log.Debug().Str("list", id).Int("position", position).Str("element", element).Msg("removed at")
	return element, nil
}

// RemoveValue removes the first element equal to the given one.
func (s *SimpleStore) RemoveValue(id, element string) error {
	err := s.withList(id, func(e *entry) error {
		if err := e.order.validate(element); err != nil {
			return err
		}
		return e.list.RemoveValue(element)
	})
	if err != nil {
		s.logFailure(id, err).Str("element", element).Msg("can't remove value")
		return err
	}
	s.log.Debug().Str("list", id).Str("element", element).Msg("removed value")
	return nil
}

// Insert adds the element in list order.
func (s *SimpleStore) Insert(id, element string) error {
	err := s.withList(id, func(e *entry) error {
		if err := e.order.validate(element); err != nil {
			return err
		}
		return e.list.Insert(element)
	})
	if err != nil {
		s.logFailure(id, err).Str("element", element).Msg("can't insert")
		return err
	}
	s.log.Debug().Str("list", id).Str("element", element).Msg("inserted")
	return nil
}

// Find locates the first element equal to the given one.
func (s *SimpleStore) Find(id, element string) (FindResult, error) {
	var res FindResult
	err := s.withList(id, func(e *entry) error {
		if err := e.order.validate(element); err != nil {
			return err
		}
		pos, err := e.list.Find(element)
		if err != nil {
			return err
		}
		res.Found = pos.Found()
		res.AtHead = pos.Kind == list.AtHead
		if pos.Kind == list.AfterNode {
			res.Predecessor = pos.Pred.Value()
		}
		return nil
	})
	if err != nil {
		s.logFailure(id, err).Str("element", element).Msg("can't find")
		return FindResult{}, err
	}
	s.log.Debug().Str("list", id).Str("element", element).Bool("found", res.Found).Msg("find")
	return res, nil
}

// Display renders the list as "[ e1 ... eN ]", or as an empty
// string for an empty list.
func (s *SimpleStore) Display(id string) (string, error) {
	var b strings.Builder
	err := s.withList(id, func(e *entry) error {
		return e.list.Display(&b)
	})
	if err != nil {
		s.logFailure(id, err).Msg("can't display")
		return "", err
	}
	s.log.Debug().Str("list", id).Msg("displayed")
	return b.String(), nil
}

// Length returns the number of elements in the list.
func (s *SimpleStore) Length(id string) (int, error) {
	var n int
	err := s.withList(id, func(e *entry) error {
		n = e.list.Length()
		return nil
	})
	if err != nil {
		s.logFailure(id, err).Msg("can't get length")
		return 0, err
	}
	s.log.Debug().Str("list", id).Int("length", n).Msg("length read")
	return n, nil
}

// Values returns a copy of the elements of the list.
func (s *SimpleStore) Values(id string) ([]string, error) {
	var values []string
	err := s.withList(id, func(e *entry) error {
		values = e.list.Values()
		return nil
	})
	if err != nil {
		s.logFailure(id, err).Msg("can't get values")
		return nil, err
	}
	s.log.Debug().Str("list", id).Int("length", len(values)).Msg("values read")
	return values, nil
}

// withList runs fn with the list locked. A caller racing with
// Destroy may still reach the entry, it then gets ErrDestroyed.
func (s *SimpleStore) withList(id string, fn func(e *entry) error) error {
	s.mu.RLock()
	e, ok := s.lists[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrUnknownList)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return fmt.Errorf("%s: %w", id, list.ErrDestroyed)
	}
	return fn(e)
}

func (s *SimpleStore) logFailure(id string, err error) *zerolog.Event {
	return s.
		log.
		Debug().
		Str("list", id).
		Err(err)
}

func (s *SimpleStore) newID() (string, error) {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
