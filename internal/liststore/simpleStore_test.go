package liststore

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/SystemBuilders/SortList/internal/list"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SimpleStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewSimpleStore(log), &buf
}

func TestSimpleStore(t *testing.T) {
	t.Run("numeric scenario", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Numeric, true, 0)
		require.NoError(t, err)

		for _, v := range []string{"5", "3", "8", "3"} {
			require.NoError(t, s.Insert(id, v))
		}
		values, err := s.Values(id)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "3", "5", "8"}, values)

		res, err := s.Find(id, "3")
		require.NoError(t, err)
		assert.Equal(t, FindResult{Found: true, AtHead: true}, res)

		require.NoError(t, s.RemoveValue(id, "3"))
		v, err := s.RemoveAt(id, 2)
		require.NoError(t, err)
		assert.Equal(t, "5", v)

		out, err := s.Display(id)
		require.NoError(t, err)
		assert.Equal(t, "[ 3 8 ]", out)

		n, err := s.Length(id)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("numeric order is not lexical", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Numeric, false, 0)
		require.NoError(t, err)
		for _, v := range []string{"10", "9", "-1.5", "1e1"} {
			require.NoError(t, s.Insert(id, v))
		}
		values, err := s.Values(id)
		require.NoError(t, err)
		assert.Equal(t, []string{"-1.5", "9", "10", "1e1"}, values)

		res, err := s.Find(id, "10.0")
		require.NoError(t, err)
		assert.Equal(t, FindResult{Found: true, Predecessor: "9"}, res)
	})

	t.Run("numeric lists reject other elements", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Numeric, false, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, s.Insert(id, "ten"), ErrInvalidElement)
		assert.ErrorIs(t, s.InsertAt(id, 1, "NaN"), ErrInvalidElement)
		_, err = s.Find(id, "x")
		assert.ErrorIs(t, err, ErrInvalidElement)
		n, err := s.Length(id)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("lexical", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Lexical, true, 0)
		require.NoError(t, err)
		for _, v := range []string{"pear", "apple", "fig"} {
			require.NoError(t, s.Insert(id, v))
		}
		out, err := s.Display(id)
		require.NoError(t, err)
		assert.Equal(t, "[ apple fig pear ]", out)

		res, err := s.Find(id, "kiwi")
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.ErrorIs(t, s.RemoveValue(id, "kiwi"), list.ErrNotFound)
	})

	t.Run("unordered lists are positional only", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create("", false, 0)
		require.NoError(t, err)
		require.NoError(t, s.InsertAt(id, 1, "b"))
		require.NoError(t, s.InsertAt(id, 1, "a"))
		require.NoError(t, s.InsertAt(id, 3, "c"))

		assert.ErrorIs(t, s.Insert(id, "d"), list.ErrOperationUnavailable)
		assert.ErrorIs(t, s.RemoveValue(id, "a"), list.ErrOperationUnavailable)
		_, err = s.Find(id, "a")
		assert.ErrorIs(t, err, list.ErrOperationUnavailable)
		_, err = s.Display(id)
		assert.ErrorIs(t, err, list.ErrOperationUnavailable)

		v, err := s.ElementAt(id, 3)
		require.NoError(t, err)
		assert.Equal(t, "c", v)
		_, err = s.ElementAt(id, 4)
		assert.ErrorIs(t, err, list.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.InsertAt(id, 5, "x"), list.ErrIndexOutOfRange)
	})

	t.Run("limit", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Lexical, false, 1)
		require.NoError(t, err)
		require.NoError(t, s.Insert(id, "a"))
		assert.ErrorIs(t, s.Insert(id, "b"), list.ErrOutOfMemory)
	})

	t.Run("negative limit", func(t *testing.T) {
		s, logs := newTestStore(t)
		_, err := s.Create(Lexical, false, -1)
		assert.ErrorIs(t, err, ErrInvalidLimit)
		assert.Empty(t, s.IDs())
		assert.Contains(t, logs.String(), `"limit":-1`)
	})

	t.Run("reads are logged", func(t *testing.T) {
		s, logs := newTestStore(t)
		id, err := s.Create(Lexical, true, 0)
		require.NoError(t, err)
		require.NoError(t, s.Insert(id, "a"))

		_, err = s.Display(id)
		require.NoError(t, err)
		_, err = s.Length(id)
		require.NoError(t, err)
		_, err = s.Values(id)
		require.NoError(t, err)

		out := logs.String()
		assert.Contains(t, out, `"message":"displayed"`)
		assert.Contains(t, out, `"message":"length read"`)
		assert.Contains(t, out, `"message":"values read"`)

		_, err = s.Length("missing")
		require.Error(t, err)
		assert.Contains(t, logs.String(), `"message":"can't get length"`)
	})

	t.Run("empty predecessor is kept", func(t *testing.T) {
		s, _ := newTestStore(t)
		id, err := s.Create(Lexical, false, 0)
		require.NoError(t, err)
		require.NoError(t, s.Insert(id, "a"))
		require.NoError(t, s.Insert(id, ""))

		res, err := s.Find(id, "a")
		require.NoError(t, err)
		assert.Equal(t, FindResult{Found: true, Predecessor: ""}, res)

		byteData, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"found":true,"atHead":false,"predecessor":""}`, string(byteData))
	})

	t.Run("unknown order", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Create("random", false, 0)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		assert.Empty(t, s.IDs())
	})

	t.Run("destroy", func(t *testing.T) {
		s, logs := newTestStore(t)
		first, err := s.Create(Lexical, false, 0)
		require.NoError(t, err)
		second, err := s.Create(Lexical, false, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, s.IDs())

		require.NoError(t, s.Insert(first, "a"))
		require.NoError(t, s.Destroy(first))
		assert.Equal(t, []string{second}, s.IDs())

		assert.ErrorIs(t, s.Destroy(first), ErrUnknownList)
		_, err = s.Length(first)
		assert.ErrorIs(t, err, ErrUnknownList)
		assert.Contains(t, logs.String(), `"message":"destroyed"`)
	})

	t.Run("failures are logged with the parameter", func(t *testing.T) {
		s, logs := newTestStore(t)
		id, err := s.Create(Lexical, false, 0)
		require.NoError(t, err)
		_, err = s.RemoveAt(id, 4)
		require.Error(t, err)
		assert.Contains(t, logs.String(), `"position":4`)
		assert.Contains(t, logs.String(), `"message":"can't remove"`)
	})
}

func TestSimpleStore_Concurrent(t *testing.T) {
	s := NewSimpleStore(zerolog.Nop())
	id, err := s.Create(Numeric, false, 0)
	require.NoError(t, err)

	const workers, each = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				assert.NoError(t, s.Insert(id, strconv.Itoa(w*each+i)))
			}
		}(w)
	}
	wg.Wait()

	n, err := s.Length(id)
	require.NoError(t, err)
	assert.Equal(t, workers*each, n)

	values, err := s.Values(id)
	require.NoError(t, err)
	for i, v := range values {
		assert.Equal(t, strconv.Itoa(i), v)
	}
}
