package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	values map[string]string
	err    error
	gets   int
	puts   int
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	s.gets++
	if s.err != nil {
		return "", s.err
	}
	value, ok := s.values[key]
	if !ok {
		return "", errors.New("not found")
	}
	return value, nil
}

func (s *stubStore) Put(_ context.Context, key string, value string) error {
	s.puts++
	if s.err != nil {
		return s.err
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.values, key)
	return nil
}

func TestChainPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := &stubStore{values: map[string]string{"k": "from-primary"}}
	fallback := &stubStore{values: map[string]string{"k": "from-fallback"}}
	store := NewStore(primary, fallback)

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", value)
	assert.Zero(t, fallback.gets)
}

func TestChainFallsBackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	primary := &stubStore{err: errors.New("pass unavailable")}
	fallback := &stubStore{}
	store := NewStore(primary, fallback)

	require.NoError(t, store.Put(context.Background(), "k", "v"))
	assert.Equal(t, 1, primary.puts)
	assert.Equal(t, 1, fallback.puts)

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestChainReportsBothFailures(t *testing.T) {
	t.Parallel()

	primary := &stubStore{err: errors.New("primary boom")}
	fallback := &stubStore{err: errors.New("fallback boom")}
	store := NewStore(primary, fallback)

	_, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary boom")
	assert.Contains(t, err.Error(), "fallback boom")
}

func TestChainSkipsFallbackOnContextErrors(t *testing.T) {
	t.Parallel()

	primary := &stubStore{err: context.Canceled}
	fallback := &stubStore{}
	store := NewStore(primary, fallback)

	err := store.Put(context.Background(), "k", "v")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fallback.puts)
}

func TestNewStoreCheckedRejectsNilStores(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, &stubStore{})
	assert.Error(t, err)

	_, err = NewStoreChecked(&stubStore{}, nil)
	assert.Error(t, err)
}
