/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cache_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/gid/apis"
	"dirpx.dev/gid/locator"
	"dirpx.dev/gid/locator/cache"
	"dirpx.dev/gid/locator/memory"
)

var person = apis.NewModel("Person")

// counting wraps a locator and counts calls that reach it.
func counting(next apis.Locator, n *atomic.Int32) apis.Locator {
	return locator.Func(func(ctx context.Context, m *apis.Model, id string) (any, error) {
		n.Add(1)
		return next.Locate(ctx, m, id)
	})
}

func TestLocator_TTL_CachesHits(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(person, "5", "alice"))

	var calls atomic.Int32
	l := cache.New(counting(store, &calls), cache.Options{Strategy: cache.TTL})

	for i := 0; i < 3; i++ {
		got, err := l.Locate(ctx, person, "5")
		require.NoError(t, err)
		assert.Equal(t, "alice", got)
	}
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, 1, l.Len())
}

func TestLocator_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	var calls atomic.Int32
	l := cache.New(counting(store, &calls), cache.Options{Strategy: cache.TTL})

	_, err := l.Locate(ctx, person, "7")
	require.ErrorIs(t, err, apis.ErrRecordNotFound)

	require.NoError(t, store.Put(person, "7", "late"))
	got, err := l.Locate(ctx, person, "7")
	require.NoError(t, err)
	assert.Equal(t, "late", got)
	assert.EqualValues(t, 2, calls.Load())
}

func TestLocator_FaultsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	l := cache.New(locator.Func(func(context.Context, *apis.Model, string) (any, error) {
		return nil, boom
	}), cache.Options{})

	_, err := l.Locate(context.Background(), person, "1")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, l.Len())
}

func TestLocator_None_PassThrough(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(person, "5", "alice"))

	var calls atomic.Int32
	l := cache.New(counting(store, &calls), cache.Options{Strategy: cache.None})

	for i := 0; i < 3; i++ {
		_, err := l.Locate(ctx, person, "5")
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, calls.Load())
	assert.Equal(t, cache.None, l.Strategy())
}

func TestLocator_Expiry(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(person, "5", "alice"))

	var calls atomic.Int32
	l := cache.New(counting(store, &calls), cache.Options{
		Strategy:        cache.TTL,
		TTL:             20 * time.Millisecond,
		CleanupInterval: time.Hour,
	})

	_, err := l.Locate(ctx, person, "5")
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	_, err = l.Locate(ctx, person, "5")
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestLocator_ForgetAndFlush(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(person, "5", "alice"))
	require.NoError(t, store.Put(person, "6", "bob"))

	var calls atomic.Int32
	l := cache.New(counting(store, &calls), cache.Options{})

	_, _ = l.Locate(ctx, person, "5")
	_, _ = l.Locate(ctx, person, "6")
	require.Equal(t, 2, l.Len())

	require.NoError(t, store.Put(person, "5", "alice2"))
	l.Forget(person, "5")
	got, err := l.Locate(ctx, person, "5")
	require.NoError(t, err)
	assert.Equal(t, "alice2", got)

	l.Flush()
	assert.Equal(t, 0, l.Len())
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    cache.Strategy
		wantErr bool
	}{
		{"ttl", cache.TTL, false},
		{" TTL ", cache.TTL, false},
		{"none", cache.None, false},
		{"", cache.None, false},
		{"lru", cache.None, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := cache.ParseStrategy(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, "ttl", cache.TTL.String())
	assert.Equal(t, "none", cache.None.String())
	assert.Equal(t, "strategy(9)", cache.Strategy(9).String())
}
