package identity

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCachesResult(t *testing.T) {
	var calls int32

	c := New("uid", func(id uint32) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "alice", nil
	})

	require.Equal(t, "alice", c.Resolve(1000))
	require.Equal(t, "alice", c.Resolve(1000))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, 1, c.Len())
}

func TestResolveCachesFailures(t *testing.T) {
	var calls int32

	c := New("gid", func(id uint32) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", errors.New("no such group")
	})

	require.Equal(t, Unknown, c.Resolve(4242))
	require.Equal(t, Unknown, c.Resolve(4242))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResolveDistinctIDs(t *testing.T) {
	names := map[uint32]string{0: "root", 1: "daemon"}

	c := New("uid", func(id uint32) (string, error) {
		return names[id], nil
	})

	require.Equal(t, "root", c.Resolve(0))
	require.Equal(t, "daemon", c.Resolve(1))
	require.Equal(t, 2, c.Len())
}

func TestResolveConcurrentMisses(t *testing.T) {
	var calls int32

	release := make(chan struct{})

	c := New("uid", func(id uint32) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "bob", nil
	})

	var wg sync.WaitGroup

	results := make([]string, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Resolve(1001)
		}(i)
	}

	close(release)
	wg.Wait()

	for _, r := range results {
		require.Equal(t, "bob", r)
	}

	// Goroutines that arrive after the first lookup completed are served
	// from the cache, the others share the in-flight call.
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
