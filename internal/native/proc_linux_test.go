package native

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestGetThreadIDMatchesKernel(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid, err := GetThreadID()
	require.NoError(t, err)
	require.Equal(t, unix.Gettid(), tid)

	_, err = os.Stat(fmt.Sprintf("/proc/self/task/%d", tid))
	require.NoError(t, err)
}

func TestGetThreadIDDiffersAcrossThreads(t *testing.T) {
	var (
		wg   sync.WaitGroup
		ids  [2]int
		errs [2]error
	)

	// Both threads stay locked until each has read its id
	ready := make(chan struct{})

	var started sync.WaitGroup
	started.Add(len(ids))

	for i := range ids {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			ids[i], errs[i] = GetThreadID()

			started.Done()
			<-ready
		}(i)
	}

	started.Wait()
	close(ready)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.NotEqual(t, ids[0], ids[1])
}
