package core

import (
	"syscall"
	"testing"

	"github.com/0xef53/go-osal/internal/native"

	"github.com/golang/mock/gomock"
	platerr "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestGetLimitUnsupportedKind(t *testing.T) {
	p, _ := newMockPlatform(t)

	_, err := p.GetLimit(Resource(99))
	require.True(t, IsUnsupported(err))

	err = p.SetLimit(&ResourceLimitInfo{Resource: Resource(99)})
	require.True(t, IsUnsupported(err))
}

func TestSetLimitNil(t *testing.T) {
	p, _ := newMockPlatform(t)

	require.True(t, IsValidationFailed(p.SetLimit(nil)))
}

func TestParseResource(t *testing.T) {
	r, err := ParseResource("nofile")
	require.NoError(t, err)
	require.Equal(t, OpenFiles, r)
	require.Equal(t, "nofile", r.String())

	_, err = ParseResource("bogus")
	require.True(t, IsValidationFailed(err))
}

func TestLimitsWithBridge(t *testing.T) {
	if len(nativeResources) == 0 {
		t.Skip("resource limits are not supported on this platform")
	}

	p, bridge := newMockPlatform(t)
	id := nativeResources[OpenFiles]

	bridge.EXPECT().GetRLimit(id, gomock.Any()).DoAndReturn(func(_ int, rl *native.RLimit) error {
		rl.Current, rl.Maximum = 1024, 4096
		return nil
	})

	info, err := p.GetLimit(OpenFiles)
	require.NoError(t, err)
	require.Equal(t, &ResourceLimitInfo{Resource: OpenFiles, Current: 1024, Maximum: 4096}, info)

	bridge.EXPECT().SetRLimit(id, &native.RLimit{Current: 8192, Maximum: 4096}).Return(syscall.EINVAL)

	err = p.SetLimit(&ResourceLimitInfo{Resource: OpenFiles, Current: 8192, Maximum: 4096})
	require.True(t, IsNativeCallFailed(err))
	require.Equal(t, platerr.CodeInvalidInput, platerr.GetCode(err))

	bridge.EXPECT().SetRLimit(id, &native.RLimit{Current: 1024, Maximum: 1024}).Return(syscall.EPERM)

	err = p.SetLimit(&ResourceLimitInfo{Resource: OpenFiles, Current: 1024, Maximum: 1024})
	require.Equal(t, platerr.CodeForbidden, platerr.GetCode(err))
}
