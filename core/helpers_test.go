package core

import (
	"testing"

	"github.com/0xef53/go-osal/core/mocks"

	"github.com/golang/mock/gomock"
)

func newMockPlatform(t *testing.T) (*Platform, *mocks.MockBridge) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockBridge(ctrl)

	cfg := DefaultConfig()
	cfg.TempRoot = t.TempDir()

	return NewPlatform(cfg, bridge), bridge
}

// withEnv replaces the environment seen by p.
func withEnv(p *Platform, env map[string]string) {
	p.getenv = func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}
