package core

import (
	"github.com/0xef53/go-osal/internal/facts"
	"github.com/0xef53/go-osal/internal/identity"
	"github.com/0xef53/go-osal/internal/native"
)

//go:generate mockgen -destination=mocks/mock_bridge.go -package=mocks github.com/0xef53/go-osal/core Bridge

// Bridge is the set of native calls the platform layer depends on.
// native.System is the implementation backed by the host OS.
type Bridge interface {
	Stat(path string, cs *native.CommonStat) error
	LStat(path string, cs *native.CommonStat) error
	LinkCount(path string) (int, error)
	GetRLimit(resource int, rl *native.RLimit) error
	SetRLimit(resource int, rl *native.RLimit) error
	Umask(mask int) (int, error)
	UserName(uid uint32) (string, error)
	GroupName(gid uint32) (string, error)
}

// Platform owns the process-wide state of the abstraction layer:
// cached platform facts, identity caches and the temporary directory.
type Platform struct {
	cfg    *Config
	facts  *facts.Facts
	bridge Bridge

	users  *identity.Cache
	groups *identity.Cache

	temp *TempDir

	// Overridable for tests
	getenv func(string) (string, bool)
}

// NewPlatform returns a Platform using cfg. A nil bridge selects
// the host implementation configured by cfg.
func NewPlatform(cfg *Config, bridge Bridge) *Platform {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if bridge == nil {
		bridge = native.NewSystem(&native.Database{
			PasswdFile: cfg.PasswdFile,
			GroupFile:  cfg.GroupFile,
		})
	}

	p := Platform{
		cfg:    cfg,
		facts:  facts.New(),
		bridge: bridge,
		temp:   NewTempDir(cfg.TempRoot, cfg.ProductName),
		getenv: lookupEnv,
	}

	p.users = identity.New("uid", bridge.UserName)
	p.groups = identity.New("gid", bridge.GroupName)

	return &p
}

func (p *Platform) Config() *Config {
	return p.cfg
}

func (p *Platform) Facts() *facts.Facts {
	return p.facts
}

// ResolveUserName returns the login name of uid, or identity.Unknown.
func (p *Platform) ResolveUserName(uid uint32) string {
	return p.users.Resolve(uid)
}

// ResolveGroupName returns the name of gid, or identity.Unknown.
func (p *Platform) ResolveGroupName(gid uint32) string {
	return p.groups.Resolve(gid)
}

const Version = "0.1.0"
