package core

import (
	"sort"

	"github.com/0xef53/go-osal/internal/native"
)

func nativeResource(kind Resource) (int, bool) {
	id, ok := nativeResources[kind]

	return id, ok
}

// GetLimit returns the current and maximum value of the given resource limit.
func (p *Platform) GetLimit(kind Resource) (*ResourceLimitInfo, error) {
	id, ok := nativeResource(kind)
	if !ok {
		return nil, unsupported("getrlimit " + kind.String())
	}

	var rl native.RLimit

	if err := p.bridge.GetRLimit(id, &rl); err != nil {
		return nil, nativeCallFailed("getrlimit", kind.String(), err)
	}

	return &ResourceLimitInfo{
		Resource: kind,
		Current:  rl.Current,
		Maximum:  rl.Maximum,
	}, nil
}

// SetLimit applies info. Raising the maximum requires privileges,
// and the OS rejects a current value above the maximum.
func (p *Platform) SetLimit(info *ResourceLimitInfo) error {
	if info == nil {
		return validationFailed("no resource limit given")
	}

	id, ok := nativeResource(info.Resource)
	if !ok {
		return unsupported("setrlimit " + info.Resource.String())
	}

	rl := native.RLimit{
		Current: info.Current,
		Maximum: info.Maximum,
	}

	if err := p.bridge.SetRLimit(id, &rl); err != nil {
		return nativeCallFailed("setrlimit", info.Resource.String(), err)
	}

	return nil
}

// Limits returns all resource limits supported on this platform
// ordered by kind.
func (p *Platform) Limits() ([]*ResourceLimitInfo, error) {
	kinds := make([]Resource, 0, len(nativeResources))

	for k := range nativeResources {
		kinds = append(kinds, k)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	limits := make([]*ResourceLimitInfo, 0, len(kinds))

	for _, k := range kinds {
		info, err := p.GetLimit(k)
		if err != nil {
			return nil, err
		}

		limits = append(limits, info)
	}

	return limits, nil
}
