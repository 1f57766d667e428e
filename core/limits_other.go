//go:build !linux && !darwin

package core

var nativeResources = map[Resource]int{}
