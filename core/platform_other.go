//go:build !darwin

package core

func platformDefaults(*InstanceSupport) {}
