//go:build darwin

package core

import (
	log "github.com/sirupsen/logrus"
)

func platformDefaults(s *InstanceSupport) {
	log.Info("enabling macOS portability enumeration")
	applyPortability(s)
}
