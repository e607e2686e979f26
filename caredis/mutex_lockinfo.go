package caredis

import (
	"encoding/json"
	"os"
)

// lockInfo is a struct of data that can be appended to a lock as metadata to provide debugging
// information about which host obtained the lock.
type lockInfo struct {
	Hostname    string `json:"hostname,omitempty"`
	ProcessID   int    `json:"pid,omitempty"`
	Environment string `json:"environment,omitempty"`
	Pod         string `json:"pod,omitempty"`
}

func generateDetailedLockValue() string {
	hostname, _ := os.Hostname()

	info := lockInfo{
		Hostname:    hostname,
		ProcessID:   os.Getpid(),
		Environment: os.Getenv("ENV"),
		Pod:         os.Getenv("POD_NAME"),
	}

	value, err := json.Marshal(info)
	if err != nil {
		return ""
	}

	return string(value)
}
