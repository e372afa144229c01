package system

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	instanceID     string
	instanceIDOnce sync.Once
)

// InstanceID identifies this proxy process in status output. It is generated
// once per process.
func InstanceID() string {
	instanceIDOnce.Do(func() {
		hostname, _ := os.Hostname()
		instanceID = fmt.Sprintf("%s-%d-%d", hostname, os.Getpid(), time.Now().UnixNano())
	})
	return instanceID
}
