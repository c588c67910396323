//go:build unix

package sortcount

import (
	"syscall"
	"testing"
	"time"
)

func TestSetupSignalHandler(t *testing.T) {
	stopCh := SetupSignalHandler()
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("failed to send interrupt with error: %+v", err)
	}
	select {
	case <-stopCh:
	case <-time.After(5 * time.Second):
		t.Fatalf("stop channel supposed to be closed")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("second call supposed to panic")
		}
	}()
	SetupSignalHandler()
}
