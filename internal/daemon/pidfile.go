// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// writePIDFile records the current pid at path. A pidfile pointing at a
// live process is a conflict; a stale one is replaced.
func writePIDFile(path string) error {
	if pid, err := readPIDFile(path); err == nil && processAlive(pid) {
		return gyruserr.Errorf(gyruserr.CodeDaemonAlreadyRunning, "daemon already running with pid %d", pid)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating pidfile directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return fmt.Errorf("writing pidfile %s: %w", path, err)
	}
	return nil
}

func removePIDFile(path string) {
	_ = os.Remove(path)
}

// readPIDFile returns the pid recorded at path.
func readPIDFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parsing pidfile %s: %w", path, err)
	}
	return pid, nil
}

// processAlive probes pid with signal 0.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}

// RunningPID returns the pid of a live daemon recorded at path, or
// CodeDaemonNotRunning when there is none.
func RunningPID(path string) (int, error) {
	pid, err := readPIDFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, gyruserr.New(gyruserr.CodeDaemonNotRunning, "daemon is not running")
		}
		return 0, err
	}
	if !processAlive(pid) {
		return 0, gyruserr.Errorf(gyruserr.CodeDaemonNotRunning, "daemon pid %d is not running", pid)
	}
	return pid, nil
}

// Stop signals the daemon recorded at path to terminate.
func Stop(path string) error {
	pid, err := RunningPID(path)
	if err != nil {
		return err
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding daemon process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("signalling daemon process %d: %w", pid, err)
	}
	return nil
}
