//go:build unix

package host

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// KernelRelease reports the running kernel's release string.
func KernelRelease() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}
