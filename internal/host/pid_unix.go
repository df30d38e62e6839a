//go:build unix

package host

import "golang.org/x/sys/unix"

func getpid() int {
	return unix.Getpid()
}

func getppid() int {
	return unix.Getppid()
}
