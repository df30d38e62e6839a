//go:build !unix

package host

import "os"

func getpid() int {
	return os.Getpid()
}

func getppid() int {
	return os.Getppid()
}
