//go:build !unix

package host

// KernelRelease is empty where uname is unavailable.
func KernelRelease() (string, error) {
	return "", nil
}
