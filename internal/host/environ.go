package host

import "strings"

// parseEnviron converts KEY=value entries into a map.
// Entries without '=' or with an empty key are skipped; the last duplicate wins.
func parseEnviron(raw []string) map[string]string {
	env := make(map[string]string, len(raw))
	for _, kv := range raw {
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			env[kv[:idx]] = kv[idx+1:]
		}
	}
	return env
}
