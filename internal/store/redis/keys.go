package redis

import "fmt"

// documentKey returns the Redis key holding the whole backing document
func documentKey(prefix string) string {
	return fmt.Sprintf("%s:document", prefix)
}
