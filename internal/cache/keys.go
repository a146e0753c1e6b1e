package cache

import "strings"

const (
	GlobalKeyPrefix = "iamove"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizSessionKey is the cache key of one persisted quiz session.
func QuizSessionKey(sessionID string) string {
	return GenerateCacheKey("quiz", "session", sessionID)
}

// DiscoverySeenKey is the cache key of the session-scoped set of affordances
// a person has already discovered.
func DiscoverySeenKey(personID, sessionID string) string {
	return GenerateCacheKey("points", "seen", personID, sessionID)
}
