package cache

// Cache is the result-cache abstraction used by the services layer.
// Values are JSON strings so the memory and redis backends behave the same.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}
