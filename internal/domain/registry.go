package domain

// Registry keys shared by the post list helpers.
const (
	RegistryTotalTaggedPosts = "total_tagged_posts"
	RegistryTotalPosts       = "total_posts"
	RegistryArticle          = "article"
)

// Registry is a request-scoped key/value store. It lives for exactly one
// request and is not safe for concurrent use.
type Registry struct {
	values map[string]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]any)}
}

// Get returns the value stored under key, or def when none is set.
func (r *Registry) Get(key string, def any) any {
	if v, ok := r.values[key]; ok {
		return v
	}
	return def
}

// Lookup returns the value stored under key and whether it was set.
func (r *Registry) Lookup(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (r *Registry) Set(key string, value any) {
	r.values[key] = value
}

// Int returns the int stored under key, or def when absent or of another type.
func (r *Registry) Int(key string, def int) int {
	if v, ok := r.values[key].(int); ok {
		return v
	}
	return def
}
