package domain

// SiteMeta holds site-wide settings shown by the theme.
type SiteMeta struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Meta        map[string]string `yaml:"meta" json:"meta"`
}

// Value returns the site meta value for key, or def when unset.
func (s SiteMeta) Value(key, def string) string {
	if v, ok := s.Meta[key]; ok && v != "" {
		return v
	}
	return def
}
