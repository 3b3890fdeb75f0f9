package config

import (
	"fmt"
	"os"

	"tagtheme/internal/domain"

	"gopkg.in/yaml.v3"
)

// LoadSiteMeta reads the site metadata YAML file at path. An empty path
// yields empty metadata.
//
//	name: My Blog
//	description: Notes
//	meta:
//	  twitter: "@me"
func LoadSiteMeta(path string) (domain.SiteMeta, error) {
	site := domain.SiteMeta{Meta: map[string]string{}}
	if path == "" {
		return site, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return site, fmt.Errorf("read site meta: %w", err)
	}
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return site, fmt.Errorf("parse site meta %s: %w", path, err)
	}
	if site.Meta == nil {
		site.Meta = map[string]string{}
	}
	return site, nil
}
