package envutil

import (
	"os"

	"gopkg.in/yaml.v3"
)

type yamlEnvFile struct {
	Env map[string]string `yaml:"env"`
}

// LoadYAMLFile parses a YAML file and returns the string map found under its
// top-level "env" key:
//
//	env:
//	  SORT_ALGORITHM: quick
//	  SORT_PIVOT: median-of-three
func LoadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	return ParseYAML(bts)
}

// ParseYAML is LoadYAMLFile for content already in memory.
func ParseYAML(bts []byte) (map[string]string, error) {
	env := &yamlEnvFile{}

	if err := yaml.Unmarshal(bts, env); err != nil {
		return nil, err
	}

	if env.Env == nil {
		return map[string]string{}, nil
	}

	return env.Env, nil
}
