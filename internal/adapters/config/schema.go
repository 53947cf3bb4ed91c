package config

// Manifest represents the structure of the skill.yaml bundle manifest.
type Manifest struct {
	Name         string   `yaml:"name"`
	Items        []string `yaml:"items"`
	Dependencies string   `yaml:"dependencies"`
	Usage        string   `yaml:"usage"`
}
