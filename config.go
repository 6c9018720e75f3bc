package huf

import (
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Config controls how an input is read and decoded.
type Config struct {
	// Container is the format the encoded stream is wrapped in.
	Container Container `json:"container,omitempty"`

	// MaxTreeDepth bounds the depth of the code tree.
	MaxTreeDepth int `json:"maxTreeDepth,omitempty"`
}

// DefaultConfig returns the configuration for raw streams.
func DefaultConfig() Config {
	return Config{
		Container:    ContainerRaw,
		MaxTreeDepth: DefaultMaxTreeDepth,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Container == "" {
		c.Container = def.Container
	}
	if c.MaxTreeDepth == 0 {
		c.MaxTreeDepth = def.MaxTreeDepth
	}
	return c
}

// Validate reports whether c names a known container and a usable tree depth.
func (c Config) Validate() error {
	c = c.withDefaults()
	if !c.Container.valid() {
		return errors.Errorf("unknown container %q", c.Container)
	}
	if c.MaxTreeDepth < 0 {
		return errors.Errorf("negative maxTreeDepth %d", c.MaxTreeDepth)
	}
	return nil
}

// A Job is one input file to decode into one output file.
type Job struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// A Manifest lists decode jobs and the configuration they share.
type Manifest struct {
	Config

	// Concurrency is the maximum number of jobs decoded at once; 0 means no limit.
	Concurrency int   `json:"concurrency,omitempty"`
	Jobs        []Job `json:"jobs"`
}

// ParseManifest parses a YAML or JSON manifest.
func ParseManifest(b []byte) (Manifest, error) {
	m := Manifest{}
	if err := yaml.UnmarshalStrict(b, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "")
	}
	m.Config = m.Config.withDefaults()
	if err := m.Config.Validate(); err != nil {
		return Manifest{}, errors.Wrap(err, "")
	}
	if m.Concurrency < 0 {
		return Manifest{}, errors.Errorf("negative concurrency %d", m.Concurrency)
	}
	for i, j := range m.Jobs {
		if j.In == "" || j.Out == "" {
			return Manifest{}, errors.Errorf("job %d: both in and out are required", i)
		}
	}
	return m, nil
}
