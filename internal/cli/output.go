package cli

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type feeView struct {
	Base     int `yaml:"base"`
	Distance int `yaml:"distance"`
	Total    int `yaml:"total"`
}

type etaView struct {
	Seconds float64 `yaml:"seconds"`
	Source  string  `yaml:"source"`
}
