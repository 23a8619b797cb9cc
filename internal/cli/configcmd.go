package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	data, err := yaml.Marshal(ctx.config())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if ctx.ConfigPath != "" {
		ctx.printf("%s\n", dimStyle.Render("# "+ctx.ConfigPath))
	}
	ctx.printf("%s", data)
	return nil
}
