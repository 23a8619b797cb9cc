package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/dayface/internal/config"
)

type InitCmd struct {
	Force bool `help:"Delete the existing event store before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.printf("Deleted existing store at: %s\n", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized dayface storage at: %s\n", path)

	if ctx.ConfigPath != "" {
		if err := config.Save(ctx.ConfigPath, ctx.config()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		ctx.printf("Config: %s\n", ctx.ConfigPath)
	}
	return nil
}
