package mods

import (
	"context"
	"fmt"
	"os"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a manifest bundle from src into dst. src accepts any
// go-getter address, e.g. a git repository subdirectory:
//
//	git::https://example.com/pack.git//mods?ref=v1.2.0
//
// dst is replaced.
func Fetch(ctx context.Context, src, dst string) error {
	if src == "" {
		return fmt.Errorf("fetch: source required")
	}
	if dst == "" {
		return fmt.Errorf("fetch: destination required")
	}
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}
	return nil
}
