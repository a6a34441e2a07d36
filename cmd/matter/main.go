package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hsek/matter"
	"github.com/yuin/goldmark"
)

var errCheckFailed = errors.New("check failed")

type CLI struct {
	Check  CheckCmd  `cmd:"" help:"Exit with 1 if any file lacks front matter."`
	Get    GetCmd    `cmd:"" help:"Print a front matter value as JSON."`
	Fmt    FmtCmd    `cmd:"" help:"Normalize or convert front matter in place."`
	Render RenderCmd `cmd:"" help:"Render content to HTML, front matter stripped."`

	Config  string           `help:"Path to config file." type:"path"`
	Verbose bool             `help:"Show per-file details." short:"v"`
	Version kong.VersionFlag `help:"Print version."`
}

// runContext carries shared state into subcommand Run methods.
type runContext struct {
	cfg     *Config
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Vars{"version": versionString()},
	)

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matter: %v\n", err)
		return 2
	}

	rc := &runContext{
		cfg:     cfg,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		verbose: cli.Verbose,
	}
	if err := ctx.Run(rc); err != nil {
		if errors.Is(err, errCheckFailed) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "matter: %v\n", err)
		return 2
	}
	return 0
}

// CheckCmd probes files for front matter without decoding it.
type CheckCmd struct {
	Paths []string `arg:"" help:"Files to check." type:"existingfile"`
}

func (c *CheckCmd) Run(rc *runContext) error {
	missing := false
	for _, path := range c.Paths {
		ok, err := matter.CheckFile(path)
		if err != nil {
			return err
		}
		if !ok {
			missing = true
		}
		if rc.verbose {
			state := "front matter"
			if !ok {
				state = "no front matter"
			}
			fmt.Fprintf(rc.stderr, "%s: %s\n", path, state)
		}
	}
	if missing {
		return errCheckFailed
	}
	return nil
}

// GetCmd prints a single metadata value from each file as JSON.
type GetCmd struct {
	Key   string   `arg:"" help:"Metadata key to look up."`
	Paths []string `arg:"" help:"Files to read." type:"existingfile"`
}

func (c *GetCmd) Run(rc *runContext) error {
	for _, path := range c.Paths {
		post, err := matter.LoadFile(path)
		if err != nil {
			return err
		}
		value, ok := post.Get(c.Key)
		if !ok {
			return fmt.Errorf("%s: key %q not found", path, c.Key)
		}
		enc := json.NewEncoder(rc.stdout)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("%s: encoding %q: %w", path, c.Key, err)
		}
	}
	return nil
}

// FmtCmd rewrites each file with canonically formatted front matter,
// optionally converting it to another encoding.
type FmtCmd struct {
	To        string   `help:"Target front matter format." enum:"yaml,toml,json," default:""`
	CheckOnly bool     `name:"check" help:"Exit with 1 if any file would change."`
	DryRun    bool     `help:"Show changes without writing." name:"dry-run"`
	Backup    bool     `help:"Create backup before writing."`
	Paths     []string `arg:"" help:"Files to format." type:"existingfile"`
}

func (c *FmtCmd) Run(rc *runContext) error {
	if c.CheckOnly && (c.Backup || c.DryRun) {
		return errors.New("--check cannot be combined with --backup or --dry-run")
	}

	to := c.To
	if to == "" {
		to = rc.cfg.Fmt.To
	}

	changed := false
	for _, path := range c.Paths {
		ch, err := c.formatFile(rc, path, to)
		if err != nil {
			return err
		}
		changed = changed || ch
	}
	if c.CheckOnly && changed {
		return errCheckFailed
	}
	return nil
}

func (c *FmtCmd) formatFile(rc *runContext, path, to string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	perm := info.Mode().Perm()

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	post, err := matter.LoadString(string(data))
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", path, err)
	}

	var opts []matter.Option
	if to != "" {
		opts = append(opts, matter.WithHandlerName(to))
	}
	out, err := matter.DumpString(post, opts...)
	if err != nil {
		return false, fmt.Errorf("formatting %s: %w", path, err)
	}

	changed := !bytes.Equal(data, []byte(out))
	if rc.verbose {
		if changed {
			fmt.Fprintf(rc.stderr, "%s: needs formatting\n", path)
		} else {
			fmt.Fprintf(rc.stderr, "%s: (no changes)\n", path)
		}
	}
	if c.CheckOnly || c.DryRun || !changed {
		return changed, nil
	}

	if c.Backup {
		backupPath := fmt.Sprintf("%s.backup.%s",
			path, time.Now().Format("20060102150405"))
		if err := os.WriteFile(backupPath, data, perm); err != nil {
			return false, fmt.Errorf("creating backup: %w", err)
		}
		if rc.verbose {
			fmt.Fprintf(rc.stderr, "%s: backup %s\n", path, backupPath)
		}
	}
	if err := writeFile(path, []byte(out), perm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// RenderCmd strips front matter and renders the remaining content as
// HTML to stdout.
type RenderCmd struct {
	Paths []string `arg:"" help:"Files to render." type:"existingfile"`
}

func (c *RenderCmd) Run(rc *runContext) error {
	md := goldmark.New()
	for _, path := range c.Paths {
		post, err := matter.LoadFile(path)
		if err != nil {
			return err
		}
		if err := md.Convert([]byte(post.Content), rc.stdout); err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
	}
	return nil
}

// writeFile writes data to path atomically: through a temp file in the
// same directory, fsynced and renamed into place, preserving perm.
// Symlinks are resolved first so the target file is replaced, not the
// link.
func writeFile(path string, data []byte, perm os.FileMode) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("resolving path: %w", err)
	}
	if err == nil {
		path = resolved
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	closed = true

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
