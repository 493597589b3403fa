package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/gqlselect/internal/config"
)

// schemaExts are the extensions of files that trigger a regeneration.
var schemaExts = map[string]struct{}{
	".graphql":  {},
	".graphqls": {},
	".gql":      {},
	".json":     {},
}

func newWatchCmd(o *options) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the schema or the project file changes",
		Long: `Generate every output of the project file, then watch the schema
files and the project file and generate again on every change. Errors are
logged and the watch continues.

Examples:
  gqlselect watch
  gqlselect watch --debounce 500ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &watcher{
				configPath: o.configPath,
				debounce:   debounce,
				logger:     o.logger,
			}
			return w.run(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "Quiet period before regenerating")
	return cmd
}

// watcher regenerates a project on file changes.
type watcher struct {
	configPath string
	debounce   time.Duration
	logger     *log.Logger

	// generated is signaled after every generation attempt, if set.
	generated chan<- error
}

// run blocks until ctx is done.
func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	configPath, err := filepath.Abs(w.configPath)
	if err != nil {
		return err
	}
	w.generate(ctx, fw, configPath)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev, configPath) {
				continue
			}
			w.logger.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.generate(ctx, fw, configPath)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// generate runs the project once and refreshes the watched directories.
// Errors are logged.
func (w *watcher) generate(ctx context.Context, fw *fsnotify.Watcher, configPath string) {
	err := w.regenerate(ctx, fw, configPath)
	if err != nil {
		w.logger.Error("generation failed", "error", err)
	}
	if w.generated != nil {
		select {
		case w.generated <- err:
		case <-ctx.Done():
		}
	}
}

func (w *watcher) regenerate(ctx context.Context, fw *fsnotify.Watcher, configPath string) error {
	dirs := map[string]struct{}{filepath.Dir(configPath): {}}
	defer func() {
		for dir := range dirs {
			if err := fw.Add(dir); err != nil {
				w.logger.Warn("cannot watch directory", "dir", dir, "error", err)
			}
		}
	}()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	files, err := cfg.SchemaFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	return runProject(ctx, w.logger, cfg)
}

// relevant reports whether ev touches the project file or a schema file.
func (w *watcher) relevant(ev fsnotify.Event, configPath string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if filepath.Clean(ev.Name) == configPath {
		return true
	}
	_, ok := schemaExts[strings.ToLower(filepath.Ext(ev.Name))]
	return ok
}
