package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/config"
	"github.com/Dicklesworthstone/envguard/internal/render"
	"github.com/Dicklesworthstone/envguard/internal/session"
	"github.com/Dicklesworthstone/envguard/internal/tui/icons"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
	"github.com/Dicklesworthstone/envguard/internal/tui/viewer"
	"github.com/Dicklesworthstone/envguard/internal/utils"
	"github.com/Dicklesworthstone/envguard/internal/watch"
)

var flagViewNoWatch bool

func init() {
	viewCmd.Flags().BoolVar(&flagViewNoWatch, "no-watch", false, "do not follow file and config changes")

	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open a live, masked view of a file",
	Long: `Open an interactive view of a file with its values masked.

The view follows edits to the file and changes to the envguard config.
Press t to toggle visibility, e to open the file in your editor, q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}

		cfg, err := loadConfig(nil)
		if err != nil {
			// The session falls back to defaults; keep going so the file stays masked.
			utils.Warn("config load failed, using defaults", "err", err)
			cfg = config.DefaultConfig()
		}
		theme.SetTheme(cfg.UI.Theme)

		applyIcons(cfg.UI.Icons)

		sessionID := uuid.NewString()
		logger, err := utils.InitViewerLogger(sessionID, cfg.General.LogLevel)
		if err != nil {
			return fmt.Errorf("init viewer log: %w", err)
		}
		// The TUI owns the terminal; package-level logging goes to the file too.
		prev := utils.GetDefaultLogger()
		utils.SetDefaultLogger(logger)
		defer utils.SetDefaultLogger(prev)

		opts := loadOptions(nil)
		renderer := render.NewRenderer(cfg.Mask.MaskChar)

		// The program needs the session for actions and the session needs the
		// program for its sink, so the sink forwards through a late-bound send.
		var (
			mu      sync.Mutex
			program *tea.Program
		)
		send := session.SinkFunc(func(s session.Snapshot) {
			mu.Lock()
			p := program
			mu.Unlock()
			if p != nil {
				p.Send(viewer.SnapshotMsg{Snapshot: s})
			}
		})

		sess := session.New(session.FileConfig{Options: opts}, send,
			session.Options{ID: sessionID, Logger: logger.WithPrefix("session")},
		)

		model := viewer.New(viewer.Options{
			Path:     path,
			Actions:  sess,
			Logger:   logger.WithPrefix("viewer"),
			Renderer: renderer,
		})
		p := tea.NewProgram(model, tea.WithAltScreen())
		mu.Lock()
		program = p
		mu.Unlock()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			_ = sess.Run(ctx)
		}()

		if cfg.Watch.Enabled && !flagViewNoWatch {
			w, err := watch.New(watch.Options{
				Debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
				Logger:   logger.WithPrefix("watch"),
			})
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.AddDocument(path); err != nil {
				return err
			}
			userPath, projectPath := opts.Paths()
			for _, cfgPath := range []string{userPath, projectPath} {
				if err := w.AddConfig(cfgPath); err != nil {
					logger.Warn("cannot watch config", "path", cfgPath, "err", err)
				}
			}
			go func() {
				if err := w.Run(ctx); err != nil {
					utils.Error("watcher stopped", "err", err)
				}
			}()
			go sess.Forward(ctx, w.Events())
		}

		if err := sess.Open(path); err != nil {
			return err
		}

		logger.Info("viewer started", "session", sess.ID(), "path", path, "watch", cfg.Watch.Enabled && !flagViewNoWatch)
		_, err = p.Run()
		logger.Info("viewer stopped", "updates", renderer.Updates())
		return err
	},
}

// applyIcons honours ui.icons; "auto" keeps terminal detection.
func applyIcons(setting string) {
	switch setting {
	case config.IconsNerd:
		icons.SetNerdFonts(true)
	case config.IconsASCII:
		icons.SetNerdFonts(false)
	}
}
