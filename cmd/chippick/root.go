package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stefanclaw/chippick/internal/config"
	"github.com/stefanclaw/chippick/internal/directory"
	"github.com/stefanclaw/chippick/internal/logging"
	"github.com/stefanclaw/chippick/internal/tui"
)

// options collects the root flags. Flags override config.yaml, which
// overrides the defaults.
type options struct {
	directory string
	asYAML    bool
	noMouse   bool
	logFile   string
	verbose   bool
}

// NewRootCmd creates the chippick command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "chippick",
		Short: "Pick people from a directory in the terminal",
		Long: `chippick opens a search box over a directory of people. Type to filter,
use ↑/↓ and enter (or click) to add people as chips, and backspace on an
empty input to remove the last chip. Press ctrl+s to print the selection
to stdout, or esc to cancel.

The directory is read from --directory, the "directory" key of config.yaml
in $CHIPPICK_CONFIG_DIR (default ~/.config/chippick), or the built-in list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPicker(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.directory, "directory", "d", "", "path to a directory YAML file")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&opts.asYAML, "yaml", false, "print the selection as YAML")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	root.AddCommand(
		newListCmd(&opts),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// loadDirectory picks the directory source: flag, then config, then built-in.
func loadDirectory(flagPath string, cfg config.Config) (directory.Directory, error) {
	path := flagPath
	if path == "" {
		path = config.Resolve(cfg.Directory)
	}
	if path == "" {
		return directory.Default(), nil
	}
	dir, err := directory.Load(path)
	if err != nil {
		return directory.Directory{}, fmt.Errorf("loading directory %s: %w", path, err)
	}
	return dir, nil
}

func runPicker(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile := opts.logFile
	if logFile == "" {
		logFile = config.Resolve(cfg.Log.File)
	}
	logger, err := logging.New(logFile, cfg.Log.Level, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir, err := loadDirectory(opts.directory, cfg)
	if err != nil {
		return err
	}
	logger.Info("starting picker", zap.Int("entries", dir.Len()))

	model := tui.New(tui.Options{
		Directory:   dir,
		Header:      cfg.UI.Header,
		Placeholder: cfg.UI.Placeholder,
		EmptyText:   cfg.UI.EmptyText,
		Logger:      logger,
	})

	// The UI draws on stderr so stdout carries only the selection.
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if cfg.UI.Mouse && !opts.noMouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok || !result.Confirmed() {
		return nil
	}
	return writeSelection(cmd.OutOrStdout(), result.Chips(), opts.asYAML)
}
