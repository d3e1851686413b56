package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alkime/gradients/internal/clipboard"
	"github.com/alkime/gradients/internal/config"
	"github.com/alkime/gradients/internal/export"
	"github.com/alkime/gradients/internal/logger"
	"github.com/alkime/gradients/internal/tui"
	"github.com/alkime/gradients/pkg/gradient"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the gradients command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the terminal gradient editor"`

	// Subcommands
	Compile CompileCmd `cmd:"" help:"Print the CSS for a gradient"`
	Export  ExportCmd  `cmd:"" help:"Render a gradient to an SVG or PNG file"`
	AddStop AddStopCmd `cmd:"" name:"add-stop" help:"Show where a new stop would be inserted"`
}

// TUICmd is the default command that runs the editor.
type TUICmd struct {
	LogFile string `flag:"" optional:"" help:"Write logs to this file while the editor runs"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(cfg *config.Config) error {
	// The editor owns the terminal; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		//nolint:gosec // Path comes from the user's own flag
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.SetupCLILogger(logOut, logger.Level(cfg))

	model := tui.New(tui.Config{
		Store:         gradient.DefaultStore(cfg.StoreOptions()),
		Clipboard:     clipboard.NewOSC52(nil),
		PreviewWidth:  cfg.PreviewWidth,
		PreviewHeight: cfg.PreviewHeight,
	})

	slog.Debug("Starting editor", "defer_sort", cfg.DeferSort, "clamp_opacity", cfg.ClampOpacity)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	// Leave the last gradient on screen after the alt screen closes.
	if m, ok := final.(tui.Model); ok {
		fmt.Println(m.Store().Declaration())
	}

	return nil
}

// CompileCmd prints the CSS for a gradient.
type CompileCmd struct {
	GradientFlags `embed:""`

	StopsOnly   bool `flag:"" name:"stops-only" help:"Print the left-to-right stops strip instead"`
	Declaration bool `flag:"" help:"Print a full 'background: ...;' declaration"`
}

// Run executes the compile command.
func (c *CompileCmd) Run(cfg *config.Config) error {
	store, err := c.Store(cfg.StoreOptions())
	if err != nil {
		return err
	}

	css := store.CSS()
	if c.StopsOnly {
		css = store.StopsPreviewCSS()
	}

	if c.Declaration {
		css = gradient.Declaration(css)
	}

	fmt.Println(css)

	return nil
}

// ExportCmd renders a gradient to an image file.
type ExportCmd struct {
	GradientFlags `embed:""`

	Format string `arg:"" enum:"svg,png" help:"Output format: svg or png"`
	Out    string `flag:"" short:"o" optional:"" help:"Output file path (default: stdout)"`
	Width  int    `flag:"" default:"640" help:"Image width in pixels"`
	Height int    `flag:"" default:"352" help:"Image height in pixels"`
}

// Run executes the export command.
func (c *ExportCmd) Run(cfg *config.Config) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	store, err := c.Store(cfg.StoreOptions())
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	size := export.Size{Width: c.Width, Height: c.Height}
	if err := export.Write(out, format, store.Stops(), store.Config(), size); err != nil {
		return fmt.Errorf("failed to export %s: %w", format, err)
	}

	slog.Debug("Exported gradient", "format", format, "out", c.Out, "width", c.Width, "height", c.Height)

	return nil
}

// AddStopCmd shows where the editor would insert a new stop.
type AddStopCmd struct {
	GradientFlags `embed:""`
}

// Run executes the add-stop command.
func (c *AddStopCmd) Run(cfg *config.Config) error {
	store, err := c.Store(cfg.StoreOptions())
	if err != nil {
		return err
	}

	store, id := store.Add()
	stop, _ := store.Stop(id)

	fmt.Printf("%d%% %s\n", stop.Position, stop.Color)
	fmt.Println(store.CSS())

	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr so stdout stays clean for CSS and images
	logger.SetupCLILogger(os.Stderr, logger.Level(cfg))

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("gradients"),
		kong.Description("Compose CSS gradients from color stops."),
	)
	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
