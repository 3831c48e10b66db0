package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/printers"
	"tableflip.dev/monthpick/pkg/tui/components/monthpicker"
)

// EnvDebug names a file that receives the picker's log output.
const EnvDebug = "MONTHPICK_DEBUG"

// ErrNothingPicked is returned when the picker closed without a committed
// selection.
var ErrNothingPicked = errors.New("no month picked")

type Pick struct {
	Config *config.Config
	JSON   bool

	// Out receives the picked tokens, the UI itself is drawn on stderr.
	Out io.Writer
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not pick, no config")
	}
	opts, err := n.Config.PickerOptions()
	if err != nil {
		return err
	}

	if path := os.Getenv(EnvDebug); path != "" {
		logger, closeLog, err := openDebugLog(path)
		if err != nil {
			return err
		}
		defer closeLog()
		opts.Logger = logger
	}

	m := monthpicker.New(monthpicker.Options{
		Picker:       opts,
		QuitOnCommit: true,
		StartOpen:    true,
	})
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil {
		return err
	}

	change, ok := m.Result()
	if !ok || len(change.Tokens) == 0 {
		return ErrNothingPicked
	}
	if opts.Logger != nil {
		opts.Logger.Printf("pick: printing %s", change)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	return pp.Tokens(change.Tokens, n.JSON)
}

// openDebugLog points the standard logger at path for the lifetime of the
// program. The returned func closes the file and restores stderr.
func openDebugLog(path string) (*log.Logger, func(), error) {
	f, err := tea.LogToFile(path, "monthpick")
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	return log.Default(), func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
