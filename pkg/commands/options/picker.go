package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/config"
)

// PickerOptions holds the picker flags. The flags are read back through
// config.Load, which binds them by name, so these fields only carry what
// the command line said.
type PickerOptions struct {
	Mode     string
	Locale   string
	Min      string
	Max      string
	Allow    []string
	Disallow []string
	Default  []string
}

// AddPickerArgs registers the shared picker flags. Their names match the
// config keys so command line values override env and file settings.
func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	cmd.Flags().StringVar(&o.Mode, config.KeyMode, "single",
		`Selection mode, "single" or "range".`)
	cmd.Flags().StringVar(&o.Locale, config.KeyLocale, "de",
		`Locale for month names, "de" or "en".`)
	cmd.Flags().StringVar(&o.Min, config.KeyMin, "",
		`Earliest selectable month, example: --min=01/2024.`)
	cmd.Flags().StringVar(&o.Max, config.KeyMax, "",
		`Latest selectable month, example: --max=12/2025.`)
	cmd.Flags().StringSliceVar(&o.Allow, config.KeyAllow, nil,
		`Only these months are selectable, example: --allow=01/2025,02/2025.`)
	cmd.Flags().StringSliceVar(&o.Disallow, config.KeyDisallow, nil,
		`Months that can never be selected.`)
	cmd.Flags().StringSliceVar(&o.Default, config.KeyDefault, nil,
		`Initial value, one token in single mode or FROM,TO in range mode.`)
}
