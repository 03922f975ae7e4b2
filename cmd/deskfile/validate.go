package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/paths"
	"github.com/arthur-debert/deskfile/pkg/style"
	"github.com/arthur-debert/deskfile/pkg/ui"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: MsgValidateShort,
		Long:  MsgValidateLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}

			styled := ui.DetectFormat(ui.FormatAuto, os.Stdout) == ui.FormatTerminal
			r := style.NewRenderer(styled)

			failed := 0
			for _, path := range args {
				_, err := paths.LoadEntry(env.fs, path, document.StrictOptions())
				if err != nil {
					failed++
					cmd.Printf(MsgValidateFailed, r.Render(style.PathStyle, path),
						r.Render(style.ErrorStyle, err.Error()))
					continue
				}
				cmd.Printf(MsgValidateOK, r.Render(style.PathStyle, path))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}
