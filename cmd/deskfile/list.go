package main

import (
	"os"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/arthur-debert/deskfile/pkg/paths"
	"github.com/arthur-debert/deskfile/pkg/style"
	"github.com/arthur-debert/deskfile/pkg/ui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		allFlag    bool
		localeFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.list")
			env, err := newAppEnv()
			if err != nil {
				return err
			}

			loc := localeFlag
			if loc == "" {
				loc = environmentLocale()
			}

			styled := ui.DetectFormat(ui.FormatAuto, os.Stdout) == ui.FormatTerminal
			r := style.NewRenderer(styled)

			found := paths.Discover(env.fs, env.pth.ApplicationDirs())
			shown := 0
			for _, d := range found {
				f, err := paths.LoadEntry(env.fs, d.Path, document.DefaultOptions())
				if err != nil {
					logger.Debug().Err(err).Str("path", d.Path).Msg("Skipping unparseable entry")
					continue
				}
				if !allFlag && (f.NoDisplay() || f.Hidden()) {
					continue
				}

				name := f.LocalizedName(loc)
				if name == "" {
					name = d.ID
				}
				cmd.Printf("%s %s\n", r.Render(style.KeyStyle, d.ID), name)
				shown++
			}

			if shown == 0 {
				cmd.Println(MsgNoEntriesFound)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&allFlag, "all", "a", false, MsgFlagAll)
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", MsgFlagLocale)
	return cmd
}
