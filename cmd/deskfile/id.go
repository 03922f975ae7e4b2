package main

import (
	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/spf13/cobra"
)

func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id <file>",
		Short: MsgIDShort,
		Long:  MsgIDLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}

			id := entry.ID(args[0], env.pth.ApplicationDirs())
			if id == "" {
				return errors.Newf(errors.ErrNotFound,
					"%s is not under any applications directory", args[0])
			}
			cmd.Println(id)
			return nil
		},
	}
	return cmd
}
