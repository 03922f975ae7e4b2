package main

import (
	"os"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/config"
	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/execline"
	"github.com/arthur-debert/deskfile/pkg/launch"
	"github.com/arthur-debert/deskfile/pkg/style"
	"github.com/arthur-debert/deskfile/pkg/ui"
	"github.com/spf13/cobra"
)

func newLaunchCmd() *cobra.Command {
	var (
		actionFlag   string
		dryRunFlag   bool
		localeFlag   string
		terminalFlag string
	)

	cmd := &cobra.Command{
		Use:   "launch <file-or-id> [url...]",
		Short: MsgLaunchShort,
		Long:  MsgLaunchLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}

			f, err := env.resolveEntry(args[0])
			if err != nil {
				return err
			}
			urls := args[1:]

			loc := localeFlag
			if loc == "" {
				loc = environmentLocale()
			}

			launcher := launch.New(launchOptions(env.cfg, loc, terminalFlag))

			var action *entry.Action
			if actionFlag != "" {
				a, ok := f.Action(actionFlag)
				if !ok {
					return errors.Newf(errors.ErrNotFound, MsgErrUnknownAction, args[0], actionFlag)
				}
				action = a
			}

			if dryRunFlag {
				return printPlan(cmd, launcher, f, action, urls)
			}

			if action != nil {
				if err := launcher.LaunchAction(f, action, urls); err != nil {
					return err
				}
			} else if err := launcher.Open(f, urls); err != nil {
				return err
			}

			cmd.Printf(MsgLaunched, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&actionFlag, "action", "", MsgFlagAction)
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", MsgFlagLocale)
	cmd.Flags().StringVar(&terminalFlag, "terminal", "", MsgFlagTerminal)
	return cmd
}

// launchOptions maps the config file and flags onto launch.Options
func launchOptions(cfg *config.Config, loc, terminalOverride string) launch.Options {
	opts := launch.DefaultOptions()
	opts.AllowExec = cfg.Launch.AllowExec
	opts.AllowFollowLink = cfg.Launch.AllowFollowLink
	opts.AllowMultipleInstances = cfg.Launch.AllowMultipleInstances
	opts.Locale = loc

	if terminalOverride != "" {
		opts.Terminal = launch.FixedTerminal(strings.Fields(terminalOverride))
	} else if len(cfg.Terminal.Command) > 0 {
		opts.Terminal = launch.FixedTerminal(cfg.Terminal.Command)
	}
	return opts
}

func printPlan(cmd *cobra.Command, launcher *launch.Launcher, f *entry.File, action *entry.Action, urls []string) error {
	styled := ui.DetectFormat(ui.FormatAuto, os.Stdout) == ui.FormatTerminal
	r := style.NewRenderer(styled)

	if action == nil && f.Type() == entry.TypeLink {
		cmd.Printf("Would open URL: %s\n", r.Render(style.PathStyle, f.URL()))
		cmd.Println(MsgDryRunNotice)
		return nil
	}

	var plan launch.Plan
	var err error
	if action != nil {
		plan, err = launcher.PlanAction(f, action, urls)
	} else {
		plan, err = launcher.Plan(f, urls)
	}
	if err != nil {
		return err
	}

	for _, argv := range plan.Argvs {
		cmd.Println(r.Render(style.CodeStyle, execline.BuildExecString(argv)))
	}
	if plan.WorkingDir != "" {
		cmd.Printf("Working directory: %s\n", r.Render(style.PathStyle, plan.WorkingDir))
	}
	cmd.Println(MsgDryRunNotice)
	return nil
}
