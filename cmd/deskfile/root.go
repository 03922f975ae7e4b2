package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/deskfile/pkg/cobrax/topics"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "deskfile",
		Short:   MsgRootShort,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	tm := loadTopics()

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newIDCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newTopicsCmd(tm))

	if tm != nil {
		tm.Attach(rootCmd)
	}

	return rootCmd
}

func loadTopics() *topics.Manager {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	tm, err := topics.New(sub, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		return nil
	}
	return tm
}

func newTopicsCmd(tm *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tm == nil || len(tm.Names()) == 0 {
				cmd.Println("No help topics available.")
				return nil
			}
			cmd.Println("Available help topics:")
			for _, name := range tm.Names() {
				cmd.Printf("  %s\n", name)
			}
			cmd.Println("\nUse 'deskfile help <topic>' to read one.")
			return nil
		},
	}
}
