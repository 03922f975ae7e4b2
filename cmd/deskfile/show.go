package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/style"
	"github.com/arthur-debert/deskfile/pkg/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// showOutput is the machine-readable projection of an entry
type showOutput struct {
	Path        string         `yaml:"path"`
	ID          string         `yaml:"id,omitempty"`
	Type        string         `yaml:"type"`
	Name        string         `yaml:"name"`
	GenericName string         `yaml:"genericName,omitempty"`
	Comment     string         `yaml:"comment,omitempty"`
	Icon        string         `yaml:"icon,omitempty"`
	Exec        string         `yaml:"exec,omitempty"`
	TryExec     string         `yaml:"tryExec,omitempty"`
	URL         string         `yaml:"url,omitempty"`
	WorkingDir  string         `yaml:"workingDir,omitempty"`
	Terminal    bool           `yaml:"terminal"`
	NoDisplay   bool           `yaml:"noDisplay,omitempty"`
	Hidden      bool           `yaml:"hidden,omitempty"`
	Categories  []string       `yaml:"categories,omitempty"`
	MimeTypes   []string       `yaml:"mimeTypes,omitempty"`
	Keywords    []string       `yaml:"keywords,omitempty"`
	Actions     []actionOutput `yaml:"actions,omitempty"`
}

type actionOutput struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Exec string `yaml:"exec,omitempty"`
}

func newShowCmd() *cobra.Command {
	var (
		localeFlag string
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:   "show <file-or-id>",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}

			f, err := env.resolveEntry(args[0])
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			format = ui.DetectFormat(format, os.Stdout)

			loc := localeFlag
			if loc == "" {
				loc = environmentLocale()
			}

			out := projectEntry(f, loc, env.pth.ApplicationDirs())
			if format == ui.FormatYAML {
				data, err := yaml.Marshal(out)
				if err != nil {
					return err
				}
				cmd.Print(string(data))
				return nil
			}

			printEntry(cmd, out, loc, format == ui.FormatTerminal)
			return nil
		},
	}

	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", MsgFlagLocale)
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

func projectEntry(f *entry.File, loc string, baseDirs []string) showOutput {
	out := showOutput{
		Path:        f.FileName(),
		ID:          f.DesktopID(baseDirs),
		Type:        f.Type().String(),
		Name:        f.LocalizedName(loc),
		GenericName: f.LocalizedGenericName(loc),
		Comment:     f.LocalizedComment(loc),
		Icon:        f.Icon(),
		Exec:        f.Exec(),
		TryExec:     f.TryExec(),
		URL:         f.URL(),
		WorkingDir:  f.WorkingDirectory(),
		Terminal:    f.Terminal(),
		NoDisplay:   f.NoDisplay(),
		Hidden:      f.Hidden(),
		Categories:  f.Categories(),
		MimeTypes:   f.MimeTypes(),
		Keywords:    f.Keywords(),
	}
	for _, a := range f.Actions() {
		out.Actions = append(out.Actions, actionOutput{
			ID:   a.ID(),
			Name: a.LocalizedName(loc),
			Exec: a.Exec(),
		})
	}
	return out
}

func printEntry(cmd *cobra.Command, out showOutput, loc string, styled bool) {
	r := style.NewRenderer(styled)

	title := out.Name
	if title == "" {
		title = out.Path
	}
	header := r.Render(style.TitleStyle, title)
	if out.ID != "" {
		header += " " + r.Render(style.MutedStyle, "("+out.ID+")")
	}
	cmd.Println(header)
	if loc != "" {
		cmd.Println(r.Render(style.LocaleStyle, "locale: "+loc))
	}
	cmd.Println()

	printField(cmd, r, "Type", out.Type)
	printField(cmd, r, "GenericName", out.GenericName)
	printField(cmd, r, "Comment", out.Comment)
	printField(cmd, r, "Icon", out.Icon)
	printField(cmd, r, "Exec", out.Exec)
	printField(cmd, r, "TryExec", out.TryExec)
	printField(cmd, r, "URL", out.URL)
	printField(cmd, r, "Path", out.WorkingDir)
	if out.Terminal {
		printField(cmd, r, "Terminal", "true")
	}
	if out.NoDisplay {
		printField(cmd, r, "NoDisplay", "true")
	}
	if out.Hidden {
		printField(cmd, r, "Hidden", "true")
	}
	printField(cmd, r, "Categories", strings.Join(out.Categories, ", "))
	printField(cmd, r, "MimeTypes", strings.Join(out.MimeTypes, ", "))
	printField(cmd, r, "Keywords", strings.Join(out.Keywords, ", "))

	if len(out.Actions) > 0 {
		cmd.Println()
		cmd.Println(r.Render(style.SubtitleStyle, "Actions"))
		for _, a := range out.Actions {
			line := fmt.Sprintf("%s: %s", a.ID, a.Name)
			if a.Exec != "" {
				line += " " + r.Render(style.MutedStyle, "["+a.Exec+"]")
			}
			cmd.Println(r.Render(style.ListItemStyle, line))
		}
	}
}

func printField(cmd *cobra.Command, r *style.Renderer, key, value string) {
	if value == "" {
		return
	}
	cmd.Printf("%s %s\n", r.Render(style.KeyStyle, key+":"), value)
}
