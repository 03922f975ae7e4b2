// Package topics provides a pluggable, topic-based help system for
// Cobra CLI applications. Topics are loaded from a file system, usually
// an embed.FS, and served through the standard `help` machinery so that
// `app help <topic>` works alongside `app help <command>`.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic represents a single help topic
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for display. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// Manager holds the loaded topics for a Cobra application
type Manager struct {
	topics       map[string]*Topic
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// New loads all topics from fsys
func New(fsys fs.FS, opts Options) (*Manager, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}

	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		supported := false
		for _, validExt := range opts.Extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	return m, nil
}

// Names returns all topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Render formats a topic for display
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Format)
}

// Attach hooks the manager into the root command's help function, so
// `help <topic>` displays the topic and everything else falls through
// to Cobra's help.
func (m *Manager) Attach(root *cobra.Command) {
	m.originalHelp = root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			if t, ok := m.Get(arg); ok {
				cmd.Print(m.Render(t))
				return
			}
		}
		m.originalHelp(cmd, args)
	})
}
