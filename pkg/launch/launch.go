// Package launch turns a desktop entry into running processes. Planning
// (which argvs, how many processes, which working directory) is pure and
// testable; the actual process creation, URL opening, and terminal
// detection sit behind narrow capability interfaces that callers may
// replace.
package launch

import (
	"os/exec"

	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/execline"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/rs/zerolog"
)

// Spawner creates a process from an argument vector. Implementations
// must return once the process is started; nothing here waits for exit.
type Spawner interface {
	Spawn(argv []string, workDir string) error
}

// Opener opens a URL, used for Link entries
type Opener func(url string) error

// TerminalDetector resolves the command vector a terminal application is
// wrapped in, e.g. ["x-terminal-emulator", "-e"]. An empty result means
// no terminal emulator could be found.
type TerminalDetector func() []string

// Options is the launch configuration value object. The zero value
// forbids everything; use DefaultOptions for the permissive default.
type Options struct {
	// AllowExec permits launching Application entries
	AllowExec bool

	// AllowFollowLink permits opening Link entries through the Opener
	AllowFollowLink bool

	// AllowMultipleInstances permits one process per url when the Exec
	// template only carries singular field codes. When false such a
	// template is launched once, consuming only the first url.
	AllowMultipleInstances bool

	// Locale selects the localized display name for %c expansion
	Locale string

	// Terminal, Opener, and Spawner are the injectable collaborators.
	// Nil fields fall back to the OS-backed defaults.
	Terminal TerminalDetector
	Opener   Opener
	Spawner  Spawner
}

// DefaultOptions allows launching and link following with OS-backed
// collaborators
func DefaultOptions() Options {
	return Options{
		AllowExec:              true,
		AllowFollowLink:        true,
		AllowMultipleInstances: true,
	}
}

// Plan is the resolved outcome of launch planning: one argv per process
// to create, all sharing a working directory
type Plan struct {
	Argvs      [][]string
	WorkingDir string
}

// Launcher plans and performs entry launches under one Options value
type Launcher struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Launcher, filling in OS-backed collaborators for any the
// options leave nil
func New(opts Options) *Launcher {
	if opts.Spawner == nil {
		opts.Spawner = &OSSpawner{}
	}
	if opts.Opener == nil {
		opts.Opener = openWithXDGOpen
	}
	if opts.Terminal == nil {
		opts.Terminal = DetectTerminal
	}
	return &Launcher{
		opts:   opts,
		logger: logging.GetLogger("launch"),
	}
}

// Plan computes the argument vectors for launching f with the given
// urls. The plan honors the multi-instance rule: a template with only
// singular url codes is expanded once per url.
func (l *Launcher) Plan(f *entry.File, urls []string) (Plan, error) {
	return l.planExec(f, f.Exec(), urls)
}

// PlanAction computes the argument vectors for one of f's actions
func (l *Launcher) PlanAction(f *entry.File, a *entry.Action, urls []string) (Plan, error) {
	return l.planExec(f, a.Exec(), urls)
}

func (l *Launcher) planExec(f *entry.File, execValue string, urls []string) (Plan, error) {
	tokens, err := execline.Unquote(execValue)
	if err != nil {
		return Plan{}, err
	}
	if len(tokens) == 0 {
		return Plan{}, errors.New(errors.ErrEmptyExec, "exec template has no arguments")
	}

	ctx := execline.Context{
		Icon:        f.Icon(),
		DisplayName: f.LocalizedName(l.opts.Locale),
		FileName:    f.FileName(),
	}

	var argvSets [][]string
	params := execline.ScanParams(tokens)
	if params.NeedsMultipleInstances() && len(urls) > 1 && l.opts.AllowMultipleInstances {
		for _, u := range urls {
			ctx.URLs = []string{u}
			argv, err := execline.Expand(tokens, ctx)
			if err != nil {
				return Plan{}, err
			}
			argvSets = append(argvSets, argv)
		}
	} else {
		ctx.URLs = urls
		argv, err := execline.Expand(tokens, ctx)
		if err != nil {
			return Plan{}, err
		}
		argvSets = [][]string{argv}
	}

	if f.Terminal() {
		term := l.opts.Terminal()
		if len(term) == 0 {
			return Plan{}, errors.New(errors.ErrLaunchFailed, "entry requires a terminal but none was found")
		}
		for i, argv := range argvSets {
			argvSets[i] = append(append([]string{}, term...), argv...)
		}
	}

	return Plan{Argvs: argvSets, WorkingDir: f.WorkingDirectory()}, nil
}

// Launch plans and spawns f. Processes are created sequentially in urls
// order; no child is waited for and no ordering among the children is
// guaranteed once spawned.
func (l *Launcher) Launch(f *entry.File, urls []string) error {
	plan, err := l.Plan(f, urls)
	if err != nil {
		return err
	}
	return l.spawnPlan(f, plan)
}

// LaunchAction plans and spawns one of f's actions
func (l *Launcher) LaunchAction(f *entry.File, a *entry.Action, urls []string) error {
	plan, err := l.PlanAction(f, a, urls)
	if err != nil {
		return err
	}
	return l.spawnPlan(f, plan)
}

func (l *Launcher) spawnPlan(f *entry.File, plan Plan) error {
	for _, argv := range plan.Argvs {
		l.logger.Debug().
			Strs("argv", argv).
			Str("cwd", plan.WorkingDir).
			Str("file", f.FileName()).
			Msg("Spawning process")
		if err := l.opts.Spawner.Spawn(argv, plan.WorkingDir); err != nil {
			return errors.Wrapf(err, errors.ErrLaunchFailed, "failed to spawn %q", argv[0]).
				WithDetail("file", f.FileName())
		}
	}
	return nil
}

// Open launches an entry according to its type: Applications run their
// Exec template, Links open their URL, anything else is not launchable.
func (l *Launcher) Open(f *entry.File, urls []string) error {
	switch f.Type() {
	case entry.TypeApplication:
		if !l.opts.AllowExec {
			return errors.New(errors.ErrExecNotAllowed, "application launching is disabled")
		}
		if tryExec := f.TryExec(); tryExec != "" {
			if _, err := exec.LookPath(tryExec); err != nil {
				return errors.Wrapf(err, errors.ErrLaunchFailed, "TryExec %q not available", tryExec).
					WithDetail("file", f.FileName())
			}
		}
		return l.Launch(f, urls)

	case entry.TypeLink:
		if !l.opts.AllowFollowLink {
			return errors.New(errors.ErrNotLaunchable, "link following is disabled")
		}
		url := f.URL()
		if url == "" {
			return errors.New(errors.ErrNotLaunchable, "link entry has no URL")
		}
		l.logger.Debug().Str("url", url).Str("file", f.FileName()).Msg("Opening link")
		if err := l.opts.Opener(url); err != nil {
			return errors.Wrapf(err, errors.ErrLaunchFailed, "failed to open %q", url).
				WithDetail("file", f.FileName())
		}
		return nil
	}

	return errors.Newf(errors.ErrNotLaunchable, "entries of type %s cannot be launched", f.Type()).
		WithDetail("file", f.FileName())
}

// OSSpawner creates real processes via os/exec. The child inherits the
// parent's standard handles and environment and is released immediately;
// exiting children are not reaped here.
type OSSpawner struct{}

// Spawn implements Spawner
func (s *OSSpawner) Spawn(argv []string, workDir string) error {
	if len(argv) == 0 {
		return errors.New(errors.ErrEmptyExec, "empty argument vector")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workDir
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func openWithXDGOpen(url string) error {
	return (&OSSpawner{}).Spawn([]string{"xdg-open", url}, "")
}
