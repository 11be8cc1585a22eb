package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	"github.com/mouse-blink/fndecorate/internal/controller"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// DefaultCache is the cache directory used when none is configured.
const DefaultCache = ".fndecorate"

// ListArgs selects the files to inspect.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// GenerateArgs configures overlay generation.
type GenerateArgs struct {
	ListArgs
	Cache m.Path
}

// EmitArgs names the single file to print.
type EmitArgs struct {
	Path m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	// Generate transforms every decorated file and writes the build overlay.
	Generate(args GenerateArgs) error
	// Emit prints the transformed source of one file.
	Emit(args EmitArgs) error
	// List reports the decorated functions without writing anything.
	List(args ListArgs) error
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	overlayStore adapter.OverlayStore
	ui           controller.UI
	transformer  Transformer
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	overlayStore adapter.OverlayStore,
	ui controller.UI,
	transformer Transformer,
) Workflow {
	return &workflow{
		fsAdapter:    fsAdapter,
		overlayStore: overlayStore,
		ui:           ui,
		transformer:  transformer,
	}
}

func (w *workflow) Generate(args GenerateArgs) error {
	if err := w.ui.Start(controller.WithGenerateMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.ui.Close()

	results, err := w.transformAll(args.ListArgs)
	if err != nil {
		return err
	}

	cache := args.Cache
	if cache == "" {
		cache = DefaultCache
	}

	overlay := m.Overlay{Replace: make(map[string]string, len(results))}

	for _, r := range results {
		shadow, err := w.overlayStore.SaveShadow(cache, r.Source, r.Output)
		if err != nil {
			return fmt.Errorf("save shadow of %s: %w", r.Source.Origin, err)
		}

		overlay.Replace[string(r.Source.Origin)] = string(shadow)
	}

	if err := w.overlayStore.Prune(cache, overlay); err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}

	overlayPath, err := w.overlayStore.SaveOverlay(cache, overlay)
	if err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}

	slog.Debug("overlay written", "path", string(overlayPath), "files", len(results))

	if err := w.ui.DisplayGenerated(overlayPath, results); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) Emit(args EmitArgs) error {
	if err := w.ui.Start(controller.WithEmitMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.ui.Close()

	sources, err := w.fsAdapter.Get([]m.Path{args.Path})
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if len(sources) != 1 {
		return fmt.Errorf("emit needs exactly one Go source file, %s resolves to %d", args.Path, len(sources))
	}

	result, err := w.transform(sources[0])
	if err != nil {
		return err
	}

	return w.ui.DisplayEmitted(result)
}

func (w *workflow) List(args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.ui.Close()

	results, err := w.transformAll(args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayDecorations(results); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// transformAll transforms the selected files in parallel and returns the
// decorated ones in source order. The first error cancels the remaining work.
func (w *workflow) transformAll(args ListArgs) ([]m.FileResult, error) {
	sources, err := w.sources(args)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.ui.DisplayUpcomingFiles(len(sources), threads)

	results := make([]m.FileResult, len(sources))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			result, err := w.transform(source)
			if err != nil {
				return err
			}

			results[i] = result
			w.ui.DisplayFileTransformed(result)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	decorated := make([]m.FileResult, 0, len(results))
	for _, r := range results {
		if len(r.Decorations) > 0 {
			decorated = append(decorated, r)
		}
	}

	return decorated, nil
}

func (w *workflow) transform(source m.Source) (m.FileResult, error) {
	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", source.Origin, err)
	}

	slog.Debug("transforming file", "path", string(source.Origin))

	result, err := w.transformer.TransformFile(source.Origin, content)
	if err != nil {
		return m.FileResult{}, err
	}

	result.Source = source

	return result, nil
}

func (w *workflow) sources(args ListArgs) ([]m.Source, error) {
	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	all, err := w.fsAdapter.Get(paths)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]m.Source, 0, len(all))

SOURCES:
	for _, source := range all {
		for _, re := range exclude {
			if re.MatchString(string(source.Origin)) {
				slog.Debug("excluded file", "path", string(source.Origin), "pattern", re.String())

				continue SOURCES
			}
		}

		sources = append(sources, source)
	}

	return sources, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		out = append(out, re)
	}

	return out, nil
}
