// Package export implements the user facing commands working on loaded
// documents: exporting template trees back to markup and dumping document
// contents for inspection.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"veneer/asset"
	"veneer/document"
	"veneer/state"
	"veneer/style"
	"veneer/template"
)

// documentNames returns the containers to process: command line arguments
// when given, the configured preload list otherwise.
func documentNames(cmd *cli.Command, env *state.LocalEnv) ([]string, error) {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		names = env.Cfg.Assets.Preload
	}
	if len(names) == 0 {
		return nil, errors.New("no documents to process, pass container names or configure assets.preload")
	}
	return names, nil
}

func loadAll(ctx context.Context, env *state.LocalEnv, names []string) ([]*document.Document, *asset.Server, error) {
	srv := asset.NewServer(os.DirFS(env.Cfg.Assets.Root), env.Log)
	env.Assets = srv

	loader := document.NewLoader(srv, env.Log)
	docs := make([]*document.Document, 0, len(names))
	for _, name := range names {
		d, err := loader.Load(ctx, name)
		if err != nil {
			return nil, srv, err
		}
		docs = append(docs, d)
	}
	return docs, srv, nil
}

// Run exports every template of the requested containers as standalone
// markup files in the configured output directory.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	names, err := documentNames(cmd, env)
	if err != nil {
		return err
	}
	docs, srv, err := loadAll(ctx, env, names)
	defer func() {
		if er := srv.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("closing asset server: %w", er))
		}
	}()
	if err != nil {
		return err
	}

	exported, err := exportTemplates(env, docs)
	if err != nil {
		return err
	}
	env.Log.Info("Export finished", zap.Int("templates", exported), zap.Int("documents", len(docs)))
	return nil
}

func exportTemplates(env *state.LocalEnv, docs []*document.Document) (int, error) {
	outDir := env.Cfg.Export.OutputDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("unable to create output directory %q: %w", outDir, err)
	}

	var exported int
	for _, d := range docs {
		for _, t := range d.Templates {
			if t.Template.Content == nil {
				env.Log.Warn("Template has no content, skipping",
					zap.String("document", d.Path.Name), zap.String("template", t.Name))
				continue
			}
			xml, werr := template.WriteXML(t.Template.Content)
			if werr != nil {
				if !errors.Is(werr, style.ErrUnsupportedAttr) {
					return exported, fmt.Errorf("template %q: %w", t.Name, werr)
				}
				// Markup is still complete apart from these.
				env.Log.Warn("Some attributes have no markup rendition",
					zap.String("template", t.Name), zap.Error(werr))
			}

			fname := filepath.Join(outDir, exportFileName(d.Path.Name, t.Name, env.Cfg.Export.FileNameTransliterate))
			if !env.Overwrite {
				if _, serr := os.Stat(fname); serr == nil {
					return exported, fmt.Errorf("destination %q exists, use --overwrite to replace it", fname)
				}
			}
			if err := xml.WriteToFile(fname); err != nil {
				return exported, fmt.Errorf("unable to write %q: %w", fname, err)
			}
			env.Log.Info("Exported template",
				zap.String("template", t.Name), zap.String("file", fname))
			exported++
		}
	}
	return exported, nil
}

// exportFileName derives a stable file name from the container and template
// names.
func exportFileName(docName, tmplName string, transliterate bool) string {
	base := strings.TrimSuffix(filepath.Base(docName), document.Ext) + "-" + tmplName
	if transliterate {
		return slug.Make(base) + ".xml"
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '#':
			return '-'
		}
		return r
	}, base)
	return clean + ".xml"
}

// Dump prints the contents of the requested containers: every style with
// its attributes and every template as a tree outline. Definitions are
// listed in natural name order.
func Dump(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	names, err := documentNames(cmd, env)
	if err != nil {
		return err
	}
	docs, srv, err := loadAll(ctx, env, names)
	defer func() {
		if er := srv.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("closing asset server: %w", er))
		}
	}()
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	dumpDocuments(out, docs)
	return nil
}

func dumpDocuments(out io.Writer, docs []*document.Document) {
	for _, d := range docs {
		fmt.Fprintf(out, "document %s\n", d.Path.Name)

		styles := append([]document.NamedStyle(nil), d.Styles...)
		sort.Slice(styles, func(i, j int) bool { return natural.Less(styles[i].Name, styles[j].Name) })
		for _, s := range styles {
			fmt.Fprintf(out, "  style %q\n", s.Name)
			for _, a := range s.Style.Attrs() {
				fmt.Fprintf(out, "    %s: %s\n", a.Prop, a.Value)
			}
		}

		templates := append([]document.NamedTemplate(nil), d.Templates...)
		sort.Slice(templates, func(i, j int) bool { return natural.Less(templates[i].Name, templates[j].Name) })
		for _, t := range templates {
			text := template.DumpTemplate(t.Name, t.Template)
			for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	}
}
