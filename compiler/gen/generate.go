package gen

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/hassgen/compiler/load"
)

// RootFile is the file holding the root declarations, or everything when
// output is not split.
const RootFile = "entities.go"

// Generator renders the declarations produced by Generate through an
// Emitter and writes them to the target directory.
type Generator struct {
	cfg     *Config
	log     *zap.Logger
	emitter Emitter

	mu      sync.Mutex
	metrics *WriterMetrics
}

// NewGenerator creates a new generator. A nil cfg means DefaultConfig.
// You must call WithEmitter() before Render() or Generate().
//
// Example:
//
//	import "github.com/syssam/hassgen/compiler/gen/golang"
//
//	g := gen.NewGenerator(cfg)
//	g.WithEmitter(golang.NewEmitter(g))
//	err := g.Generate(ctx, metadata)
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Generator{
		cfg:     cfg,
		log:     cfg.logger().Named("gen"),
		metrics: &WriterMetrics{},
	}
}

// WithEmitter sets the emitter that renders declarations.
func (g *Generator) WithEmitter(e Emitter) *Generator {
	if e != nil {
		g.emitter = e
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() *Config { return g.cfg }

// File is a rendered, formatted output file.
type File struct {
	// Name is the file name relative to the target directory.
	Name    string
	Content []byte
}

// Render runs Generate and renders the result without touching disk.
// Files are returned in layout order: RootFile first, then one file per
// domain group when split output is enabled.
func (g *Generator) Render(ctx context.Context, metadata []*load.EntityDomainMetadata) ([]*File, error) {
	if g.emitter == nil {
		return nil, NewConfigError("Emitter", nil, "no emitter set: call WithEmitter() before Render()")
	}
	decls, err := Generate(g.cfg, metadata)
	if err != nil {
		return nil, err
	}
	parts := layout(decls, g.FeatureEnabled(FeatureSplitOutput.Name))
	files := make([]*File, len(parts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())
	for i, p := range parts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := g.render(p)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	g.log.Debug("rendered declarations",
		zap.Int("decls", len(decls)),
		zap.Int("files", len(files)),
		zap.String("emitter", g.emitter.Name()),
	)
	return files, nil
}

// Generate renders the metadata and writes the files to the target
// directory, removing files a previous run generated that are no longer
// produced.
func (g *Generator) Generate(ctx context.Context, metadata []*load.EntityDomainMetadata) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	files, err := g.Render(ctx, metadata)
	if err != nil {
		return err
	}
	if err := g.write(ctx, files); err != nil {
		return err
	}
	m := g.Metrics()
	g.log.Info("generated entities",
		zap.String("target", g.cfg.Target),
		zap.Int("files", m.FilesGenerated),
		zap.Int("removed", m.FilesRemoved),
		zap.Int64("bytes", m.TotalBytes),
	)
	return nil
}

// render emits one layout part and formats the result.
func (g *Generator) render(p part) (*File, error) {
	f, err := g.emitter.Emit(p.decls)
	if err != nil {
		return nil, NewGenerationError("render", p.name, "emit declarations", err)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError("render", p.name, "render file", err)
	}
	out, err := imports.Process(filepath.Join(g.cfg.Target, p.name), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, NewGenerationError("format", p.name, "format source", err)
	}
	return &File{Name: p.name, Content: out}, nil
}

// NewFile creates a new Jennifer file with the header comment.
func (g *Generator) NewFile() *jen.File {
	f := jen.NewFile(g.Pkg())
	f.HeaderComment(GeneratedHeader)
	if h := strings.TrimSpace(g.cfg.Header); h != "" {
		f.HeaderComment(h)
	}
	if g.cfg.PlatformVersion != "" {
		f.HeaderComment("Platform version: " + g.cfg.PlatformVersion)
	}
	return f
}

// Pkg returns the output package name.
func (g *Generator) Pkg() string {
	if g.cfg.Package == "" {
		return DefaultPackage
	}
	return g.cfg.Package
}

// RuntimePkg returns the import path of the runtime base types.
func (g *Generator) RuntimePkg() string {
	if g.cfg.RuntimePackage == "" {
		return DefaultRuntimePackage
	}
	return g.cfg.RuntimePackage
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *Generator) FeatureEnabled(name string) bool {
	enabled, _ := g.cfg.FeatureEnabled(name)
	return enabled
}

// Verify Generator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*Generator)(nil)

func (g *Generator) workers() int {
	if g.cfg.Workers > 0 {
		return g.cfg.Workers
	}
	return 1
}

// part is a set of declarations rendered into one file.
type part struct {
	name  string
	decls []Decl
}

// layout assigns declarations to files. Without split every declaration goes
// to RootFile; with split the root declarations stay in RootFile and each
// group gets a file named after its grouping key.
func layout(decls []Decl, split bool) []part {
	if !split {
		return []part{{name: RootFile, decls: decls}}
	}
	parts := []part{{name: RootFile}}
	index := map[string]int{"": 0}
	used := map[string]struct{}{RootFile: {}}
	for _, d := range decls {
		i, ok := index[d.Group()]
		if !ok {
			i = len(parts)
			index[d.Group()] = i
			parts = append(parts, part{name: fileName(d.Group(), used)})
		}
		parts[i].decls = append(parts[i].decls, d)
	}
	return parts
}
