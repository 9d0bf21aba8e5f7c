package gen

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	FilesRemoved   int
	TotalBytes     int64
}

// Metrics returns a snapshot of the metrics of the last Generate call.
func (g *Generator) Metrics() WriterMetrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.metrics
}

// write writes files to the target directory in parallel and then removes
// stale generated files.
func (g *Generator) write(ctx context.Context, files []*File) error {
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return NewGenerationError("write", g.cfg.Target, "create output directory", err)
	}
	g.mu.Lock()
	g.metrics = &WriterMetrics{}
	g.mu.Unlock()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())
	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.writeFile(f)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return g.cleanup(files)
}

// writeFile writes a single file.
func (g *Generator) writeFile(f *File) error {
	path := filepath.Join(g.cfg.Target, f.Name)
	if err := os.WriteFile(path, f.Content, 0o644); err != nil {
		return NewGenerationError("write", f.Name, "write file", err)
	}
	g.log.Debug("wrote file", zap.String("file", path), zap.Int("bytes", len(f.Content)))

	g.mu.Lock()
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(f.Content))
	g.mu.Unlock()
	return nil
}

// cleanup removes Go files in the target directory that carry the generated
// header but were not produced by this run, e.g. the per-domain files of a
// domain that disappeared from the metadata.
func (g *Generator) cleanup(files []*File) error {
	keep := make(map[string]struct{}, len(files))
	for _, f := range files {
		keep[f.Name] = struct{}{}
	}
	entries, err := os.ReadDir(g.cfg.Target)
	if err != nil {
		return NewGenerationError("cleanup", g.cfg.Target, "read output directory", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".go" {
			continue
		}
		if _, ok := keep[name]; ok {
			continue
		}
		path := filepath.Join(g.cfg.Target, name)
		generated, err := isGenerated(path)
		if err != nil {
			return NewGenerationError("cleanup", name, "inspect file", err)
		}
		if !generated {
			continue
		}
		if err := os.Remove(path); err != nil {
			return NewGenerationError("cleanup", name, "remove stale file", err)
		}
		g.log.Debug("removed stale file", zap.String("file", path))
		g.mu.Lock()
		g.metrics.FilesRemoved++
		g.mu.Unlock()
	}
	return nil
}

// isGenerated reports whether the first line of the file is the generated
// header.
func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	if !s.Scan() {
		return false, s.Err()
	}
	return strings.TrimSpace(s.Text()) == "// "+GeneratedHeader, nil
}

// fileName returns a unique file name for a group.
func fileName(key string, used map[string]struct{}) string {
	base := snake(key)
	if i := strings.LastIndexByte(base, '_'); i >= 0 {
		if _, ok := constrainedSuffix[base[i+1:]]; ok {
			base += "_gen"
		}
	}
	name := base + ".go"
	for i := 2; ; i++ {
		if _, ok := used[name]; !ok {
			break
		}
		name = base + "_" + strconv.Itoa(i) + ".go"
	}
	used[name] = struct{}{}
	return name
}

// constrainedSuffix lists file name suffixes the go tool treats as build
// constraints or test files.
var constrainedSuffix = map[string]struct{}{
	"test": {}, "linux": {}, "darwin": {}, "windows": {}, "freebsd": {}, "js": {}, "wasip1": {},
	"android": {}, "ios": {}, "amd64": {}, "arm64": {}, "arm": {}, "386": {}, "wasm": {}, "riscv64": {},
}

// snake converts a PascalCase name to snake_case ("LightEntities" becomes
// "light_entities", "HVACEntities" becomes "hvac_entities").
func snake(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
