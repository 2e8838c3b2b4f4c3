package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"focalpick/pkg/loader"
	"focalpick/pkg/model"
)

// Options configures a bundle export.
type Options struct {
	OutDir  string // destination directory for the bundle
	Width   int    // crop target width in pixels
	Height  int    // crop target height in pixels
	Workers int    // concurrent renders; 0 means GOMAXPROCS
}

// Result summarizes a bundle export.
type Result struct {
	Exported int
	Skipped  int // media without a committed focal point
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>focalpick export</title>
<style>
body { background:#1e1f29; color:#f8f8f2; font-family:monospace; margin:2em; }
figure { display:inline-block; margin:1em; vertical-align:top; }
img { max-width:320px; display:block; border:1px solid #44475a; }
figcaption { padding:0.4em 0; font-size:12px; }
</style>
</head>
<body>
<h1>focalpick export ({{.Width}}x{{.Height}})</h1>
{{range .Items}}<figure>
<img src="{{.Crop}}" alt="{{.Name}}">
<figcaption>{{.Name}} &middot; focal({{printf "%.3f" .X}}x{{printf "%.3f" .Y}}) &middot; <a href="{{.Overlay}}">overlay</a> &middot; <a href="{{.SVG}}">svg</a></figcaption>
</figure>
{{end}}</body>
</html>
`))

type indexItem struct {
	Name    string
	Crop    string
	Overlay string
	SVG     string
	X, Y    float64
}

// Bundle renders crop previews and overlays for every media item with a
// committed focal point, plus an index.html for browsing, into opts.OutDir.
// Renders run concurrently; the first failure aborts the whole export.
func Bundle(items []model.Media, opts Options) (Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return Result{}, fmt.Errorf("invalid crop size %dx%d", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create export directory: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	var res Result
	indexItems := make([]indexItem, 0, len(items))
	for _, m := range items {
		if !m.HasFocal {
			res.Skipped++
			continue
		}
		m := m
		stem := strings.TrimSuffix(filepath.Base(m.Path), filepath.Ext(m.Path))
		cropName := stem + ".crop.png"
		overlayName := stem + ".overlay.png"
		svgName := stem + ".overlay.svg"

		indexItems = append(indexItems, indexItem{
			Name:    m.Path,
			Crop:    cropName,
			Overlay: overlayName,
			SVG:     svgName,
			X:       m.Focal.X,
			Y:       m.Focal.Y,
		})
		res.Exported++

		g.Go(func() error {
			img, err := loader.Decode(m.SourceDir, m.Path)
			if err != nil {
				return err
			}
			if err := WriteCrop(img, opts.Width, opts.Height, m.Focal, filepath.Join(opts.OutDir, cropName)); err != nil {
				return fmt.Errorf("crop %s: %w", m.Path, err)
			}
			if err := WriteOverlayPNG(img, opts.Width, opts.Height, m.Focal, filepath.Join(opts.OutDir, overlayName)); err != nil {
				return fmt.Errorf("overlay %s: %w", m.Path, err)
			}
			b := img.Bounds()
			if err := WriteOverlaySVG(overlayName, b.Dx(), b.Dy(), opts.Width, opts.Height, m.Focal, filepath.Join(opts.OutDir, svgName)); err != nil {
				return fmt.Errorf("svg overlay %s: %w", m.Path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}

	f, err := os.Create(filepath.Join(opts.OutDir, "index.html"))
	if err != nil {
		return res, fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close()
	data := struct {
		Width, Height int
		Items         []indexItem
	}{opts.Width, opts.Height, indexItems}
	if err := indexTemplate.Execute(f, data); err != nil {
		return res, fmt.Errorf("write index.html: %w", err)
	}

	return res, nil
}
