package main

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mtholden/pagesmith/internal/cache"
	"github.com/mtholden/pagesmith/internal/config"
	"github.com/mtholden/pagesmith/internal/doc"
	"github.com/mtholden/pagesmith/internal/markdown"
	"github.com/mtholden/pagesmith/internal/parse"
	"github.com/mtholden/pagesmith/internal/paths"
	"github.com/mtholden/pagesmith/internal/pipeline"
)

// runBuild performs one full build: discover source files, stream each one
// through the transform chain, and write results under the output root. Docs
// are loaded lazily, so only one full content body is resident at a time.
func runBuild(cfg *config.Config, useCache bool) error {
	buildID := uuid.NewString()
	started := time.Now()
	slog.Info("build started",
		"build_id", buildID,
		"content", cfg.Content.Dir,
		"output", cfg.Output.Dir)

	sources, err := discover(cfg.Content.Dir, cfg.Content.Extensions)
	if err != nil {
		return err
	}
	slog.Debug("sources discovered", "build_id", buildID, "count", len(sources))

	stages := []pipeline.Stage[doc.Doc]{
		pipeline.WithDocContext(parse.Frontmatter),
		pipeline.WithDocContext(doc.Uplift),
		pipeline.MapsIfExt(pipeline.WithDocContext(markdown.Render), ".md", ".markdown"),
		pipeline.MapsIfExt(pipeline.WithDocContext(parse.YAML), ".yml", ".yaml"),
		pipeline.MapsIfExt(pipeline.WithDocContext(parse.JSON), ".json"),
		templateStage(cfg.Templates),
	}

	if useCache {
		store, err := cache.New(cfg.Cache.Dir)
		if err != nil {
			return err
		}
		stages = append(stages, pipeline.WithStageName("cache.Dump", store.Dump))
	}

	docs := pipeline.Through(loadAll(sources, cfg.Content.Dir), stages...)

	written := 0
	err = pipeline.Each(docs, func(d doc.Doc) error {
		if err := doc.Write(d, cfg.Output.Dir); err != nil {
			return err
		}
		written++
		slog.Debug("doc written", "build_id", buildID, "id_path", d.IDPath, "output_path", d.OutputPath)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("build finished",
		"build_id", buildID,
		"docs", written,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}

// discover walks the content root collecting source file paths with one of
// the configured extensions. Only the paths are collected; document bodies
// load lazily during the build.
func discover(root string, exts []string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if paths.HasExt(filepath.ToSlash(p), exts...) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadAll returns a lazy sequence of Docs over the given source paths.
func loadAll(sources []string, root string) pipeline.Seq[doc.Doc] {
	return func(yield func(doc.Doc, error) bool) {
		for _, src := range sources {
			d, err := doc.Load(src, root)
			if !yield(d, err) || err != nil {
				return
			}
		}
	}
}

// templateStage tags every document with the configured template chain so
// the external renderer knows what to wrap it in.
func templateStage(templates []string) pipeline.Stage[doc.Doc] {
	return func(d doc.Doc) (doc.Doc, error) {
		if len(templates) == 0 || len(d.Templates) > 0 {
			return d, nil
		}
		d.Templates = append([]string(nil), templates...)
		return d, nil
	}
}
