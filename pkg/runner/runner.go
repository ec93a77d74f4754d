package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/extract"
	"github.com/yaklabco/gomdoc/pkg/fsutil"
)

// Run builds a document from opts.Inputs.
//
// The inputs are expanded first and every image among them becomes a
// candidate for image references. Source and Markdown files are then read
// and parsed one at a time in discovery order. Problems with the inputs are
// warnings; an error is returned only when the run cannot continue, such as
// on context cancellation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	sink := diag.NewSink(opts.OnWarning)
	doc := docmodel.New(docmodel.Options{Sort: opts.Sort})

	files, err := Discover(ctx, opts, sink)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered inputs", logging.FieldInputs, len(opts.Inputs), logging.FieldFiles, len(files))

	for _, path := range files {
		if opts.kindOf(path) == kindImage {
			doc.AddImageFile(path)
		}
	}

	result := &Result{Doc: doc}
	ext := extract.New(doc, sink, extract.WithLogger(logger))

	for _, path := range files {
		k := opts.kindOf(path)
		if k != kindSource && k != kindMarkdown {
			continue
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		}

		doc.Files++
		result.Files = append(result.Files, path)

		content, _, readErr := fsutil.ReadFile(ctx, path)
		if readErr != nil || len(content) == 0 {
			if readErr != nil {
				logging.ForFile(ctx, path).Debug("read failed", logging.FieldError, readErr)
			}
			sink.Warn(diag.ReadFile, path)
			continue
		}

		if k == kindMarkdown {
			ext.ParseMarkdown(path, string(content))
		} else {
			ext.ParseSource(path, string(content))
		}
	}

	if doc.ObjectCount() == 0 {
		sink.Warn(diag.NothingToDo, "")
	}

	result.Warnings = sink.Warnings()
	result.Stats = doc.ComputeStats()
	result.Stats.Warnings = len(result.Warnings)

	logger.Debug("run complete",
		logging.FieldFiles, result.Stats.Files,
		logging.FieldModules, result.Stats.Modules,
		logging.FieldClasses, result.Stats.Classes,
		logging.FieldDocuments, result.Stats.Documents,
		logging.FieldObjects, doc.ObjectCount(),
		logging.FieldWarnings, result.Stats.Warnings,
	)

	return result, nil
}
