package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/brewdoc/internal/beerxml"
	"github.com/vk/brewdoc/internal/config"
	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/fsutil"
	"github.com/vk/brewdoc/internal/processor"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/xmltree"
)

// Run executes every job in the loaded model, in declaration order. Jobs
// are independent: a failing job is reported and the rest still run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("run started", "jobs", len(a.model.Jobs))

	var failed int
	for _, job := range a.model.Jobs {
		if err := a.runJob(ctx, job); err != nil {
			a.logger.Error("job failed", "job", job.Name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(a.model.Jobs))
	}
	a.logger.Debug("run finished")
	return nil
}

// runJob imports one job's documents into its store and optionally
// re-exports the stored records.
func (a *App) runJob(ctx context.Context, job *config.Job) error {
	logger := a.logger.With("job", job.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	st, err := store.Open(job.Store, processor.Rehydrate(a.registry))
	if err != nil {
		return err
	}
	defer st.Close()

	files, err := fsutil.FindDocuments(job.Input, ".xml")
	if err != nil {
		return fmt.Errorf("resolving input %q: %w", job.Input, err)
	}
	if len(files) == 0 {
		logger.Warn("no documents found", "input", job.Input)
	}

	imp := processor.NewImporter(a.registry, st, processor.Options{
		CaseInsensitiveEnums: job.CaseInsensitiveEnums,
	})

	var fileErrs int
	for _, path := range files {
		res, err := a.importFile(ctx, imp, path)
		for _, kind := range res.Kinds() {
			c := res.PerKind[kind]
			logger.Info("imported", "file", path, "kind", kind,
				"stored", c.Stored, "skipped", c.Skipped)
		}
		if err != nil {
			logger.Error("document aborted", "file", path, "error", err)
			fileErrs++
		}
	}

	if job.Export != "" {
		if err := a.exportStore(st, job.Export); err != nil {
			return fmt.Errorf("exporting to %q: %w", job.Export, err)
		}
		logger.Info("exported", "path", job.Export)
	}

	if fileErrs > 0 {
		return fmt.Errorf("%d of %d documents aborted", fileErrs, len(files))
	}
	return nil
}

func (a *App) importFile(ctx context.Context, imp *processor.Importer, path string) (processor.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return processor.Result{}, err
	}
	root, err := xmltree.Parse(data)
	if err != nil {
		return processor.Result{}, fmt.Errorf("parsing %q: %w", path, err)
	}
	return imp.ImportDocument(ctx, root)
}

// exportStore re-serializes every stored top-level record. Kinds whose
// records only exist inside a parent are emitted by their parent's export,
// never standalone.
func (a *App) exportStore(st store.Store, path string) error {
	var entities []entity.Entity
	for _, name := range a.registry.Names() {
		k := a.registry.Lookup(name)
		if k.Policy.OwnedByParent {
			continue
		}
		entities = append(entities, st.All(name)...)
	}
	doc := processor.ExportDocument(a.registry, beerxml.RootTag, entities)
	return os.WriteFile(path, []byte(doc), 0o644)
}
