package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"outliner/internal/config"
	"outliner/internal/notify"
	"outliner/internal/outline"
	"outliner/internal/textextract"
)

// Worker processes a single outline-extraction job.
type Worker struct {
	notifier *notify.Client
	stats    *outline.ExtractStats
	log      *slog.Logger
	cfg      config.Config
}

func NewWorker(notifier *notify.Client, stats *outline.ExtractStats, log *slog.Logger, cfg config.Config) *Worker {
	return &Worker{
		notifier: notifier,
		stats:    stats,
		log:      log,
		cfg:      cfg,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Extract text
	job.SetStatus(StatusExtracting, "extracting text")
	extractor, err := textextract.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting text")
		return
	}
	configureExtractor(extractor, w.cfg)

	text, err := extractor.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting text")
		return
	}

	// Phase 2: Build outline
	job.SetStatus(StatusAnalyzing, "building outline")
	start := time.Now()
	result := outline.Extract(text)
	w.stats.Record(time.Since(start).Milliseconds(), len(result.Outline))

	job.SetResult(result)
	log.Info("outline extracted", "title", result.Title, "headings", len(result.Outline))

	// Phase 3: Deliver callback, if configured. Delivery failure does not
	// fail the job; the result stays pollable either way.
	if w.notifier != nil {
		err := w.notifier.PostOutline(ctx, notify.Payload{
			JobID:    job.ID,
			DocID:    job.DocID,
			Filename: job.Filename,
			Outline:  result,
		})
		if err != nil {
			log.Warn("callback delivery failed", "error", err)
			job.AddError(fmt.Sprintf("callback: %s", err))
		}
	}

	job.SetStatus(StatusCompleted, "done")
}

// configureExtractor applies config knobs to extractors that have them.
func configureExtractor(e textextract.Extractor, cfg config.Config) {
	switch ex := e.(type) {
	case *textextract.PDFExtractor:
		ex.FallbackPdftotext = cfg.PDFFallbackPdftotext
	case *textextract.ImageExtractor:
		ex.Language = cfg.OCRLanguage
	}
}
