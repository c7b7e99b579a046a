// Package orchestrator sequences one generation run:
// select -> generate (AI, template fallback) -> emit -> track.
//
// A run is strictly sequential and assumes it is the only pipeline instance
// against the store; concurrent runs can both pick the same park.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"auto_park_blog_publisher/airtable"
	"auto_park_blog_publisher/emitter"
	"auto_park_blog_publisher/generator"
	"auto_park_blog_publisher/selector"
	"auto_park_blog_publisher/templates"
)

// RecordStore is the slice of the airtable client a run needs.
type RecordStore interface {
	FetchAll(ctx context.Context) ([]airtable.Park, error)
	MarkBlogged(ctx context.Context, id string, tr airtable.Tracking) error
	Stats(ctx context.Context) (airtable.BlogStats, error)
}

// ContentGenerator is the AI path; the template library is the fallback.
type ContentGenerator interface {
	Generate(ctx context.Context, park airtable.Park, opts generator.Options) (generator.Content, error)
	CheckConnection(ctx context.Context) error
}

// FileWriter persists or previews one document.
type FileWriter interface {
	Write(content generator.Content, park airtable.Park) (emitter.Result, error)
	PreviewDocument(content generator.Content, park airtable.Park) (emitter.Preview, error)
	CheckWritable() error
}

// Options steer one run.
type Options struct {
	ParkID     string // manual park override (record id or exact name)
	TemplateID string // manual template override
	Season     string // spring/summer/fall/winter; empty = current
	Preview    bool   // build the document but write and track nothing
	DisableAI  bool   // skip the model and go straight to templates
}

// Result is the structured outcome of a run.
type Result struct {
	RunID       string
	Park        string
	ParkID      string
	Location    string
	Title       string
	Topic       string
	GeneratedBy string
	Model       string
	WordCount   int
	FileName    string
	Path        string
	Preview     bool
	Duration    time.Duration

	// TrackingFailed marks the partial-success state: the file exists but
	// the store was not updated, so the next run may pick this park again.
	TrackingFailed bool
	TrackingError  string
}

// Tuning carries the pipeline-wide knobs from configuration.
type Tuning struct {
	AvoidanceDays   int
	RecentStates    int
	MinWordCount    int
	MaxWordCount    int
	TemplateWeights map[string]float64
}

// Orchestrator wires the pipeline's collaborators together.
type Orchestrator struct {
	store   RecordStore
	gen     ContentGenerator
	writer  FileWriter
	tuning  Tuning
	verbose bool
	logger  *log.Logger
}

func New(store RecordStore, gen ContentGenerator, writer FileWriter, tuning Tuning, verbose bool, logger *log.Logger) (*Orchestrator, error) {
	if store == nil || writer == nil {
		return nil, errors.New("record store and file writer are required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		store:   store,
		gen:     gen,
		writer:  writer,
		tuning:  tuning,
		verbose: verbose,
		logger:  logger,
	}, nil
}

func (o *Orchestrator) infof(format string, args ...interface{}) {
	if !o.verbose {
		return
	}
	o.logger.Printf("[orchestrator] "+format, args...)
}

// Run executes one generation. Fatal failures return an error naming the
// failing step; a tracking failure after a successful write returns a
// Result with TrackingFailed set and no error.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString(), Preview: opts.Preview}

	// SELECT
	parks, err := o.store.FetchAll(ctx)
	if err != nil {
		return res, fmt.Errorf("select: %w", err)
	}
	park, err := selector.Select(parks, selector.Options{
		ParkID:        opts.ParkID,
		AvoidanceDays: o.tuning.AvoidanceDays,
		RecentStates:  o.tuning.RecentStates,
	})
	if err != nil {
		return res, fmt.Errorf("select: %w", err)
	}
	res.Park = park.Name
	res.ParkID = park.ID
	res.Location = park.City + ", " + park.State
	o.infof("selected %s (%s)", park.Name, res.Location)

	season := opts.Season
	if season == "" {
		season = templates.CurrentSeason(time.Now())
	}
	profile, err := o.pickProfile(park, season, opts.TemplateID)
	if err != nil {
		return res, fmt.Errorf("select: %w", err)
	}

	// GENERATE: AI first, template fallback. AI failure is a designed
	// degradation path, not a run failure.
	content, err := o.generate(ctx, park, profile, season, opts.DisableAI)
	if err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}
	res.Title = content.Title
	res.Topic = content.Topic
	res.GeneratedBy = content.GeneratedBy
	res.Model = content.Model
	res.WordCount = content.WordCount

	if o.tuning.MinWordCount > 0 && content.WordCount < o.tuning.MinWordCount {
		o.logger.Printf("[orchestrator] content is short (%d words, target >= %d), proceeding", content.WordCount, o.tuning.MinWordCount)
	}
	if o.tuning.MaxWordCount > 0 && content.WordCount > o.tuning.MaxWordCount {
		o.logger.Printf("[orchestrator] content is long (%d words, target <= %d), proceeding", content.WordCount, o.tuning.MaxWordCount)
	}

	// PREVIEW stops here: no file, no tracking.
	if opts.Preview {
		preview, err := o.writer.PreviewDocument(content, park)
		if err != nil {
			return res, fmt.Errorf("emit: %w", err)
		}
		res.FileName = preview.FileName
		res.Duration = time.Since(start)
		return res, nil
	}

	// EMIT
	fileRes, err := o.writer.Write(content, park)
	if err != nil {
		return res, fmt.Errorf("emit: %w", err)
	}
	res.FileName = fileRes.FileName
	res.Path = fileRes.Path

	// TRACK, only after a successful write. A failure here leaves a file
	// without a tracking record; surfaced loudly as partial success.
	if err := o.store.MarkBlogged(ctx, park.ID, airtable.Tracking{
		Topic:    content.Topic,
		FileName: fileRes.FileName,
	}); err != nil {
		o.logger.Printf("[orchestrator] TRACKING FAILED for %s (%s): %v — next run may generate this park again", park.Name, park.ID, err)
		res.TrackingFailed = true
		res.TrackingError = err.Error()
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (o *Orchestrator) pickProfile(park airtable.Park, season, templateID string) (templates.Profile, error) {
	if templateID != "" {
		return templates.ByID(templateID)
	}
	return templates.Pick(park, season, o.tuning.TemplateWeights), nil
}

func (o *Orchestrator) generate(ctx context.Context, park airtable.Park, profile templates.Profile, season string, disableAI bool) (generator.Content, error) {
	if !disableAI && o.gen != nil {
		content, err := o.gen.Generate(ctx, park, generator.Options{
			Topic:  profile.Description,
			Season: season,
		})
		if err == nil {
			content.Topic = profile.ID
			return content, nil
		}
		o.logger.Printf("[orchestrator] ai generation failed, falling back to template %s: %v", profile.ID, err)
	}
	return templates.Generate(park, profile, templates.Options{Season: season}), nil
}

// Health is the outcome of a connectivity check across collaborators.
type Health struct {
	Store      bool
	StoreErr   string
	AI         bool
	AIErr      string
	FileSystem bool
	FSErr      string
	Stats      airtable.BlogStats
}

// Overall reports whether every check passed.
func (h Health) Overall() bool {
	return h.Store && h.AI && h.FileSystem
}

// HealthCheck probes the record store, the model, and the content directory.
func (o *Orchestrator) HealthCheck(ctx context.Context) Health {
	var h Health

	stats, err := o.store.Stats(ctx)
	if err != nil {
		h.StoreErr = err.Error()
	} else {
		h.Store = true
		h.Stats = stats
	}

	if o.gen == nil {
		h.AIErr = "ai generation disabled"
	} else if err := o.gen.CheckConnection(ctx); err != nil {
		h.AIErr = err.Error()
	} else {
		h.AI = true
	}

	if err := o.writer.CheckWritable(); err != nil {
		h.FSErr = err.Error()
	} else {
		h.FileSystem = true
	}

	return h
}

// Stats reports generation progress, with a one-post-per-day remaining
// estimate.
func (o *Orchestrator) Stats(ctx context.Context) (airtable.BlogStats, int, error) {
	stats, err := o.store.Stats(ctx)
	if err != nil {
		return airtable.BlogStats{}, 0, err
	}
	return stats, stats.UnbloggedParks, nil
}
