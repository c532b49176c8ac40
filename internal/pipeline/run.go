package pipeline

import (
	"context"
	"log"
	"os"
	"time"

	"jobcast-engine/internal/domain"
)

// Per-job lifecycle. Skipped and Recorded are terminal; Failed jobs stay
// out of the dedup set and get retried on the next scheduled run.
type State string

const (
	StatePending    State = "pending"
	StateRendering  State = "rendering"
	StatePublishing State = "publishing"
	StateRecorded   State = "recorded"
	StateSkipped    State = "skipped"
	StateFailed     State = "failed"
)

type Ingester interface {
	FetchTodayJobs(ctx context.Context) []domain.Job
}

type Renderer interface {
	Render(ctx context.Context, job domain.Job, path string) error
}

type Publisher interface {
	Publish(ctx context.Context, caption string, artifactPath string) error
}

type DedupStore interface {
	Contains(id string) bool
	Record(id string) error
}

type Pipeline struct {
	Ingester  Ingester
	Renderer  Renderer
	Publisher Publisher
	Posted    DedupStore

	Caption CaptionOptions
	Pace    time.Duration // wait between attempted jobs
	TempDir string        // "" means os.TempDir()

	Sleep func(time.Duration) // overridable in tests
}

type Report struct {
	Today   int
	Posted  int
	Skipped int
	Failed  int
}

// RunOnce drives one batch: ingest, then render/publish/record each unseen
// job in feed order with a fixed pacing delay between attempts. Per-job
// failures never abort the batch.
func (p *Pipeline) RunOnce(ctx context.Context) Report {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var rep Report

	jobs := p.Ingester.FetchTodayJobs(ctx)
	rep.Today = len(jobs)
	if len(jobs) == 0 {
		log.Printf("[pipeline] no jobs published today, nothing to do")
		return rep
	}

	attempted := false
	for _, job := range jobs {
		if p.Posted.Contains(job.ID) {
			log.Printf("[pipeline] job=%s state=%s (already posted)", job.ID, StateSkipped)
			rep.Skipped++
			continue
		}

		// Skipped jobs never consume a pacing delay; only real attempts do.
		if attempted {
			log.Printf("[pipeline] pacing: waiting %s before next post", p.Pace)
			sleep(p.Pace)
		}
		attempted = true

		if p.processOne(ctx, job) {
			rep.Posted++
		} else {
			rep.Failed++
		}
	}

	log.Printf("[pipeline] batch done: posted=%d skipped=%d failed=%d", rep.Posted, rep.Skipped, rep.Failed)
	return rep
}

func (p *Pipeline) processOne(ctx context.Context, job domain.Job) bool {
	caption := BuildCaption(job, p.Caption)

	artifact, cleanup := p.tempArtifact()
	defer cleanup()

	log.Printf("[pipeline] job=%s state=%s title=%q", job.ID, StateRendering, job.Title)
	renderPath := artifact
	if renderPath != "" {
		if err := p.Renderer.Render(ctx, job, renderPath); err != nil {
			log.Printf("[pipeline] job=%s render failed, posting text-only: %v", job.ID, err)
			renderPath = ""
		}
	}

	log.Printf("[pipeline] job=%s state=%s", job.ID, StatePublishing)
	if err := p.Publisher.Publish(ctx, caption, renderPath); err != nil {
		log.Printf("[pipeline] job=%s state=%s err=%v", job.ID, StateFailed, err)
		return false
	}

	// Record only after a confirmed publish. A failure here means a
	// possible duplicate next run (at-least-once), not a lost post.
	if err := p.Posted.Record(job.ID); err != nil {
		log.Printf("[pipeline] job=%s published but not recorded (may repost next run): %v", job.ID, err)
	}

	log.Printf("[pipeline] job=%s state=%s", job.ID, StateRecorded)
	return true
}

// tempArtifact reserves a scratch PNG path and returns a cleanup that
// always removes it, whatever render and publish did with it.
func (p *Pipeline) tempArtifact() (string, func()) {
	f, err := os.CreateTemp(p.TempDir, "jobcast-*.png")
	if err != nil {
		log.Printf("[pipeline] temp artifact unavailable, posting text-only: %v", err)
		return "", func() {}
	}
	path := f.Name()
	_ = f.Close()
	return path, func() { _ = os.Remove(path) }
}
