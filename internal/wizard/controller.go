// Package wizard owns the reply-drafting flow: a four-step state machine
// over a single notice case. All mutation goes through the Controller, which
// re-resolves clauses on every fact change, persists a snapshot after every
// mutation, and never commits partial state when an external collaborator
// fails.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/joelkehle/trustreply/internal/notice"
)

type Step string

const (
	StepIntake   Step = "intake"
	StepClassify Step = "classify"
	StepReview   Step = "review"
	StepPreview  Step = "preview"
)

var (
	// ErrBusy rejects a second in-flight external call; the triggering
	// control is expected to stay disabled until the first one settles.
	ErrBusy        = errors.New("an external call is already in flight")
	ErrUnreachable = errors.New("model API unreachable")
	ErrWrongStep   = errors.New("action not available in this step")
)

// Extractor reads an uploaded notice document into structured fields.
type Extractor interface {
	ExtractNotice(ctx context.Context, data []byte, mediaType string) (notice.Extracted, error)
}

// Drafter turns the assembled case into the reply letter.
type Drafter interface {
	DraftReply(ctx context.Context, c *notice.Case) (string, error)
}

// Prober reports whether the model API is reachable; it gates intake.
type Prober interface {
	Reachable(ctx context.Context) bool
}

// SnapshotStore persists the case snapshot between sessions. Load returns
// nil when no snapshot exists.
type SnapshotStore interface {
	Load(ctx context.Context) (*notice.Snapshot, error)
	Save(ctx context.Context, s notice.Snapshot) error
	Clear(ctx context.Context) error
}

type Controller struct {
	extractor Extractor
	drafter   Drafter
	prober    Prober
	store     SnapshotStore

	mu       sync.Mutex
	step     Step
	current  *notice.Case
	inFlight bool
}

func NewController(extractor Extractor, drafter Drafter, prober Prober, store SnapshotStore) *Controller {
	return &Controller{
		extractor: extractor,
		drafter:   drafter,
		prober:    prober,
		store:     store,
		step:      StepIntake,
		current:   notice.NewCase(),
	}
}

// Restore loads a persisted snapshot, if any, and resumes the session at the
// classification step. Clauses are recomputed from the restored facts.
func (w *Controller) Restore(ctx context.Context) error {
	if w.store == nil {
		return nil
	}
	snap, err := w.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = notice.CaseFromSnapshot(*snap)
	w.step = StepClassify
	return nil
}

func (w *Controller) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Case returns a deep copy of the working case for rendering.
func (w *Controller) Case() *notice.Case {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.Clone()
}

func (w *Controller) Reachable(ctx context.Context) bool {
	if w.prober == nil {
		return false
	}
	return w.prober.Reachable(ctx)
}

// Upload runs extraction on the notice document and, on success, populates
// the case and advances to classification. On any failure the case and step
// are left exactly as they were.
func (w *Controller) Upload(ctx context.Context, data []byte, mediaType string) error {
	if err := w.begin(); err != nil {
		return err
	}
	defer w.end()

	if w.prober != nil && !w.prober.Reachable(ctx) {
		return ErrUnreachable
	}
	extracted, err := w.extractor.ExtractNotice(ctx, data, mediaType)
	if err != nil {
		return fmt.Errorf("extract notice: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.ApplyExtracted(extracted)
	w.step = StepClassify
	w.persistLocked()
	return nil
}

// Generate drafts the letter from the current case and advances to preview.
// Regenerating from preview overwrites the previous letter. The case is
// cloned before the call so no state is touched until the draft succeeds.
func (w *Controller) Generate(ctx context.Context) (string, error) {
	if err := w.begin(); err != nil {
		return "", err
	}
	defer w.end()

	w.mu.Lock()
	if w.step != StepReview && w.step != StepPreview {
		w.mu.Unlock()
		return "", ErrWrongStep
	}
	snapshot := w.current.Clone()
	w.mu.Unlock()

	text, err := w.drafter.DraftReply(ctx, snapshot)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.Reply = text
	w.step = StepPreview
	w.persistLocked()
	return text, nil
}

// SetDetails updates the identity fields.
func (w *Controller) SetDetails(trustName, pan, din, noticeDate string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.TrustName = trustName
	w.current.SetPAN(pan)
	w.current.DIN = din
	w.current.NoticeDate = noticeDate
	w.persistLocked()
}

// SetFacts applies a classification change and re-resolves the clause list
// as one atomic step.
func (w *Controller) SetFacts(f notice.Facts) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.SetFacts(f)
	w.persistLocked()
}

func (w *Controller) SetCSRReceived(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.CSRReceived = v
	w.persistLocked()
}

func (w *Controller) SetSupplementaryContext(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.SupplementaryContext = text
	w.persistLocked()
}

func (w *Controller) EditClause(id, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.current.EditClause(id, text); err != nil {
		return err
	}
	w.persistLocked()
	return nil
}

func (w *Controller) DeleteClause(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.current.DeleteClause(id); err != nil {
		return err
	}
	w.persistLocked()
	return nil
}

// RestoreDefaultClauses reinstates the active notice type's fresh default
// set, discarding all edits and deletions.
func (w *Controller) RestoreDefaultClauses() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.RestoreDefaultClauses()
	w.persistLocked()
}

func (w *Controller) AppendActivity() notice.ActivityRow {
	w.mu.Lock()
	defer w.mu.Unlock()
	row := w.current.AppendActivity()
	w.persistLocked()
	return row
}

func (w *Controller) UpdateActivity(row notice.ActivityRow) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.current.UpdateActivity(row); err != nil {
		return err
	}
	w.persistLocked()
	return nil
}

func (w *Controller) DeleteActivity(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.current.DeleteActivity(id); err != nil {
		return err
	}
	w.persistLocked()
	return nil
}

// SetReply stores a hand-edited letter.
func (w *Controller) SetReply(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepPreview {
		return ErrWrongStep
	}
	w.current.Reply = text
	return nil
}

// Advance moves from classification to clause review.
func (w *Controller) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepClassify {
		return ErrWrongStep
	}
	w.step = StepReview
	return nil
}

// Back returns from preview to review. The generated letter is kept.
func (w *Controller) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepPreview {
		return ErrWrongStep
	}
	w.step = StepReview
	return nil
}

// Reset discards the case, returns to intake, and clears the persisted
// snapshot.
func (w *Controller) Reset(ctx context.Context) error {
	w.mu.Lock()
	w.current = notice.NewCase()
	w.step = StepIntake
	w.mu.Unlock()
	if w.store == nil {
		return nil
	}
	if err := w.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// persistLocked saves the snapshot after a mutation. A failed save is logged
// and does not roll the mutation back: the working copy stays authoritative.
func (w *Controller) persistLocked() {
	if w.store == nil {
		return
	}
	if err := w.store.Save(context.Background(), w.current.Snapshot()); err != nil {
		log.Printf("persist case snapshot: %v", err)
	}
}

func (w *Controller) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrBusy
	}
	w.inFlight = true
	return nil
}

func (w *Controller) end() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}
