package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"renohub/internal/domain/catalog"
	"renohub/internal/domain/entities"
	"renohub/internal/infrastructure/metrics"
	"renohub/internal/pricing"
	"renohub/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNoContractorsSelected  = errors.New("no contractors selected")
	ErrQuotesAlreadyRequested = errors.New("quotes already requested")
	ErrQuotesNotRequested     = errors.New("quotes not requested")
	ErrUnknownContractor      = errors.New("unknown contractor")
	ErrQuoteNotReceived       = errors.New("quote not received")
	ErrContractorFinalized    = errors.New("a contractor is already finalized")
)

// QuoteSession is a snapshot of the quote state machine for one project:
// overall NotRequested -> Requested, per contractor pending -> received,
// and at most one finalized contractor.
type QuoteSession struct {
	ProjectID           string           `json:"projectId"`
	Requested           bool             `json:"requested"`
	Quotes              []entities.Quote `json:"quotes"`
	FinalizedContractor string           `json:"finalizedContractor,omitempty"`
}

// IQuoteUseCase runs the simulated contractor-quote flow.
type IQuoteUseCase interface {
	RequestQuotes(ctx context.Context, projectID string, contractorIDs []string, userID string) (QuoteSession, error)
	GetSession(projectID string) (QuoteSession, error)
	FinalizeContractor(ctx context.Context, projectID, contractorID, userID string) (entities.ProjectRecord, error)
}

// QuoteUseCase simulates contractor responses: on request it records asking
// prices, then after a fixed delay perturbs each total by up to +/-5% to
// produce the "received" quotes. The delay timer is kept per project so a
// teardown can cancel it before a stale result is applied; the random source
// is injected so tests can fix the seed.
type QuoteUseCase struct {
	repo  interfaces.IProjectRepository
	sink  interfaces.IActivitySink
	log   *zap.Logger
	delay time.Duration

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*quoteSession
	timers   map[string]*time.Timer
}

type quoteSession struct {
	projectID string
	userID    string
	order     []string
	quotes    map[string]entities.Quote
	finalized string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IProjectRepository, sink interfaces.IActivitySink, log *zap.Logger, delay time.Duration, rng *rand.Rand) *QuoteUseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteUseCase{
		repo:     repo,
		sink:     sink,
		log:      log,
		delay:    delay,
		rng:      rng,
		sessions: map[string]*quoteSession{},
		timers:   map[string]*time.Timer{},
	}
}

// RequestQuotes starts a quote session for the project. An empty selection is
// a user-input error and must not transition the session to Requested.
func (u *QuoteUseCase) RequestQuotes(ctx context.Context, projectID string, contractorIDs []string, userID string) (QuoteSession, error) {
	if len(contractorIDs) == 0 {
		return QuoteSession{}, ErrNoContractorsSelected
	}

	project, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		return QuoteSession{}, err
	}
	if project.ID == "" {
		return QuoteSession{}, ErrProjectNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.sessions[projectID]; exists {
		return QuoteSession{}, ErrQuotesAlreadyRequested
	}

	session := &quoteSession{
		projectID: projectID,
		userID:    userID,
		quotes:    map[string]entities.Quote{},
	}
	for _, id := range contractorIDs {
		contractor, ok := catalog.Contractor(id)
		if !ok {
			return QuoteSession{}, ErrUnknownContractor
		}
		session.order = append(session.order, id)
		session.quotes[id] = entities.Quote{
			ContractorID: id,
			Pricing:      pricing.ContractorTotal(project.Estimate, contractor.HourlyRate),
			Status:       entities.QuoteStatusPending,
		}
	}
	u.sessions[projectID] = session
	metrics.QuotesRequested.Add(float64(len(contractorIDs)))

	u.sink.Emit(ctx, NewActivityEvent(userID, entities.ActionQuotesRequested, map[string]any{
		"projectId":           projectID,
		"selectedContractors": contractorIDs,
		"baseEstimate":        project.Estimate.Total,
	}))

	u.timers[projectID] = time.AfterFunc(u.delay, func() {
		u.deliverQuotes(projectID)
	})

	return snapshotLocked(session), nil
}

// deliverQuotes flips every pending quote to received with a perturbed total.
func (u *QuoteUseCase) deliverQuotes(projectID string) {
	u.mu.Lock()
	session, ok := u.sessions[projectID]
	if !ok {
		u.mu.Unlock()
		return
	}
	delete(u.timers, projectID)

	now := time.Now().UTC()
	received := map[string]float64{}
	for _, id := range session.order {
		quote := session.quotes[id]
		if quote.Status != entities.QuoteStatusPending {
			continue
		}
		contractor, _ := catalog.Contractor(id)
		quote.Pricing = pricing.PerturbQuote(quote.Pricing, u.rng)
		quote.Status = entities.QuoteStatusReceived
		quote.Message = "Available " + contractor.Availability + ". Quote valid for 7 days."
		quote.Confirmed = true
		quote.RespondedAt = now
		session.quotes[id] = quote
		received[id] = quote.Pricing.Total
	}
	userID := session.userID
	u.mu.Unlock()

	u.sink.Emit(context.Background(), NewActivityEvent(userID, entities.ActionQuotesReceived, map[string]any{
		"projectId": projectID,
		"quotes":    received,
	}))
}

// GetSession returns the session snapshot, or ErrQuotesNotRequested when no
// request has been made for the project.
func (u *QuoteUseCase) GetSession(projectID string) (QuoteSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[projectID]
	if !ok {
		return QuoteSession{}, ErrQuotesNotRequested
	}
	return snapshotLocked(session), nil
}

// FinalizeContractor commits the user to exactly one contractor. The
// contractor's quote must already be received; other quotes are left as they
// are (no rejection events in the current flow).
func (u *QuoteUseCase) FinalizeContractor(ctx context.Context, projectID, contractorID, userID string) (entities.ProjectRecord, error) {
	u.mu.Lock()
	session, ok := u.sessions[projectID]
	if !ok {
		u.mu.Unlock()
		return entities.ProjectRecord{}, ErrQuotesNotRequested
	}
	if session.finalized != "" {
		u.mu.Unlock()
		return entities.ProjectRecord{}, ErrContractorFinalized
	}
	quote, ok := session.quotes[contractorID]
	if !ok {
		u.mu.Unlock()
		return entities.ProjectRecord{}, ErrUnknownContractor
	}
	if quote.Status != entities.QuoteStatusReceived {
		u.mu.Unlock()
		return entities.ProjectRecord{}, ErrQuoteNotReceived
	}
	quote.Status = entities.QuoteStatusFinalized
	session.quotes[contractorID] = quote
	session.finalized = contractorID
	u.mu.Unlock()

	contractor, _ := catalog.Contractor(contractorID)

	project, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if project.ID == "" {
		return entities.ProjectRecord{}, ErrProjectNotFound
	}

	project.Status = entities.ProjectStatusContractorSelected
	project.SelectedContractor = &contractor
	project.FinalQuote = &quote
	project.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, project)
	if err != nil {
		return entities.ProjectRecord{}, err
	}

	u.sink.Emit(ctx, NewActivityEvent(userID, entities.ActionContractorFinalized, map[string]any{
		"projectId":    projectID,
		"contractorId": contractorID,
		"contractor":   contractor.Name,
		"finalTotal":   quote.Pricing.Total,
	}))

	return updated, nil
}

// Close cancels outstanding delivery timers so a teardown cannot apply a
// stale simulated response.
func (u *QuoteUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, timer := range u.timers {
		timer.Stop()
		delete(u.timers, id)
	}
}

func snapshotLocked(s *quoteSession) QuoteSession {
	out := QuoteSession{
		ProjectID:           s.projectID,
		Requested:           true,
		Quotes:              make([]entities.Quote, 0, len(s.order)),
		FinalizedContractor: s.finalized,
	}
	for _, id := range s.order {
		out.Quotes = append(out.Quotes, s.quotes[id])
	}
	return out
}
