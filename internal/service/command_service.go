package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultProposalTTL is how long a proposal waits for confirmation
const DefaultProposalTTL = 10 * time.Minute

// ProposalKind identifies the mutation a proposal stages
type ProposalKind string

const (
	ProposalKindEdit        ProposalKind = "edit"
	ProposalKindDelete      ProposalKind = "delete"
	ProposalKindDeleteMonth ProposalKind = "delete_month"
)

// Messages shown to the user after a confirmed mutation
const (
	MessageEdited       = "Transaksi berhasil diubah!"
	MessageDeleted      = "Transaksi berhasil dihapus!"
	MessageMonthCleared = "Laporan bulan ini berhasil dihapus!"
)

// Proposal is a staged mutation awaiting Confirm or Cancel
type Proposal struct {
	ID            uuid.UUID           `json:"id" swaggertype:"string" format:"uuid"`
	Kind          ProposalKind        `json:"kind"`
	TransactionID int64               `json:"transactionId,omitempty"`
	Transaction   *domain.Transaction `json:"transaction,omitempty"`
	MonthPrefix   string              `json:"monthPrefix,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	ExpiresAt     time.Time           `json:"expiresAt"`
}

// ConfirmResult reports the outcome of a confirmed proposal
type ConfirmResult struct {
	Proposal    Proposal `json:"proposal"`
	Message     string   `json:"message"`
	MonthPrefix string   `json:"monthPrefix,omitempty"`
	Removed     int      `json:"removed"`
}

// LedgerMutator is the mutation side of the ledger
type LedgerMutator interface {
	Get(id int64) (domain.Transaction, error)
	Edit(ctx context.Context, tx domain.Transaction) error
	Delete(ctx context.Context, id int64) error
	DeleteByMonthPrefix(ctx context.Context, prefix string) (int, error)
}

// CommandService stages destructive ledger mutations behind an explicit
// confirmation step. Nothing is mutated until Confirm.
type CommandService struct {
	ledger    LedgerMutator
	ttl       time.Duration
	location  *time.Location
	now       func() time.Time
	proposals map[uuid.UUID]Proposal
	mu        sync.Mutex
}

// NewCommandService creates a new CommandService
func NewCommandService(ledger LedgerMutator, ttl time.Duration, location *time.Location) *CommandService {
	if ttl <= 0 {
		ttl = DefaultProposalTTL
	}
	if location == nil {
		location = time.UTC
	}
	return &CommandService{
		ledger:    ledger,
		ttl:       ttl,
		location:  location,
		now:       time.Now,
		proposals: make(map[uuid.UUID]Proposal),
	}
}

// SetClock replaces the clock used for expiry and the current month
func (s *CommandService) SetClock(now func() time.Time) {
	s.now = now
}

// ProposeEdit stages a full replacement of the transaction with tx.ID
func (s *CommandService) ProposeEdit(tx domain.Transaction) (Proposal, error) {
	if err := tx.Validate(); err != nil {
		return Proposal{}, err
	}
	if _, err := s.ledger.Get(tx.ID); err != nil {
		return Proposal{}, err
	}
	staged := tx
	return s.stage(Proposal{Kind: ProposalKindEdit, TransactionID: tx.ID, Transaction: &staged}), nil
}

// ProposeDelete stages removal of the transaction with id
func (s *CommandService) ProposeDelete(id int64) (Proposal, error) {
	proposal := Proposal{Kind: ProposalKindDelete, TransactionID: id}
	if tx, err := s.ledger.Get(id); err == nil {
		proposal.Transaction = &tx
	}
	return s.stage(proposal), nil
}

// ProposeDeleteMonth stages removal of every transaction in the current month.
// MonthPrefix is informational; the month is recomputed on Confirm.
func (s *CommandService) ProposeDeleteMonth() (Proposal, error) {
	return s.stage(Proposal{Kind: ProposalKindDeleteMonth, MonthPrefix: s.currentMonthPrefix()}), nil
}

// Get returns a pending proposal
func (s *CommandService) Get(id uuid.UUID) (Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[id]
	if !ok || s.expired(proposal) {
		return Proposal{}, domain.ErrProposalNotFound
	}
	return proposal, nil
}

// Cancel discards a pending proposal without mutating anything
func (s *CommandService) Cancel(id uuid.UUID) error {
	if _, err := s.take(id); err != nil {
		return err
	}
	log.Info().Str("proposal_id", id.String()).Msg("Proposal cancelled")
	return nil
}

// Confirm applies a pending proposal. The proposal is consumed whether or
// not the mutation succeeds.
func (s *CommandService) Confirm(ctx context.Context, id uuid.UUID) (ConfirmResult, error) {
	proposal, err := s.take(id)
	if err != nil {
		return ConfirmResult{}, err
	}

	result := ConfirmResult{Proposal: proposal}
	switch proposal.Kind {
	case ProposalKindEdit:
		if err := s.ledger.Edit(ctx, *proposal.Transaction); err != nil {
			log.Warn().
				Err(err).
				Str("proposal_id", id.String()).
				Int64("transaction_id", proposal.TransactionID).
				Msg("Confirmed edit failed")
			return ConfirmResult{}, err
		}
		result.Message = MessageEdited

	case ProposalKindDelete:
		if err := s.ledger.Delete(ctx, proposal.TransactionID); err != nil {
			return ConfirmResult{}, err
		}
		result.Message = MessageDeleted
		if proposal.Transaction != nil {
			result.Removed = 1
		}

	case ProposalKindDeleteMonth:
		prefix := s.currentMonthPrefix()
		removed, err := s.ledger.DeleteByMonthPrefix(ctx, prefix)
		if err != nil {
			return ConfirmResult{}, err
		}
		result.Message = MessageMonthCleared
		result.MonthPrefix = prefix
		result.Removed = removed
	}

	log.Info().
		Str("proposal_id", id.String()).
		Str("kind", string(proposal.Kind)).
		Int("removed", result.Removed).
		Msg("Proposal confirmed")
	return result, nil
}

func (s *CommandService) stage(proposal Proposal) Proposal {
	now := s.now()
	proposal.ID = uuid.New()
	proposal.CreatedAt = now
	proposal.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpired()
	s.proposals[proposal.ID] = proposal

	log.Debug().
		Str("proposal_id", proposal.ID.String()).
		Str("kind", string(proposal.Kind)).
		Msg("Proposal staged")
	return proposal
}

// take removes and returns a pending proposal
func (s *CommandService) take(id uuid.UUID) (Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[id]
	if !ok {
		return Proposal{}, domain.ErrProposalNotFound
	}
	delete(s.proposals, id)
	if s.expired(proposal) {
		return Proposal{}, domain.ErrProposalNotFound
	}
	return proposal, nil
}

func (s *CommandService) expired(proposal Proposal) bool {
	return !s.now().Before(proposal.ExpiresAt)
}

// SweepExpired drops every expired proposal and returns how many were dropped
func (s *CommandService) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purgeExpired()
}

// Pending returns the number of proposals awaiting a decision
func (s *CommandService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.proposals)
}

// purgeExpired drops stale proposals. Callers must hold s.mu.
func (s *CommandService) purgeExpired() int {
	removed := 0
	for id, proposal := range s.proposals {
		if s.expired(proposal) {
			delete(s.proposals, id)
			removed++
		}
	}
	return removed
}

func (s *CommandService) currentMonthPrefix() string {
	return domain.MonthPrefix(util.CurrentMonth(s.now(), s.location))
}
