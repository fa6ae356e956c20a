package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/events"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	"github.com/victoreder/admin-hublabel-sub000/internal/storage"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// InstallationService coordinates the installation ticket lifecycle.
type InstallationService struct {
	installations repository.InstallationRepository
	store         storage.Store
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	slaWindow     time.Duration
}

// InstallationDependencies bundles collaborators for the service.
type InstallationDependencies struct {
	InstallationRepo repository.InstallationRepository
	Store            storage.Store
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
	SLAWindow        time.Duration
}

// InstallationInput describes creation/edit payloads.
type InstallationInput struct {
	Telefone       string
	Dominio        string
	Prioridade     domain.InstallationPriority
	ColetarAcessos bool
	Acessos        string
	Arquivos       []domain.Arquivo
}

// MoveResult reports the outcome of a drag intent.
type MoveResult struct {
	NoOp         bool
	Installation *domain.Installation
}

// Board groups installations by kanban column, each column display-ordered.
type Board struct {
	Aguardando  []domain.Installation
	EmAndamento []domain.Installation
	Finalizado  []domain.Installation
}

// NewInstallationService constructs the service.
func NewInstallationService(deps InstallationDependencies) *InstallationService {
	window := deps.SLAWindow
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &InstallationService{
		installations: deps.InstallationRepo,
		store:         deps.Store,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
		slaWindow:     window,
	}
}

// SLAWindow exposes the configured countdown window for badge rendering.
func (s *InstallationService) SLAWindow() time.Duration {
	return s.slaWindow
}

// Create opens a new ticket in the aguardando column.
func (s *InstallationService) Create(ctx context.Context, input InstallationInput) (*domain.Installation, error) {
	if input.Prioridade == "" {
		input.Prioridade = domain.PriorityNormal
	}
	if !domain.ValidPriority(input.Prioridade) {
		return nil, apperrors.NewValidationError("prioridade inválida", map[string]any{"prioridade": input.Prioridade})
	}

	inst := &domain.Installation{
		Telefone:       input.Telefone,
		Dominio:        input.Dominio,
		Status:         domain.StatusAguardando,
		Prioridade:     input.Prioridade,
		ColetarAcessos: input.ColetarAcessos,
		Acessos:        input.Acessos,
		Arquivos:       input.Arquivos,
	}
	if inst.Arquivos == nil {
		inst.Arquivos = []domain.Arquivo{}
	}

	if err := s.installations.Create(ctx, inst); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:           events.EventInstallationCreated,
		InstallationID: inst.ID,
		Payload: events.InstallationCreatedPayload{
			Dominio:    inst.Dominio,
			Telefone:   inst.Telefone,
			Prioridade: inst.Prioridade,
		},
	})
	return inst, nil
}

// Get returns one ticket.
func (s *InstallationService) Get(ctx context.Context, id string) (*domain.Installation, error) {
	return s.installations.GetByID(ctx, id)
}

// List returns all tickets in creation order.
func (s *InstallationService) List(ctx context.Context) ([]domain.Installation, error) {
	return s.installations.List(ctx)
}

// BoardView loads all tickets and groups them into display-ordered columns.
func (s *InstallationService) BoardView(ctx context.Context) (*Board, error) {
	all, err := s.installations.List(ctx)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Aguardando:  []domain.Installation{},
		EmAndamento: []domain.Installation{},
		Finalizado:  []domain.Installation{},
	}
	for _, inst := range all {
		switch inst.Status {
		case domain.StatusAguardando:
			board.Aguardando = append(board.Aguardando, inst)
		case domain.StatusEmAndamento:
			board.EmAndamento = append(board.EmAndamento, inst)
		case domain.StatusFinalizado:
			board.Finalizado = append(board.Finalizado, inst)
		}
	}
	board.Aguardando = SortCards(board.Aguardando)
	board.EmAndamento = SortCards(board.EmAndamento)
	board.Finalizado = SortCards(board.Finalizado)
	return board, nil
}

// Update applies a manual edit. Status is never changed here; dropped
// attachment references are not purged from storage.
func (s *InstallationService) Update(ctx context.Context, id string, input InstallationInput) (*domain.Installation, error) {
	if input.Prioridade != "" && !domain.ValidPriority(input.Prioridade) {
		return nil, apperrors.NewValidationError("prioridade inválida", map[string]any{"prioridade": input.Prioridade})
	}

	inst, err := s.installations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inst.Telefone = input.Telefone
	inst.Dominio = input.Dominio
	if input.Prioridade != "" {
		inst.Prioridade = input.Prioridade
	}
	inst.ColetarAcessos = input.ColetarAcessos
	inst.Acessos = input.Acessos
	if input.Arquivos != nil {
		inst.Arquivos = input.Arquivos
	}

	if err := s.installations.Update(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// Delete removes a ticket permanently.
func (s *InstallationService) Delete(ctx context.Context, id string) error {
	if err := s.installations.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:           events.EventInstallationDeleted,
		InstallationID: id,
	})
	return nil
}

// RequestMove applies a drag-and-drop intent. Dropping a card on its current
// column is a cancel: nothing is persisted. Entering em_andamento clears the
// collect-access flag in the same row update. Entering finalizado triggers the
// best-effort attachment purge and finalization notification after the status
// write commits.
func (s *InstallationService) RequestMove(ctx context.Context, id string, from, to domain.InstallationStatus) (*MoveResult, error) {
	if !domain.ValidStatus(to) {
		return nil, apperrors.NewValidationError("status inválido", map[string]any{"status": to})
	}
	if to == from {
		return &MoveResult{NoOp: true}, nil
	}

	inst, err := s.installations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst.Status == to {
		return &MoveResult{NoOp: true, Installation: inst}, nil
	}

	oldStatus := inst.Status
	clearColetar := to == domain.StatusEmAndamento && inst.ColetarAcessos

	if err := s.installations.UpdateStatus(ctx, inst.ID, to, clearColetar); err != nil {
		return nil, err
	}

	inst.Status = to
	if clearColetar {
		inst.ColetarAcessos = false
	}

	if to == domain.StatusFinalizado {
		s.purgeAttachments(ctx, inst)
		s.publishEvent(ctx, events.Event{
			Type:           events.EventInstallationFinalized,
			InstallationID: inst.ID,
			Payload: events.InstallationFinalizedPayload{
				Dominio:  inst.Dominio,
				Telefone: inst.Telefone,
			},
		})
	}

	s.publishEvent(ctx, events.Event{
		Type:           events.EventInstallationMoved,
		InstallationID: inst.ID,
		Payload: events.InstallationMovedPayload{
			OldStatus: oldStatus,
			NewStatus: to,
		},
	})
	return &MoveResult{Installation: inst}, nil
}

// purgeAttachments deletes the blobs referenced at the time of transition.
// The arquivos list on the record is left untouched.
func (s *InstallationService) purgeAttachments(ctx context.Context, inst *domain.Installation) {
	if s.store == nil || len(inst.Arquivos) == 0 {
		return
	}
	urls := make([]string, 0, len(inst.Arquivos))
	for _, arquivo := range inst.Arquivos {
		urls = append(urls, arquivo.URL)
	}
	s.store.RemoveAll(ctx, urls)
}

func (s *InstallationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
