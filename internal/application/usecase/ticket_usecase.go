package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/application/validation"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// TicketTxRunner ejecuta fn dentro de una transacción con un repositorio de tickets ligado a ella.
// Si fn devuelve error se hace rollback.
type TicketTxRunner interface {
	RunTicket(ctx context.Context, fn func(tickets repository.TicketRepository) error) error
}

// TicketUseCase casos de uso de tickets y su relación con productos.
type TicketUseCase struct {
	repo         repository.TicketRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	tx           TicketTxRunner
	log          *logger.Logger
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(
	repo repository.TicketRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	tx TicketTxRunner,
	log *logger.Logger,
) *TicketUseCase {
	return &TicketUseCase{repo: repo, locationRepo: locationRepo, productRepo: productRepo, tx: tx, log: log}
}

// List lista tickets con ubicación y productos.
func (uc *TicketUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.TicketListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *mapper.ToTicketDTO(v))
	}
	return &dto.TicketListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

func (uc *TicketUseCase) get(ctx context.Context, id int64) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound(domain.MsgTicketNotFound)
	}
	return t, nil
}

// GetByID obtiene un ticket por ID.
func (uc *TicketUseCase) GetByID(ctx context.Context, id int64) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToTicketDTO(t), nil
}

// resolve valida la entrada y resuelve ubicación y productos.
// Los ids de producto inexistentes se ignoran; debe quedar al menos uno.
func (uc *TicketUseCase) resolve(ctx context.Context, in *dto.CreateTicketRequest) (*entity.Location, []*entity.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, nil, err
	}
	if in.Date.IsZero() {
		return nil, nil, domain.Invalid(domain.MsgValidation, "date (required)")
	}
	if err := checkAmount("discount", in.Discount, maxDiscount); err != nil {
		return nil, nil, err
	}
	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, nil, err
	}
	if loc == nil {
		return nil, nil, domain.NotFound(domain.MsgTicketLocationNotFound)
	}
	ids := slices.Clone(in.ProductIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(products) == 0 {
		return nil, nil, domain.NotFound(domain.MsgTicketProductsNotFound)
	}
	if len(products) < len(ids) {
		uc.log.Warn().Int("requested", len(ids)).Int("found", len(products)).Msg("ticket con productos inexistentes ignorados")
	}
	return loc, products, nil
}

// Create crea el ticket y sus enlaces con productos en una transacción.
func (uc *TicketUseCase) Create(ctx context.Context, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	loc, products, err := uc.resolve(ctx, &in)
	if err != nil {
		return nil, err
	}
	t := mapper.ToTicketEntity(&in, loc, products)
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	if err := uc.tx.RunTicket(ctx, func(tickets repository.TicketRepository) error {
		return tickets.Create(ctx, t)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", t.ID).Int("products", len(products)).Msg("ticket creado")
	return mapper.ToTicketDTO(t), nil
}

// Update reemplaza fecha, descuento, ubicación y productos.
func (uc *TicketUseCase) Update(ctx context.Context, id int64, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	loc, products, err := uc.resolve(ctx, &in)
	if err != nil {
		return nil, err
	}
	t.Date = in.Date.Time
	t.Discount = in.Discount
	t.LocationID, t.Location = loc.ID, loc
	t.Products = products
	t.UpdatedAt = time.Now()
	if err := uc.tx.RunTicket(ctx, func(tickets repository.TicketRepository) error {
		return tickets.Update(ctx, t)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", id).Msg("ticket actualizado")
	return mapper.ToTicketDTO(t), nil
}

// Delete elimina un ticket y sus enlaces.
func (uc *TicketUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("ticket eliminado")
	return nil
}

// AddProduct asocia un producto al ticket. Falla si ya estaba asociado.
func (uc *TicketUseCase) AddProduct(ctx context.Context, ticketID, productID int64) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(domain.MsgTicketProductNotFound)
	}
	if t.HasProduct(productID) {
		return nil, domain.Invalid(domain.MsgTicketProductAlreadyLinked)
	}
	if err := uc.repo.AddProduct(ctx, ticketID, productID); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Invalid(domain.MsgTicketProductAlreadyLinked)
		}
		return nil, err
	}
	t.Products = append(t.Products, product)
	uc.log.Info().Int64("ticket_id", ticketID).Int64("product_id", productID).Msg("producto añadido al ticket")
	return mapper.ToTicketDTO(t), nil
}

// RemoveProduct desasocia un producto del ticket. Falla si no estaba asociado.
func (uc *TicketUseCase) RemoveProduct(ctx context.Context, ticketID, productID int64) (*dto.TicketResponse, error) {
	t, err := uc.get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !t.HasProduct(productID) {
		return nil, domain.Invalid(domain.MsgTicketProductNotLinked)
	}
	if err := uc.repo.RemoveProduct(ctx, ticketID, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid(domain.MsgTicketProductNotLinked)
		}
		return nil, err
	}
	t.Products = slices.DeleteFunc(t.Products, func(p *entity.Product) bool { return p.ID == productID })
	uc.log.Info().Int64("ticket_id", ticketID).Int64("product_id", productID).Msg("producto quitado del ticket")
	return mapper.ToTicketDTO(t), nil
}
