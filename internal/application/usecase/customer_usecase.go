package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// CustomerUseCase gestiona los clientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	auditor   ledger.Auditor
}

// NewCustomerUseCase crea el caso de uso de clientes.
func NewCustomerUseCase(customers repository.CustomerRepository, auditor ledger.Auditor) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, auditor: auditor}
}

// Create registra un cliente minorista o mayorista.
func (uc *CustomerUseCase) Create(req dto.CreateCustomerRequest, actorID string) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !validCustomerType(req.Type) {
		return nil, fmt.Errorf("%w: tipo de cliente desconocido %q", domain.ErrInvalidInput, req.Type)
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Contact:   req.Contact,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, fmt.Errorf("error al crear cliente: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionCreate, "customers",
		fmt.Sprintf("cliente creado: %s (%s)", customer.Name, customer.ID))
	return customer, nil
}

// GetByID devuelve un cliente o ErrNotFound.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar cliente: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return customer, nil
}

// List devuelve una página de clientes.
func (uc *CustomerUseCase) List(q dto.ListQuery) ([]*entity.Customer, error) {
	q.Normalize()
	return uc.customers.List(q.Limit, q.Offset)
}

// Update aplica cambios parciales a un cliente.
func (uc *CustomerUseCase) Update(id string, req dto.UpdateCustomerRequest, actorID string) (*entity.Customer, error) {
	customer, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		customer.Name = *req.Name
	}
	if req.Type != nil {
		if !validCustomerType(*req.Type) {
			return nil, fmt.Errorf("%w: tipo de cliente desconocido %q", domain.ErrInvalidInput, *req.Type)
		}
		customer.Type = *req.Type
	}
	if req.Contact != nil {
		customer.Contact = *req.Contact
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, fmt.Errorf("error al actualizar cliente: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionUpdate, "customers",
		fmt.Sprintf("cliente actualizado: %s (%s)", customer.Name, customer.ID))
	return customer, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id, actorID string) error {
	customer, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.customers.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}
	uc.auditor.Record(actorID, entity.ActionDelete, "customers",
		fmt.Sprintf("cliente eliminado: %s (%s)", customer.Name, customer.ID))
	return nil
}

func validCustomerType(t string) bool {
	return t == entity.CustomerTypeRetail || t == entity.CustomerTypeWholesale
}
