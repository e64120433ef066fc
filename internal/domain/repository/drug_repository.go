package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// DrugRepository define el puerto de persistencia del catálogo de medicamentos.
type DrugRepository interface {
	Create(drug *entity.Drug) error
	GetByID(id string) (*entity.Drug, error)
	GetByName(name string) (*entity.Drug, error)
	List(limit, offset int) ([]*entity.Drug, error)
	Update(drug *entity.Drug) error
	Delete(id string) error
}
