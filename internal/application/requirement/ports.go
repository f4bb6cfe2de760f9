package requirement

import (
	"context"

	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un repositorio
// de requerimientos atado a esa tx. Dentro de la transacción, NextSequence
// serializa generaciones concurrentes del mismo año (sin números duplicados).
type TxRunner interface {
	RunRequirement(ctx context.Context, fn func(reqRepo repository.RequirementRepository) error) error
}
