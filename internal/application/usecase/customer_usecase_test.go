package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// custPointsRepo mantiene el saldo autoritativo del lado del "almacén":
// GetByID devuelve siempre una lectura congelada (Points: 100) mientras que
// AdjustPoints aplica el delta con guard sobre el saldo real, igual que el
// UPDATE relativo en PostgreSQL.
type custPointsRepo struct {
	exists    bool
	balance   int
	history   []entity.HistoryEntry
	gotDeltas []int
}

func (r *custPointsRepo) Create(*entity.Customer) error { return nil }
func (r *custPointsRepo) GetByID(tenantID, id string) (*entity.Customer, error) {
	if !r.exists {
		return nil, nil
	}
	return &entity.Customer{
		ID:       id,
		TenantID: tenantID,
		Name:     "María Pérez",
		Tier:     entity.TierBronce,
		Points:   100, // lectura congelada: puede estar desactualizada
	}, nil
}
func (r *custPointsRepo) ListByTenant(_ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *custPointsRepo) SearchByName(_, _ string, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *custPointsRepo) Update(*entity.Customer) error { return nil }
func (r *custPointsRepo) AdjustPoints(_, _ string, delta int, entry entity.HistoryEntry) (int, error) {
	if !r.exists {
		return 0, domain.ErrNotFound
	}
	if r.balance+delta < 0 {
		return 0, domain.ErrConflict
	}
	r.balance += delta
	r.history = append(r.history, entry)
	r.gotDeltas = append(r.gotDeltas, delta)
	return r.balance, nil
}
func (r *custPointsRepo) Delete(_, _ string) error { return nil }

func TestAdjustPoints_AplicaDeltaRelativo(t *testing.T) {
	repo := &custPointsRepo{exists: true, balance: 100}
	uc := usecase.NewCustomerUseCase(repo)

	out, err := uc.AdjustPoints("tn_cafe_luna", "cli_1", dto.AdjustPointsRequest{
		Points:      50,
		Description: "Compra en tienda",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50}, repo.gotDeltas, "el repositorio recibe el delta, no el saldo absoluto")
	assert.Equal(t, 150, out.Points, "la respuesta refleja el saldo devuelto por el almacén")
	require.Len(t, repo.history, 1)
	assert.Equal(t, 50, repo.history[0].Points)
	assert.Equal(t, "Compra en tienda", repo.history[0].Description)
}

func TestAdjustPoints_AjustesConcurrentesNoPierdenDeltas(t *testing.T) {
	// Dos ajustes cuya lectura previa vio el mismo saldo (100): con escritura
	// relativa ambos deltas sobreviven; con escritura absoluta uno se perdería.
	repo := &custPointsRepo{exists: true, balance: 100}
	uc := usecase.NewCustomerUseCase(repo)

	first, err := uc.AdjustPoints("tn_cafe_luna", "cli_1", dto.AdjustPointsRequest{Points: 50, Description: "Compra A"})
	require.NoError(t, err)
	second, err := uc.AdjustPoints("tn_cafe_luna", "cli_1", dto.AdjustPointsRequest{Points: 50, Description: "Compra B"})
	require.NoError(t, err)

	assert.Equal(t, 150, first.Points)
	assert.Equal(t, 200, second.Points)
	assert.Equal(t, 200, repo.balance)
	assert.Equal(t, []int{50, 50}, repo.gotDeltas)
}

func TestAdjustPoints_DebitoMayorAlSaldo_RetornaConflicto(t *testing.T) {
	repo := &custPointsRepo{exists: true, balance: 100}
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.AdjustPoints("tn_cafe_luna", "cli_1", dto.AdjustPointsRequest{
		Points:      -150,
		Description: "Canje de premio",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 100, repo.balance, "un débito rechazado no toca el saldo")
	assert.Empty(t, repo.history)
}

func TestAdjustPoints_ClienteInexistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(&custPointsRepo{})

	_, err := uc.AdjustPoints("tn_cafe_luna", "cli_fantasma", dto.AdjustPointsRequest{
		Points:      10,
		Description: "Compra",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustPoints_EntradaInvalida(t *testing.T) {
	uc := usecase.NewCustomerUseCase(&custPointsRepo{exists: true, balance: 100})

	for _, in := range []dto.AdjustPointsRequest{
		{Points: 0, Description: "Compra"},
		{Points: 10, Description: ""},
	} {
		_, err := uc.AdjustPoints("tn_cafe_luna", "cli_1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
