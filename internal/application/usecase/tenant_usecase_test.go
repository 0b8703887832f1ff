package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

type tenantRepoFake struct {
	tenant *entity.Tenant
}

func (r *tenantRepoFake) Create(*entity.Tenant) error { return nil }
func (r *tenantRepoFake) GetByID(id string) (*entity.Tenant, error) {
	if r.tenant != nil && r.tenant.ID == id {
		return r.tenant, nil
	}
	return nil, nil
}
func (r *tenantRepoFake) Update(t *entity.Tenant) error           { r.tenant = t; return nil }
func (r *tenantRepoFake) UpdateStatus(_, _, _ string) error       { return nil }
func (r *tenantRepoFake) List(_, _ int) ([]*entity.Tenant, error) { return nil, nil }
func (r *tenantRepoFake) Delete(string) error                     { return nil }

func TestTenantGetByID_Existente(t *testing.T) {
	repo := &tenantRepoFake{tenant: &entity.Tenant{
		ID:        "tn_cafe_luna",
		Name:      "Café Luna",
		Plan:      entity.PlanCrecimiento,
		Status:    entity.TenantPrueba,
		CreatedAt: time.Now(),
	}}
	uc := usecase.NewTenantUseCase(repo)

	out, err := uc.GetByID("tn_cafe_luna")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Café Luna", out.Name)
}

func TestTenantGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewTenantUseCase(&tenantRepoFake{})

	out, err := uc.GetByID("tn_fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out, "un tenant inexistente nunca produce un cuerpo 200 nulo")
}
