package provisioning

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// seedDemoData agrega clientes, recompensas, usuarios y sucursales de muestra al
// mismo batch transaccional del aprovisionamiento. Solo se usa con ModeDemoSeeded.
func seedDemoData(
	tenantID string,
	now time.Time,
	customerRepo repository.CustomerRepository,
	rewardRepo repository.RewardRepository,
	userRepo repository.TenantUserRepository,
	branchRepo repository.BranchRepository,
) error {
	for _, c := range demoCustomers(tenantID, now) {
		if err := customerRepo.Create(c); err != nil {
			return err
		}
	}
	for _, r := range demoRewards(tenantID, now) {
		if err := rewardRepo.Create(r); err != nil {
			return err
		}
	}
	for _, u := range demoUsers(tenantID, now) {
		if err := userRepo.Create(u); err != nil {
			return err
		}
	}
	for _, b := range demoBranches(tenantID, now) {
		if err := branchRepo.Create(b); err != nil {
			return err
		}
	}
	return nil
}

func demoCustomers(tenantID string, now time.Time) []*entity.Customer {
	build := func(name, email, tier, segment string, points int) *entity.Customer {
		return &entity.Customer{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      name,
			Email:     email,
			Tier:      tier,
			Points:    points,
			Segment:   segment,
			Joined:    now,
			Initials:  entity.Initials(name),
			History:   []entity.HistoryEntry{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []*entity.Customer{
		build("Ana Martínez", "ana.martinez@example.com", entity.TierOro, entity.SegmentVIP, 2450),
		build("Carlos Pérez", "carlos.perez@example.com", entity.TierPlata, entity.SegmentFrecuente, 820),
		build("Lucía Gómez", "lucia.gomez@example.com", entity.TierBronce, entity.SegmentNuevo, 120),
	}
}

func demoRewards(tenantID string, now time.Time) []*entity.Reward {
	build := func(name, desc string, cost int, value int64) *entity.Reward {
		return &entity.Reward{
			ID:          uuid.New().String(),
			TenantID:    tenantID,
			Name:        name,
			Description: desc,
			PointsCost:  cost,
			Value:       decimal.NewFromInt(value),
			Status:      entity.RewardActiva,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []*entity.Reward{
		build("Café gratis", "Un café de la casa por tu fidelidad", 100, 5000),
		build("Descuento 10%", "10% de descuento en tu próxima compra", 250, 0),
		build("Postre de cortesía", "Postre a elección con cualquier compra", 400, 12000),
	}
}

func demoUsers(tenantID string, now time.Time) []*entity.TenantUser {
	build := func(name, email, role string) *entity.TenantUser {
		return &entity.TenantUser{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      name,
			Email:     email,
			Role:      role,
			Status:    entity.UserActivo,
			Initials:  entity.Initials(name),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []*entity.TenantUser{
		build("María Rodríguez", "maria.rodriguez@example.com", entity.RoleGerente),
		build("Jorge Díaz", "jorge.diaz@example.com", entity.RoleCajero),
	}
}

func demoBranches(tenantID string, now time.Time) []*entity.Branch {
	build := func(name, address, city string) *entity.Branch {
		return &entity.Branch{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      name,
			Address:   address,
			City:      city,
			Status:    "Activa",
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []*entity.Branch{
		build("Sede Principal", "Calle 85 # 12-34", "Bogotá"),
		build("Sede Norte", "Av. 19 # 120-56", "Bogotá"),
	}
}
