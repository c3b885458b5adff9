package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
	"github.com/sustainalink/platform/internal/infrastructure/db/memory"
)

func newStores() Stores {
	return Stores{
		Users:     memory.NewUserStore(),
		Products:  memory.NewProductStore(),
		Suppliers: memory.NewSupplierStore(),
		Rewards:   memory.NewRewardStore(),
	}
}

func TestRun_SeedsDemoData(t *testing.T) {
	ctx := context.Background()
	s := newStores()

	require.NoError(t, Run(ctx, s, bcrypt.MinCost, zerolog.Nop()))

	demo, err := s.Users.FindByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleConsumer, demo.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.PasswordHash), []byte(DemoPassword)))

	admin, err := s.Users.FindByEmail(ctx, AdminEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(AdminPassword)))

	suppliers, total, err := s.Suppliers.List(ctx, ports.SupplierFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, sup := range suppliers {
		assert.Positive(t, sup.OverallESGScore)
		assert.Equal(t, domain.RiskLow, sup.RiskLevel)
	}

	products, total, err := s.Products.List(ctx, ports.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range products {
		assert.NotEmpty(t, p.SupplyChain.SupplierID)
	}

	rewards, err := s.Rewards.List(ctx, ports.RewardFilter{})
	require.NoError(t, err)
	assert.Len(t, rewards, 3)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newStores()

	require.NoError(t, Run(ctx, s, bcrypt.MinCost, zerolog.Nop()))
	require.NoError(t, Run(ctx, s, bcrypt.MinCost, zerolog.Nop()))

	rewards, err := s.Rewards.List(ctx, ports.RewardFilter{})
	require.NoError(t, err)
	assert.Len(t, rewards, 3)
}
