package persistence

import (
	"context"
	"testing"

	"github.com/autenticco/backend/internal/domain/catalog"
	"github.com/autenticco/backend/internal/domain/finance"
	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCar(t *testing.T, brand string) *catalog.Car {
	t.Helper()
	car, err := catalog.NewCar(catalog.CarInput{
		Brand:           brand,
		Model:           "Onix",
		Year:            2021,
		ManufactureYear: 2020,
		Price:           decimal.NewFromInt(65000),
		Mileage:         30000,
		Transmission:    catalog.TransmissionManual,
		Features:        []string{"ar-condicionado", "multimídia"},
	})
	require.NoError(t, err)
	return car
}

func TestGormCarRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormCarRepository(db)

	chevy := newTestCar(t, "Chevrolet")
	fiat := newTestCar(t, "Fiat")
	require.NoError(t, fiat.MarkSold(fiat.CreatedAt))
	require.NoError(t, repo.Save(ctx, chevy))
	require.NoError(t, repo.Save(ctx, fiat))

	t.Run("round trips json features and slug lookup", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, chevy.Slug)
		require.NoError(t, err)
		assert.Equal(t, chevy.ID, found.ID)
		assert.Equal(t, []string{"ar-condicionado", "multimídia"}, found.Features)
		require.NotNil(t, found.IsAvailable)
		assert.True(t, *found.IsAvailable)
	})

	t.Run("lists stock and filters by status", func(t *testing.T) {
		stock, err := repo.ListInStock(ctx)
		require.NoError(t, err)
		require.Len(t, stock, 1)
		assert.Equal(t, chevy.ID, stock[0].ID)

		sold, total, err := repo.FindAll(ctx, catalog.CarFilter{Filter: shared.DefaultFilter(), Status: catalog.StockSold})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, fiat.ID, sold[0].ID)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("searches brand case-insensitively", func(t *testing.T) {
		cars, total, err := repo.FindAll(ctx, catalog.CarFilter{Filter: shared.Filter{Search: "chev"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Chevrolet", cars[0].Brand)
	})

	t.Run("update finance writes patch and nulls percent", func(t *testing.T) {
		pct := decimal.NewFromInt(12)
		chevy.ProfitPercent = &pct
		require.NoError(t, repo.Save(ctx, chevy))

		commission := decimal.NewFromInt(3000)
		patch := catalog.FinancePatch{Commission: &commission, Profit: decimal.NewFromInt(2600)}
		require.NoError(t, repo.UpdateFinance(ctx, chevy.ID, patch))

		found, err := repo.FindByID(ctx, chevy.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Profit)
		assert.True(t, found.Profit.Equal(decimal.NewFromInt(2600)))
		require.NotNil(t, found.Commission)
		assert.True(t, found.Commission.Equal(commission))
		assert.Nil(t, found.ProfitPercent)
		assert.Nil(t, found.FipeValue)
	})

	t.Run("update finance on unknown car", func(t *testing.T) {
		err := repo.UpdateFinance(ctx, uuid.New(), catalog.FinancePatch{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestMarketingRepositories_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	platforms := NewGormPlatformRepository(db)
	pubs := NewGormPublicationRepository(db)
	leads := NewGormLeadRepository(db)
	testimonials := NewGormTestimonialRepository(db)

	webmotors, err := marketing.NewPlatform("Webmotors", marketing.PlatformMarketplace)
	require.NoError(t, err)
	require.NoError(t, platforms.Save(ctx, webmotors))

	carA, carB := uuid.New(), uuid.New()
	p1, err := marketing.NewPublication(carA, &webmotors.ID, decimal.NewFromInt(150), nil)
	require.NoError(t, err)
	p2, err := marketing.NewPublication(carB, nil, decimal.Zero, nil)
	require.NoError(t, err)
	require.NoError(t, pubs.Save(ctx, p1))
	require.NoError(t, pubs.Save(ctx, p2))

	t.Run("publications narrowed by car", func(t *testing.T) {
		all, err := pubs.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		onlyA, err := pubs.ListAll(ctx, carA)
		require.NoError(t, err)
		require.Len(t, onlyA, 1)
		assert.True(t, onlyA[0].Spent.Equal(decimal.NewFromInt(150)))

		count, err := pubs.CountByPlatform(ctx, webmotors.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("platform delete", func(t *testing.T) {
		other, err := marketing.NewPlatform("Instagram", marketing.PlatformSocial)
		require.NoError(t, err)
		require.NoError(t, platforms.Save(ctx, other))
		require.NoError(t, platforms.Delete(ctx, other.ID))
		assert.ErrorIs(t, platforms.Delete(ctx, other.ID), shared.ErrNotFound)

		list, err := platforms.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("lead filters", func(t *testing.T) {
		l1, err := marketing.NewLead(marketing.LeadInput{Name: "Ana", Phone: "(11) 98888-7777", CarID: &carA})
		require.NoError(t, err)
		l2, err := marketing.NewLead(marketing.LeadInput{Name: "Bruno", Phone: "11 97777-6666"})
		require.NoError(t, err)
		require.NoError(t, l2.TransitionTo(marketing.LeadContacted, "ligou"))
		require.NoError(t, leads.Save(ctx, l1))
		require.NoError(t, leads.Save(ctx, l2))

		found, total, err := leads.FindAll(ctx, marketing.LeadFilter{Status: marketing.LeadNew})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Ana", found[0].Name)

		found, total, err = leads.FindAll(ctx, marketing.LeadFilter{CarID: &carA})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, marketing.LeadSourceCar, found[0].Source)

		loaded, err := leads.FindByID(ctx, l2.ID)
		require.NoError(t, err)
		assert.Equal(t, marketing.LeadContacted, loaded.Status)
	})

	t.Run("testimonials published only", func(t *testing.T) {
		t1, err := marketing.NewTestimonial("Carla", "Campinas", "Civic 2019", "Atendimento ótimo", 5)
		require.NoError(t, err)
		t1.Publish()
		t2, err := marketing.NewTestimonial("Davi", "", "", "Gostei", 4)
		require.NoError(t, err)
		require.NoError(t, testimonials.Save(ctx, t1))
		require.NoError(t, testimonials.Save(ctx, t2))

		published, err := testimonials.ListAll(ctx, true)
		require.NoError(t, err)
		require.Len(t, published, 1)
		assert.Equal(t, "Carla", published[0].CustomerName)

		all, err := testimonials.ListAll(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestFinanceRepositories_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	expenses := NewGormExpenseRepository(db)
	sales := NewGormSaleRepository(db)

	carID := uuid.New()
	charged := decimal.NewFromInt(200)
	exp, err := finance.NewExpense(finance.ExpenseInput{
		CarID:        carID,
		Category:     finance.ExpenseDetailing,
		Amount:       decimal.NewFromInt(300),
		ChargedValue: &charged,
	})
	require.NoError(t, err)
	require.NoError(t, expenses.Save(ctx, exp))

	t.Run("expense keeps charged value", func(t *testing.T) {
		list, err := expenses.ListAll(ctx, carID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].ChargedValue)
		assert.True(t, list[0].ChargedValue.Equal(charged))

		none, err := expenses.ListAll(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, none)

		require.NoError(t, expenses.Delete(ctx, exp.ID))
		_, err = expenses.FindByID(ctx, exp.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("sale lookup by car", func(t *testing.T) {
		sale, err := finance.NewSale(finance.SaleInput{CarID: carID, SalePrice: decimal.NewFromInt(70000)})
		require.NoError(t, err)
		require.NoError(t, sales.Save(ctx, sale))

		found, err := sales.FindByCar(ctx, carID)
		require.NoError(t, err)
		assert.Equal(t, sale.ID, found.ID)
		assert.Nil(t, found.Commission)
		assert.Equal(t, finance.PaymentCash, found.PaymentMethod)

		_, err = sales.FindByCar(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		list, total, err := sales.FindAll(ctx, finance.SaleFilter{CarID: &carID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, list, 1)
	})
}

func TestIdentityRepositories_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roles := NewGormRoleRepository(db)
	users := NewGormUserRepository(db)

	role, err := identity.NewRole("seller", "Vendedor", "", []string{"cars:read", "leads:write"})
	require.NoError(t, err)
	require.NoError(t, roles.Save(ctx, role))

	t.Run("role permissions replaced on save", func(t *testing.T) {
		found, err := roles.FindByCode(ctx, "seller")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"cars:read", "leads:write"}, found.PermissionCodes())

		require.NoError(t, found.SetPermissions([]string{"reports:read"}))
		require.NoError(t, roles.Save(ctx, found))

		reloaded, err := roles.FindByID(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"reports:read"}, reloaded.PermissionCodes())
	})

	t.Run("users by email and role", func(t *testing.T) {
		user, err := identity.NewUser("Gerente@Autenticco.com.br", "Gerente", "s3nha-forte", role.ID)
		require.NoError(t, err)
		require.NoError(t, users.Save(ctx, user))

		found, err := users.FindByEmail(ctx, "gerente@autenticco.com.br")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		exists, err := users.ExistsByEmail(ctx, "GERENTE@autenticco.com.br")
		require.NoError(t, err)
		assert.True(t, exists)

		count, err := users.CountByRole(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("role delete", func(t *testing.T) {
		require.NoError(t, roles.Delete(ctx, role.ID))
		_, err := roles.FindByID(ctx, role.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
