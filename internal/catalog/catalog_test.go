package catalog

import (
	"testing"

	"order-desk/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: "P001", Name: "Laptop", Price: decimal.NewFromInt(1200)},
		{ID: "P002", Name: "Smartphone", Price: decimal.NewFromInt(800)},
		{ID: "P003", Name: "Headphones", Price: decimal.NewFromInt(150)},
	}
}

func testPromotions() []model.Promotion {
	return []model.Promotion{
		{ID: "PR1", Code: "SAVE10", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(10), Description: "10% off"},
		{ID: "PR2", Code: "FLAT100", Kind: model.PromotionFixed, Value: decimal.NewFromInt(100), Description: "$100 off"},
		{ID: "PR3", Code: "NONE", Kind: model.PromotionNone, Value: decimal.Zero, Description: "No discount"},
	}
}

func TestNew_Success(t *testing.T) {
	cat, err := New(testProducts(), testPromotions())
	require.NoError(t, err)

	assert.Len(t, cat.Products(), 3)
	assert.Len(t, cat.Promotions(), 3)

	none := cat.NonePromotion()
	assert.Equal(t, model.NoPromotionCode, none.Code)
	assert.True(t, none.IsNone())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		products   []model.Product
		promotions []model.Promotion
		errMatch   string
	}{
		{
			name:       "Missing NONE promotion",
			products:   testProducts(),
			promotions: testPromotions()[:2],
			errMatch:   "missing the reserved",
		},
		{
			name: "Duplicate product ID",
			products: append(testProducts(),
				model.Product{ID: "P001", Name: "Copy", Price: decimal.NewFromInt(1)}),
			promotions: testPromotions(),
			errMatch:   "duplicate product ID",
		},
		{
			name:     "Duplicate promotion code",
			products: testProducts(),
			promotions: append(testPromotions(),
				model.Promotion{ID: "PR4", Code: "SAVE10", Kind: model.PromotionPercentage, Value: decimal.NewFromInt(5)}),
			errMatch: "duplicate promotion code",
		},
		{
			name:     "Unknown promotion kind",
			products: testProducts(),
			promotions: append(testPromotions(),
				model.Promotion{ID: "PR4", Code: "MYSTERY1", Kind: model.PromotionKind("bogo"), Value: decimal.NewFromInt(1)}),
			errMatch: "unknown kind",
		},
		{
			name:     "Negative promotion value",
			products: testProducts(),
			promotions: append(testPromotions(),
				model.Promotion{ID: "PR4", Code: "NEGATIVE1", Kind: model.PromotionFixed, Value: decimal.NewFromInt(-5)}),
			errMatch: "negative value",
		},
		{
			name: "Negative product price",
			products: append(testProducts(),
				model.Product{ID: "P009", Name: "Broken", Price: decimal.NewFromInt(-10)}),
			promotions: testPromotions(),
			errMatch:   "negative price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products, tt.promotions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
		})
	}
}

func TestCatalog_Lookups(t *testing.T) {
	cat, err := New(testProducts(), testPromotions())
	require.NoError(t, err)

	p, err := cat.Product("P002")
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", p.Name)

	_, err = cat.Product("P999")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	promo, err := cat.Promotion("PR1")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", promo.Code)

	_, err = cat.Promotion("PR99")
	assert.ErrorIs(t, err, model.ErrPromotionNotFound)

	byCode, err := cat.PromotionByCode("FLAT100")
	require.NoError(t, err)
	assert.Equal(t, "PR2", byCode.ID)

	_, err = cat.PromotionByCode("UNKNOWN1")
	assert.ErrorIs(t, err, model.ErrPromotionNotFound)
}

func TestCatalog_SnapshotsAreCopies(t *testing.T) {
	cat, err := New(testProducts(), testPromotions())
	require.NoError(t, err)

	products := cat.Products()
	products[0].Name = "Mutated"

	fresh, err := cat.Product("P001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", fresh.Name, "catalogue must be immutable")
}
