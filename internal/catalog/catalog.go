package catalog

import (
	"fmt"

	"order-desk/internal/model"
)

// Catalog is an immutable snapshot of the product and promotion catalogues.
// It is built once at startup and injected into the services that need it;
// lookups against missing entries are catalogue-consistency errors, not
// recoverable user input problems.
type Catalog struct {
	products     map[string]int
	promotions   map[string]int
	promosByCode map[string]int
	productList  []model.Product
	promoList    []model.Promotion
	noneIndex    int
}

// New builds a Catalog from the given entries. It validates that IDs and
// codes are unique, that every promotion has a recognised kind and a
// non-negative value, and that the reserved NONE promotion is present.
func New(products []model.Product, promotions []model.Promotion) (*Catalog, error) {
	c := &Catalog{
		products:     make(map[string]int, len(products)),
		promotions:   make(map[string]int, len(promotions)),
		promosByCode: make(map[string]int, len(promotions)),
		productList:  make([]model.Product, len(products)),
		promoList:    make([]model.Promotion, len(promotions)),
		noneIndex:    -1,
	}

	copy(c.productList, products)
	copy(c.promoList, promotions)

	for i, p := range c.productList {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has empty ID", i)
		}
		if _, exists := c.products[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product ID %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price %s", p.ID, p.Price)
		}
		c.products[p.ID] = i
	}

	for i, p := range c.promoList {
		if p.ID == "" {
			return nil, fmt.Errorf("promotion at index %d has empty ID", i)
		}
		if _, exists := c.promotions[p.ID]; exists {
			return nil, fmt.Errorf("duplicate promotion ID %q", p.ID)
		}
		if _, exists := c.promosByCode[p.Code]; exists {
			return nil, fmt.Errorf("duplicate promotion code %q", p.Code)
		}
		switch p.Kind {
		case model.PromotionPercentage, model.PromotionFixed, model.PromotionNone:
		default:
			return nil, fmt.Errorf("promotion %q has unknown kind %q", p.Code, p.Kind)
		}
		if p.Value.IsNegative() {
			return nil, fmt.Errorf("promotion %q has negative value %s", p.Code, p.Value)
		}
		c.promotions[p.ID] = i
		c.promosByCode[p.Code] = i

		if p.Code == model.NoPromotionCode {
			c.noneIndex = i
		}
	}

	if c.noneIndex < 0 {
		return nil, fmt.Errorf("catalogue is missing the reserved %q promotion", model.NoPromotionCode)
	}

	return c, nil
}

// Product returns the catalogue entry for the given product ID.
func (c *Catalog) Product(id string) (*model.Product, error) {
	i, ok := c.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	p := c.productList[i]
	return &p, nil
}

// Promotion returns the catalogue entry for the given promotion ID.
func (c *Catalog) Promotion(id string) (*model.Promotion, error) {
	i, ok := c.promotions[id]
	if !ok {
		return nil, model.ErrPromotionNotFound
	}
	p := c.promoList[i]
	return &p, nil
}

// PromotionByCode returns the catalogue entry for the given promotion code.
func (c *Catalog) PromotionByCode(code string) (*model.Promotion, error) {
	i, ok := c.promosByCode[code]
	if !ok {
		return nil, model.ErrPromotionNotFound
	}
	p := c.promoList[i]
	return &p, nil
}

// NonePromotion returns the reserved no-discount promotion applied to newly
// added cart items.
func (c *Catalog) NonePromotion() *model.Promotion {
	p := c.promoList[c.noneIndex]
	return &p
}

// Products returns all products in catalogue order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.productList))
	copy(out, c.productList)
	return out
}

// Promotions returns all promotions in catalogue order.
func (c *Catalog) Promotions() []model.Promotion {
	out := make([]model.Promotion, len(c.promoList))
	copy(out, c.promoList)
	return out
}
