package menuControllers

import (
	"net/http"

	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
)

type menuUnit struct {
	catalog.Unit
	Stock *int `json:"stock,omitempty"`
}

type menuSection struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Image string     `json:"image"`
	Items []menuUnit `json:"items"`
}

// GET /menu - the static catalog with live stock merged onto desserts.
// A ledger read failure falls back to the plain catalog, matching the
// storefront's behavior when stock is unavailable.
func GetMenu(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stockBySlug := make(map[string]int)
		if records, err := ledger.ListByCategory(catalog.CategoryDesserts); err == nil {
			for _, r := range records {
				stockBySlug[r.Slug] = r.Stock
			}
		}

		sections := make([]menuSection, 0, len(catalog.Categories()))
		for _, cat := range catalog.Categories() {
			section := menuSection{ID: cat.ID, Label: cat.Label, Image: cat.Image}
			for _, item := range cat.Items {
				units := item.Variants
				if item.Unit != nil {
					units = []catalog.Variant{{Slug: item.Unit.Slug, Item: item.Unit.Item, Price: item.Unit.Price}}
				}
				for _, v := range units {
					mu := menuUnit{Unit: catalog.Unit{Slug: v.Slug, Item: v.Item, Price: v.Price, Image: item.Image}}
					if level, ok := stockBySlug[v.Slug]; ok {
						stockCopy := level
						mu.Stock = &stockCopy
					}
					section.Items = append(section.Items, mu)
				}
			}
			sections = append(sections, section)
		}

		c.JSON(http.StatusOK, sections)
	}
}
