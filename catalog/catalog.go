// Package catalog holds the static menu of the restaurant. The catalog is
// configuration, not state: items are compiled in, and every purchasable
// unit (a single item or one size variant) carries a globally unique slug.
package catalog

// Unit is a single purchasable menu entry.
type Unit struct {
	Slug  string  `json:"slug"`
	Item  string  `json:"item"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Variant is one size option of a VariantItem.
type Variant struct {
	Size  string  `json:"size"`
	Slug  string  `json:"slug"`
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// MenuItem is either a single priced SKU or a set of size variants.
// Exactly one of Unit / Variants is populated.
type MenuItem struct {
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Unit     *Unit     `json:"unit,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

type Category struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Image string     `json:"image"`
	Items []MenuItem `json:"items"`
}

func single(name string, price float64, slug, image string) MenuItem {
	return MenuItem{Name: name, Image: image, Unit: &Unit{Slug: slug, Item: name, Price: price, Image: image}}
}

var menu = []Category{
	{
		ID:    "biryaniSpecial",
		Label: "Biryani Special",
		Image: "/half-portion-mutton-biryani.jpg",
		Items: []MenuItem{
			{
				Name:  "mutton biryani",
				Image: "/mutton-biryani-rice-dish.jpg",
				Variants: []Variant{
					{Size: "full", Slug: "mutton-biryani-full", Item: "mutton biryani full", Price: 450},
					{Size: "half", Slug: "mutton-biryani-half", Item: "mutton biryani half", Price: 350},
				},
			},
			{
				Name:  "chiken biryani",
				Image: "/chicken-biryani-full-plate.jpg",
				Variants: []Variant{
					{Size: "full", Slug: "chicken-biryani-full", Item: "chiken biryani full", Price: 250},
					{Size: "half", Slug: "chicken-biryani-half", Item: "chiken biryani half", Price: 150},
				},
			},
			single("chiken tikka biryani", 280, "chicken-tikka-biryani", "/chicken-tikka-biryani.jpg"),
			single("chiken tangdi biryani full", 280, "chicken-tangdi-biryani-full", "/chicken-leg-biryani.jpg"),
			single("roast biryani full", 150, "roast-biryani-full", "/roast-biryani.jpg"),
		},
	},
	{
		ID:    "rotiItems",
		Label: "Roti & Naan",
		Image: "/plain-naan-bread.jpg",
		Items: []MenuItem{
			single("Tandoori roti", 20, "tandoori-roti", "/tandoori-roti-bread.jpg"),
			single("Plain naan", 30, "plain-naan", "/plain-naan-bread.jpg"),
			single("butter naan", 40, "butter-naan", "/butter-naan.png"),
			single("Garlic naan", 40, "garlic-naan", "/garlic-naan.png"),
			single("Cheese naan", 40, "cheese-naan", "/cheese-naan-bread.jpg"),
			single("kulch", 20, "kulch", "/kulcha-bread.jpg"),
			single("butter kulch", 25, "butter-kulch", "/butter-kulcha-bread.jpg"),
		},
	},
	{
		ID:    "gravyItems",
		Label: "Gravy Items",
		Image: "/kadai-chicken-curry.jpg",
		Items: []MenuItem{
			single("Murg musallam", 180, "murg-musallam", "/murg-musallam-chicken-curry.jpg"),
			single("hydrabadi dum chicken", 180, "hyderabadi-dum-chicken", "/hyderabadi-dum-chicken.jpg"),
			single("kadai chicken", 180, "kadai-chicken", "/kadai-chicken-curry.jpg"),
			single("shahi chicken", 200, "shahi-chicken", "/shahi-korma.webp"),
		},
	},
	{
		ID:    "tandooriSpecial",
		Label: "Tandoori Special",
		Image: "/tandoori.png",
		Items: []MenuItem{
			{
				Name:  "Tandoori Chicken",
				Image: "/tandoori.png",
				Variants: []Variant{
					{Size: "half", Slug: "tandoori-chicken-half", Item: "Tandoori Chicken half", Price: 250},
					{Size: "full", Slug: "tandoori-chicken-full", Item: "Tandoori Chicken full", Price: 450},
				},
			},
			single("Chicken tikka", 180, "chicken-tikka", "/chicken-tikka.png"),
			single("Malai kabab", 180, "malai-kabab", "/malai-kabab.png"),
			single("Haryali kabab", 180, "haryali-kabab", "/haryali-kabab.png"),
			single("Reshmi kabab", 180, "reshmi-kabab", "/reshmi-kabab.png"),
			single("afghani kabab", 180, "afghani-kabab", "/afghani-kabab.png"),
			single("labda kabab", 180, "labda-kabab", "/labda-kabab.png"),
			single("tangdi kabab", 180, "tangdi-kabab", "/tangadi-kabab.png"),
			single("sultani kabab", 180, "sultani-kabab", "/sultani-kabab.png"),
		},
	},
	{
		ID:    "nihariItems",
		Label: "Nihari & More",
		Image: "/paya.png",
		Items: []MenuItem{
			single("Paya", 150, "paya", "/paya.png"),
			single("bheja fry", 180, "bheja-fry", "/bheja-fry.png"),
		},
	},
	{
		ID:    "desserts",
		Label: "Desserts",
		Image: "/apricot.png",
		Items: []MenuItem{
			single("Apricot delight", 100, "apricot-delight", "/apricot.png"),
			single("shatoot malai", 120, "shatoot-malai", "/shatoot.png"),
			single("kubani ka mitha", 40, "kubani-ka-mitha", "/kubani.png"),
			single("kaddu ka kheer", 80, "kaddu-ka-kheer", "/khadu.png"),
			single("sitaphal malai", 150, "sitaphal-malai", "/sitaphal.png"),
		},
	},
}

// units is the flattened slug index, built once at init.
var units = func() map[string]Unit {
	m := make(map[string]Unit)
	for _, cat := range menu {
		for _, item := range cat.Items {
			if item.Unit != nil {
				m[item.Unit.Slug] = *item.Unit
				continue
			}
			for _, v := range item.Variants {
				m[v.Slug] = Unit{Slug: v.Slug, Item: v.Item, Price: v.Price, Image: item.Image}
			}
		}
	}
	return m
}()

// Categories returns the menu in display order.
func Categories() []Category {
	return menu
}

// Units returns every purchasable unit keyed by slug.
func Units() map[string]Unit {
	return units
}

// FindUnit looks up a purchasable unit by slug.
func FindUnit(slug string) (Unit, bool) {
	u, ok := units[slug]
	return u, ok
}

// CategoryDesserts is the only category the stock ledger tracks.
const CategoryDesserts = "desserts"

// dessertNames is the canonical slug -> display name table for
// stock-tracked items. Unknown slugs pass through unchanged.
var dessertNames = map[string]string{
	"apricot-delight": "Apricot delight",
	"shatoot-malai":   "shatoot malai",
	"kubani-ka-mitha": "kubani ka mitha",
	"kaddu-ka-kheer":  "kaddu ka kheer",
	"sitaphal-malai":  "sitaphal malai",
}

// DessertName returns the canonical display name for a dessert slug, or
// the slug itself when it is not in the table.
func DessertName(slug string) string {
	if name, ok := dessertNames[slug]; ok {
		return name
	}
	return slug
}

// IsDessert reports whether the slug belongs to the stock-tracked set.
func IsDessert(slug string) bool {
	_, ok := dessertNames[slug]
	return ok
}

// DessertSeed is one entry of the default stock set.
type DessertSeed struct {
	Slug  string
	Item  string
	Stock int
}

// DefaultDessertStock returns the seed records used by the initialize
// endpoint.
func DefaultDessertStock() []DessertSeed {
	return []DessertSeed{
		{Slug: "apricot-delight", Item: "Apricot delight", Stock: 5},
		{Slug: "shatoot-malai", Item: "shatoot malai", Stock: 0},
		{Slug: "kubani-ka-mitha", Item: "kubani ka mitha", Stock: 10},
		{Slug: "kaddu-ka-kheer", Item: "kaddu ka kheer", Stock: 8},
		{Slug: "sitaphal-malai", Item: "sitaphal malai", Stock: 3},
	}
}
