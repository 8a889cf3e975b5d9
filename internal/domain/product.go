package domain

// Product represents one of the dishes that can be reserved for pickup
type Product struct {
	ID          string
	Name        string
	Description string
	ImageRef    string
	Tag         string
}

// Catalog is the fixed, ordered list of products offered by the shop.
// The first entry is the default selection.
type Catalog []Product

// DefaultCatalog returns the shop catalog. A fresh slice is returned on every call.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          "vicentina",
			Name:        "Baccalà alla Vicentina",
			Description: "Stoccafisso di prima scelta, cotto lentamente con latte, cipolla e acciughe secondo la tradizione. Cremoso e saporito.",
			ImageRef:    "https://i.ibb.co/zWQbXvnd/Gemini-Generated-Image-zeftmpzeftmpzeft.png",
			Tag:         "Il Classico",
		},
		{
			ID:          "mantecato",
			Name:        "Baccalà Mantecato",
			Description: "Una nuvola di sapore. Stoccafisso battuto a mano e montato con olio fino a diventare una crema soffice e delicata.",
			ImageRef:    "https://i.ibb.co/SDfLYWZJ/Gemini-Generated-Image-sleb0vsleb0vsleb.png",
			Tag:         "Spalmabile",
		},
		{
			ID:          "insalata",
			Name:        "Baccalà in Insalata",
			Description: "Fresco e leggero. Filetti di baccalà conditi con prezzemolo, aglio e limone. Ideale come antipasto fresco.",
			ImageRef:    "https://i.ibb.co/TqPd9f9L/Gemini-Generated-Image-fbxq1ufbxq1ufbxq.png",
			Tag:         "Fresco",
		},
	}
}

// Default returns the default product (the first catalog entry)
func (c Catalog) Default() Product {
	if len(c) == 0 {
		return Product{}
	}
	return c[0]
}

// Find returns the product with the given ID
func (c Catalog) Find(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
