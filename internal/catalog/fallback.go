package catalog

// Fallback returns the static catalog used when the provider fails.
//
// The list is fixed and deterministic so the storefront stays usable
// without a seeded database.
func Fallback() []Product {
	return []Product{
		{ID: 1, Name: "Acoustic Pro Headphones", Description: "Experience crystal-clear audio with these noise-cancelling over-ear headphones.", Price: 149.99, Category: "Electronics", ImageURL: "https://picsum.photos/seed/product1/400/300"},
		{ID: 2, Name: "Nomad Canvas Backpack", Description: "A stylish and durable backpack perfect for daily commutes or weekend adventures.", Price: 79.50, Category: "Apparel", ImageURL: "https://picsum.photos/seed/product2/400/300"},
		{ID: 3, Name: "Minimalist Ceramic Vase", Description: "Add a touch of modern elegance to your home with this handcrafted ceramic vase.", Price: 45.00, Category: "Home Goods", ImageURL: "https://picsum.photos/seed/product3/400/300"},
		{ID: 4, Name: "Smart Fitness Tracker", Description: "Monitor your health and fitness goals with this sleek, feature-packed smart tracker.", Price: 99.99, Category: "Electronics", ImageURL: "https://picsum.photos/seed/product4/400/300"},
		{ID: 5, Name: "Organic Cotton Tee", Description: "A classic, ultra-soft t-shirt made from 100% organic cotton for everyday comfort.", Price: 29.95, Category: "Apparel", ImageURL: "https://picsum.photos/seed/product5/400/300"},
		{ID: 6, Name: "AeroPress Coffee Maker", Description: "Brew rich, smooth coffee without bitterness in under a minute with this innovative press.", Price: 34.99, Category: "Home Goods", ImageURL: "https://picsum.photos/seed/product6/400/300"},
	}
}
