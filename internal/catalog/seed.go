package catalog

// SeedProducts returns the demo storefront inventory.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "mug-001",
			Name:          "Stoneware Coffee Mug",
			Description:   "Classic stoneware mug, perfect for your morning coffee",
			Price:         499,
			Currency:      "INR",
			Category:      "mug",
			Color:         "white",
			Material:      "stoneware",
			Capacity:      "350ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=400&fit=crop",
			StockQuantity: 25,
		},
		{
			ID:            "mug-002",
			Name:          "Ceramic Travel Mug",
			Description:   "Double-walled ceramic mug with silicone lid for travel",
			Price:         799,
			Currency:      "INR",
			Category:      "mug",
			Color:         "black",
			Material:      "ceramic",
			Capacity:      "400ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1577937927133-66ef06acdf18?w=400&h=400&fit=crop",
			StockQuantity: 18,
		},
		{
			ID:            "mug-003",
			Name:          "Artisan Hand-painted Mug",
			Description:   "Beautiful hand-painted mug with floral design",
			Price:         650,
			Currency:      "INR",
			Category:      "mug",
			Color:         "blue",
			Material:      "ceramic",
			Capacity:      "300ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
			StockQuantity: 12,
		},
		{
			ID:            "mug-004",
			Name:          "Minimalist Espresso Cup",
			Description:   "Sleek espresso cup with matching saucer",
			Price:         350,
			Currency:      "INR",
			Category:      "mug",
			Color:         "grey",
			Material:      "porcelain",
			Capacity:      "100ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1572119865084-43c285814d63?w=400&h=400&fit=crop",
			StockQuantity: 30,
		},
		{
			ID:            "tshirt-001",
			Name:          "Classic Cotton T-Shirt",
			Description:   "Soft 100% cotton t-shirt, comfortable for everyday wear",
			Price:         599,
			Currency:      "INR",
			Category:      "tshirt",
			Color:         "white",
			Material:      "cotton",
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			StockQuantity: 50,
		},
		{
			ID:            "tshirt-002",
			Name:          "Premium V-Neck T-Shirt",
			Description:   "Premium quality v-neck with a modern fit",
			Price:         899,
			Currency:      "INR",
			Category:      "tshirt",
			Color:         "black",
			Material:      "cotton-blend",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=400&h=400&fit=crop",
			StockQuantity: 35,
		},
		{
			ID:            "tshirt-003",
			Name:          "Graphic Print T-Shirt",
			Description:   "Trendy graphic print tee with unique design",
			Price:         749,
			Currency:      "INR",
			Category:      "tshirt",
			Color:         "navy",
			Material:      "cotton",
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400&h=400&fit=crop",
			StockQuantity: 20,
		},
		{
			ID:            "tshirt-004",
			Name:          "Vintage Wash T-Shirt",
			Description:   "Soft vintage washed tee with a retro feel",
			Price:         850,
			Currency:      "INR",
			Category:      "tshirt",
			Color:         "grey",
			Material:      "cotton",
			Sizes:         []string{"M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=400&h=400&fit=crop",
			StockQuantity: 15,
		},
		{
			ID:            "hoodie-001",
			Name:          "Classic Pullover Hoodie",
			Description:   "Warm and cozy pullover hoodie with kangaroo pocket",
			Price:         1499,
			Currency:      "INR",
			Category:      "hoodie",
			Color:         "black",
			Material:      "cotton-fleece",
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=400&fit=crop",
			StockQuantity: 22,
		},
		{
			ID:            "hoodie-002",
			Name:          "Zip-Up Sports Hoodie",
			Description:   "Lightweight zip-up hoodie perfect for workouts",
			Price:         1299,
			Currency:      "INR",
			Category:      "hoodie",
			Color:         "grey",
			Material:      "polyester-blend",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1578768079052-aa76e52ff62e?w=400&h=400&fit=crop",
			StockQuantity: 28,
		},
		{
			ID:            "hoodie-003",
			Name:          "Oversized Streetwear Hoodie",
			Description:   "Trendy oversized hoodie with dropped shoulders",
			Price:         1799,
			Currency:      "INR",
			Category:      "hoodie",
			Color:         "olive",
			Material:      "cotton-fleece",
			Sizes:         []string{"M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=400&fit=crop",
			StockQuantity: 10,
		},
		{
			ID:            "hoodie-004",
			Name:          "Tech Fleece Hoodie",
			Description:   "Modern tech fleece hoodie with sleek design",
			Price:         2199,
			Currency:      "INR",
			Category:      "hoodie",
			Color:         "navy",
			Material:      "tech-fleece",
			Sizes:         []string{"S", "M", "L", "XL"},
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1542406775-ade58c52d2e4?w=400&h=400&fit=crop",
			StockQuantity: 16,
		},
		{
			ID:            "bottle-001",
			Name:          "Stainless Steel Water Bottle",
			Description:   "Double-walled insulated bottle keeps drinks cold for 24hrs",
			Price:         899,
			Currency:      "INR",
			Category:      "bottle",
			Color:         "silver",
			Material:      "stainless-steel",
			Capacity:      "750ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400&h=400&fit=crop",
			StockQuantity: 40,
		},
		{
			ID:            "bottle-002",
			Name:          "Glass Water Bottle",
			Description:   "Eco-friendly glass bottle with silicone sleeve",
			Price:         599,
			Currency:      "INR",
			Category:      "bottle",
			Color:         "blue",
			Material:      "glass",
			Capacity:      "500ml",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=400&h=400&fit=crop",
			StockQuantity: 33,
		},
		{
			ID:            "bag-001",
			Name:          "Canvas Tote Bag",
			Description:   "Durable canvas tote bag for everyday use",
			Price:         449,
			Currency:      "INR",
			Category:      "bag",
			Color:         "beige",
			Material:      "canvas",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1544816155-12df9643f363?w=400&h=400&fit=crop",
			StockQuantity: 45,
		},
		{
			ID:            "bag-002",
			Name:          "Laptop Backpack",
			Description:   "Spacious backpack with padded laptop compartment",
			Price:         1999,
			Currency:      "INR",
			Category:      "bag",
			Color:         "black",
			Material:      "nylon",
			InStock:       true,
			ImageURL:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			StockQuantity: 19,
		},
	}
}
