package catalog

// Products returns the storefront's product list. Each call returns a fresh copy.
func Products() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "iPhone 16 Pro Max Elite Case",
			Category:      "premium",
			Price:         "$79.99",
			OriginalPrice: "$99.99",
			Description:   "Military-grade protection with MagSafe compatibility and wireless charging support",
			InStock:       true,
			Rating:        4.9,
			Reviews:       234,
			Features:      []string{"Drop Protection", "Wireless Charging", "MagSafe Compatible"},
		},
		{
			ID:            2,
			Name:          "Galaxy S24 Ultra Premium Skin",
			Category:      "skins",
			Price:         "$34.99",
			OriginalPrice: "$44.99",
			Description:   "Precision-cut 3M vinyl with air-release technology for bubble-free application",
			InStock:       true,
			Rating:        4.8,
			Reviews:       187,
			Features:      []string{"3M Vinyl", "Bubble-Free", "Easy Removal"},
		},
		{
			ID:            3,
			Name:          "MacBook Pro Armor Case",
			Category:      "laptop",
			Price:         "$129.99",
			OriginalPrice: "$159.99",
			Description:   "Ultra-lightweight protection with perfect port access and heat dissipation",
			InStock:       false,
			Rating:        4.7,
			Reviews:       156,
			Features:      []string{"Heat Dissipation", "Port Access", "Lightweight"},
		},
		{
			ID:            4,
			Name:          "AirPods Pro 2 Luxury Case",
			Category:      "accessories",
			Price:         "$49.99",
			OriginalPrice: "$64.99",
			Description:   "Premium leather case with built-in key ring and wireless charging support",
			InStock:       true,
			Rating:        4.9,
			Reviews:       298,
			Features:      []string{"Genuine Leather", "Key Ring", "Wireless Ready"},
		},
		{
			ID:            5,
			Name:          "iPad Air Custom Folio",
			Category:      "tablet",
			Price:         "$89.99",
			OriginalPrice: "$119.99",
			Description:   "Multi-angle stand with Apple Pencil holder and smart wake/sleep function",
			InStock:       true,
			Rating:        4.8,
			Reviews:       203,
			Features:      []string{"Multi-Angle", "Pencil Holder", "Smart Wake"},
		},
		{
			ID:            6,
			Name:          "Gaming Phone Cooler Case",
			Category:      "gaming",
			Price:         "$94.99",
			OriginalPrice: "$124.99",
			Description:   "Active cooling system with RGB lighting and enhanced grip for gaming",
			InStock:       true,
			Rating:        4.6,
			Reviews:       142,
			Features:      []string{"Active Cooling", "RGB Lighting", "Gaming Grip"},
		},
	}
}

// Categories returns the filter options in display order.
func Categories() []Category {
	return []Category{
		{Value: CategoryAll, Label: "All Products"},
		{Value: "premium", Label: "Premium Cases"},
		{Value: "skins", Label: "Device Skins"},
		{Value: "laptop", Label: "Laptop Cases"},
		{Value: "accessories", Label: "Accessories"},
		{Value: "tablet", Label: "Tablet Cases"},
		{Value: "gaming", Label: "Gaming Cases"},
	}
}
