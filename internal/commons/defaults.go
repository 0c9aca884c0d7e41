package commons

// DefaultSeed is the built-in dataset used when no seed file is configured.
func DefaultSeed() *Seed {
	return &Seed{
		Menu: []SeedMenuItem{
			{
				ID:          "1",
				Name:        "izziBurger Duplo",
				Description: "Double beef patty with cheese, lettuce, tomato and special sauce",
				Price:       "42.50",
				Category:    "Burgers",
				Image:       "/classic-beef-burger.png",
				Available:   true,
			},
			{
				ID:          "2",
				Name:        "Pizza Margherita",
				Description: "Classic pizza with tomato sauce, mozzarella and fresh basil",
				Price:       "38.00",
				Category:    "Pizzas",
				Image:       "/delicious-pizza.png",
				Available:   true,
			},
			{
				ID:          "3",
				Name:        "Salada Caesar",
				Description: "Fresh romaine lettuce with caesar dressing and croutons",
				Price:       "28.00",
				Category:    "Salads",
				Image:       "/vibrant-mixed-salad.png",
				Available:   false,
			},
			{
				ID:        "4",
				Name:      "Batata Frita",
				Price:     "15.00",
				Category:  "Sides",
				Available: true,
			},
			{
				ID:        "5",
				Name:      "Coca-Cola",
				Price:     "8.00",
				Category:  "Drinks",
				Available: true,
			},
			{
				ID:        "6",
				Name:      "Água",
				Price:     "5.00",
				Category:  "Drinks",
				Available: true,
			},
		},
		Tables: []SeedTable{
			{
				ID:        2,
				Status:    "occupied",
				PartySize: 4,
				Items: []SeedLine{
					{MenuItemID: "1", Name: "izziBurger Duplo", Price: "42.50", Quantity: 2},
					{MenuItemID: "2", Name: "Pizza Margherita", Price: "38.00", Quantity: 1},
				},
			},
			{
				ID:        4,
				Status:    "closing",
				PartySize: 2,
				Items: []SeedLine{
					{MenuItemID: "3", Name: "Salada Caesar", Price: "28.00", Quantity: 2},
				},
			},
			{
				ID:        6,
				Status:    "occupied",
				PartySize: 3,
				Items: []SeedLine{
					{MenuItemID: "1", Name: "izziBurger Duplo", Price: "42.50", Quantity: 1},
				},
			},
		},
		Orders: []SeedOrder{
			{
				ID:             "#1235",
				CustomerName:   "Ana B.",
				Source:         "ifood",
				Type:           "delivery",
				Status:         "new",
				WaitingMinutes: 8,
				Items: []SeedLine{
					{MenuItemID: "1", Name: "izziBurger Duplo", Price: "42.50", Quantity: 2, Note: "no onions"},
					{MenuItemID: "4", Name: "Batata Frita", Price: "15.00", Quantity: 1},
				},
			},
			{
				ID:             "#1236",
				CustomerName:   "João S.",
				Source:         "table",
				Type:           "table",
				TableNumber:    5,
				Status:         "new",
				WaitingMinutes: 12,
				Items: []SeedLine{
					{MenuItemID: "2", Name: "Pizza Margherita", Price: "38.00", Quantity: 1},
					{MenuItemID: "5", Name: "Coca-Cola", Price: "8.00", Quantity: 2},
				},
			},
			{
				ID:             "#1234",
				CustomerName:   "Maria L.",
				Source:         "delivery",
				Type:           "delivery",
				Status:         "confirmed",
				WaitingMinutes: 5,
				Items: []SeedLine{
					{MenuItemID: "3", Name: "Salada Caesar", Price: "28.00", Quantity: 1},
				},
			},
		},
	}
}
