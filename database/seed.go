package database

import (
	"log"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(config.ConfigDefault("SEED_PASSWORD", "changeme123")), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashed := string(bytes)

	users := []model.User{
		{Username: "superadmin", Email: "superadmin@restaurant.local", Password: hashed, Role: constants.ROLE_SUPERADMIN, IsActive: true, IsSuperAdmin: true},
		{Username: "admin", Email: "admin@restaurant.local", Password: hashed, Role: constants.ROLE_ADMIN, IsActive: true},
		{Username: "kitchen1", Email: "kitchen1@restaurant.local", Password: hashed, Role: constants.ROLE_KITCHEN, IsActive: true, FirstName: "Kitchen", LastName: "One"},
		{Username: "waiter1", Email: "waiter1@restaurant.local", Password: hashed, Role: constants.ROLE_WAITER, IsActive: true, FirstName: "Waiter", LastName: "One"},
		{Username: "cashier1", Email: "cashier1@restaurant.local", Password: hashed, Role: constants.ROLE_CASHIER, IsActive: true, FirstName: "Cashier", LastName: "One"},
	}

	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Username, "error:", err)
		}
	}

	menuItems := []model.MenuItem{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese skewers", Price: 220, Category: "starters", IsVegetarian: true, SpicyLevel: 2, IsAvailable: true, PreparationTime: 15},
		{Name: "Tomato Soup", Description: "Slow-simmered tomato and basil", Price: 120, Category: "soups", IsVegetarian: true, IsAvailable: true, PreparationTime: 10},
		{Name: "Butter Chicken", Description: "Tandoori chicken in tomato gravy", Price: 340, Category: "main-course", SpicyLevel: 1, IsAvailable: true, PreparationTime: 25},
		{Name: "Garlic Naan", Description: "Leavened bread with garlic butter", Price: 60, Category: "breads", IsVegetarian: true, IsAvailable: true, PreparationTime: 8},
		{Name: "Jeera Rice", Description: "Basmati tempered with cumin", Price: 150, Category: "rice", IsVegetarian: true, IsAvailable: true, PreparationTime: 12},
		{Name: "Gulab Jamun", Description: "Milk dumplings in saffron syrup", Price: 100, Category: "desserts", IsVegetarian: true, IsAvailable: true, PreparationTime: 5},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 50, Category: "beverages", IsVegetarian: true, IsAvailable: true, PreparationTime: 5},
	}

	for _, item := range menuItems {
		if err := db.Where(model.MenuItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}

	baseUrl := config.ConfigDefault("FRONTEND_URL", "http://localhost:5173")
	tables := []model.Table{
		{TableNumber: "T1", Capacity: 2, Section: constants.SECTION_INDOOR, Status: constants.TABLE_AVAILABLE, IsActive: true},
		{TableNumber: "T2", Capacity: 4, Section: constants.SECTION_INDOOR, Status: constants.TABLE_AVAILABLE, IsActive: true},
		{TableNumber: "T3", Capacity: 4, Section: constants.SECTION_OUTDOOR, Status: constants.TABLE_AVAILABLE, IsActive: true},
		{TableNumber: "T4", Capacity: 6, Section: constants.SECTION_BALCONY, Status: constants.TABLE_AVAILABLE, IsActive: true},
		{TableNumber: "T5", Capacity: 8, Section: constants.SECTION_PRIVATE, Status: constants.TABLE_AVAILABLE, IsActive: true},
	}

	for _, table := range tables {
		if qr, err := utils.GenerateTableQR(table.TableNumber, baseUrl); err == nil {
			table.QRCode = qr
		} else {
			log.Println("failed to generate QR for table:", table.TableNumber, "error:", err)
		}
		if err := db.Where(model.Table{TableNumber: table.TableNumber}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.TableNumber, "error:", err)
		}
	}
}
