package main

import (
	"os"

	"github.com/kirana-store/kirana/internal/config"
	"github.com/kirana-store/kirana/internal/logger"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/units"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Rating      float64
	Pack        float64
	Unit        units.Unit
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	products := []seedProduct{
		// Staples and grains
		{"Basmati Rice", 85.00, models.CategoryStaples, "Premium quality Basmati rice", 4.6, 1, units.UnitKg},
		{"Normal Rice", 45.00, models.CategoryStaples, "Regular quality rice", 4.3, 1, units.UnitKg},
		{"Wheat (Atta)", 42.00, models.CategoryStaples, "Whole wheat flour (Atta)", 4.5, 1, units.UnitKg},
		{"Maida", 38.00, models.CategoryStaples, "Refined flour (Maida)", 4.2, 1, units.UnitKg},
		{"Sooji (Rava)", 55.00, models.CategoryStaples, "Semolina (Sooji)", 4.4, 500, units.UnitGram},
		{"Poha", 48.00, models.CategoryStaples, "Flattened rice (Poha)", 4.3, 500, units.UnitGram},
		{"Vermicelli (Seviyan)", 65.00, models.CategoryStaples, "Vermicelli noodles", 4.5, 500, units.UnitGram},

		// Pulses
		{"Toor Dal (Arhar)", 120.00, models.CategoryPulses, "Premium quality Arhar dal (Toor dal)", 4.6, 1, units.UnitKg},
		{"Moong Dal", 110.00, models.CategoryPulses, "Premium quality yellow moong dal", 4.5, 1, units.UnitKg},
		{"Lal Masoor Dal", 95.00, models.CategoryPulses, "Red lentil (Lal masoor dal)", 4.4, 1, units.UnitKg},
		{"Chana Dal", 105.00, models.CategoryPulses, "Split chickpea dal (Chana dal)", 4.5, 1, units.UnitKg},
		{"Urad Dal", 130.00, models.CategoryPulses, "Black gram dal (Urad dal)", 4.6, 1, units.UnitKg},
		{"Rajma", 140.00, models.CategoryPulses, "Kidney beans (Rajma)", 4.5, 1, units.UnitKg},
		{"Chole (Kabuli Chana)", 125.00, models.CategoryPulses, "White chickpeas (Chole)", 4.5, 1, units.UnitKg},
		{"Kala Chana", 135.00, models.CategoryPulses, "Black chickpeas (Kala chana)", 4.6, 1, units.UnitKg},
		{"Lobia", 120.00, models.CategoryPulses, "Black eyed beans (Lobia)", 4.4, 1, units.UnitKg},
		{"Sabut Moong", 125.00, models.CategoryPulses, "Whole green moong beans (Sabut moong)", 4.5, 1, units.UnitKg},

		// Spices and masala
		{"Salt", 18.00, models.CategorySpices, "Iodized salt", 4.7, 1, units.UnitKg},
		{"Turmeric Powder (Haldi)", 180.00, models.CategorySpices, "Pure turmeric powder", 4.6, 200, units.UnitGram},
		{"Red Chilli Powder", 150.00, models.CategorySpices, "Red chilli powder", 4.5, 200, units.UnitGram},
		{"Coriander Powder", 120.00, models.CategorySpices, "Coriander powder", 4.4, 200, units.UnitGram},
		{"Garam Masala", 95.00, models.CategorySpices, "Garam masala powder", 4.6, 100, units.UnitGram},
		{"Cumin Seeds (Jeera)", 200.00, models.CategorySpices, "Cumin seeds", 4.5, 200, units.UnitGram},
		{"Mustard Seeds (Rai)", 85.00, models.CategorySpices, "Mustard seeds", 4.4, 200, units.UnitGram},

		// Oil, ghee and condiments
		{"Mustard Oil", 135.00, models.CategoryOil, "Pure mustard oil", 4.5, 1, units.UnitLitre},
		{"Sunflower Oil", 125.00, models.CategoryOil, "Refined sunflower oil", 4.4, 1, units.UnitLitre},
		{"Ghee", 580.00, models.CategoryOil, "Pure desi ghee", 4.7, 1, units.UnitKg},
		{"Butter", 85.00, models.CategoryOil, "Amul butter", 4.6, 100, units.UnitGram},
		{"Tomato Ketchup", 65.00, models.CategoryOil, "Tomato ketchup", 4.5, 500, units.UnitGram},
		{"Pickles (Achar)", 95.00, models.CategoryOil, "Mixed pickle", 4.4, 500, units.UnitGram},

		// Snacks and biscuits
		{"Biscuits", 45.00, models.CategorySnacks, "Assorted biscuits", 4.5, 200, units.UnitGram},
		{"Namkeen", 85.00, models.CategorySnacks, "Mixed namkeen", 4.4, 250, units.UnitGram},
		{"Chips", 20.00, models.CategorySnacks, "Potato chips", 4.3, 1, units.UnitPacket},
		{"Bread", 35.00, models.CategorySnacks, "White bread", 4.3, 1, units.UnitPiece},
		{"Rusk", 55.00, models.CategorySnacks, "Butter rusk", 4.5, 200, units.UnitGram},

		// Tea, coffee and beverages
		{"Tea", 120.00, models.CategoryBeverages, "Premium tea leaves", 4.6, 250, units.UnitGram},
		{"Coffee", 280.00, models.CategoryBeverages, "Instant coffee powder", 4.5, 200, units.UnitGram},
		{"Sugar", 48.00, models.CategoryBeverages, "White sugar", 4.4, 1, units.UnitKg},
		{"Jaggery (Gur)", 65.00, models.CategoryBeverages, "Organic jaggery", 4.5, 500, units.UnitGram},
		{"Soft Drinks", 35.00, models.CategoryBeverages, "Cold drink", 4.2, 750, units.UnitMl},
		{"Fruit Juice", 85.00, models.CategoryBeverages, "Mixed fruit juice", 4.4, 1, units.UnitLitre},

		// Household and cleaning
		{"Detergent Powder", 180.00, models.CategoryHousehold, "Washing detergent powder", 4.5, 1, units.UnitKg},
		{"Washing Soap", 25.00, models.CategoryHousehold, "Laundry soap bar", 4.4, 1, units.UnitPiece},
		{"Dishwash Liquid", 95.00, models.CategoryHousehold, "Dishwashing liquid", 4.5, 750, units.UnitMl},
		{"Floor Cleaner", 120.00, models.CategoryHousehold, "Floor cleaning liquid", 4.4, 1, units.UnitLitre},
		{"Garbage Bags", 85.00, models.CategoryHousehold, "Garbage bags, pack of 20", 4.3, 1, units.UnitPacket},

		// Personal care
		{"Soap", 35.00, models.CategoryPersonalCare, "Bathing soap bar", 4.5, 1, units.UnitPiece},
		{"Shampoo", 180.00, models.CategoryPersonalCare, "Hair shampoo", 4.5, 400, units.UnitMl},
		{"Toothpaste", 95.00, models.CategoryPersonalCare, "Toothpaste", 4.6, 200, units.UnitGram},
		{"Toothbrush", 45.00, models.CategoryPersonalCare, "Soft bristle toothbrush", 4.4, 1, units.UnitPiece},
		{"Hair Oil", 120.00, models.CategoryPersonalCare, "Coconut hair oil", 4.5, 200, units.UnitMl},

		// Miscellaneous
		{"Matchbox", 2.00, models.CategoryMiscellaneous, "Safety matchbox", 4.3, 1, units.UnitPiece},
		{"Candles", 45.00, models.CategoryMiscellaneous, "Pack of 6 candles", 4.2, 1, units.UnitPacket},
		{"Agarbatti", 25.00, models.CategoryMiscellaneous, "Incense sticks, pack of 2", 4.4, 1, units.UnitPacket},
		{"Eggs", 84.00, models.CategoryMiscellaneous, "Farm fresh eggs", 4.5, 1, units.UnitDozen},
	}

	created := 0
	for i, sp := range products {
		var existing models.Product
		err := models.DB.Where("name = ?", sp.Name).First(&existing).Error
		if err == nil {
			stdLog.Printf("product already exists: %s", sp.Name)
			continue
		}
		product := models.Product{
			Name:         sp.Name,
			PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(sp.Price)),
			Category:     sp.Category,
			InStock:      true,
			Description:  sp.Description,
			Rating:       sp.Rating,
			PackQuantity: sp.Pack,
			Unit:         sp.Unit,
			SortOrder:    i,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("failed to create product %s: %v", sp.Name, err)
			continue
		}
		created++
	}
	stdLog.Printf("seed done: %d products created, %d total in list", created, len(products))

	adminUser := os.Getenv("KIRANA_DEFAULT_ADMIN_USERNAME")
	adminPass := os.Getenv("KIRANA_DEFAULT_ADMIN_PASSWORD")
	if err := models.InitDefaultAdmin(adminUser, adminPass); err != nil {
		stdLog.Printf("failed to init default admin: %v", err)
	}
}
