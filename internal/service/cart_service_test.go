package service

import (
	"errors"
	"testing"

	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/repository"
	"github.com/kirana-store/kirana/internal/units"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCartTestService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newCartTestDB(t)
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, product *models.Product) *models.Product {
	t.Helper()
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestCartServiceAddAccumulates(t *testing.T) {
	svc, db := newCartTestService(t)
	rice := seedProduct(t, db, &models.Product{
		Name:         "Basmati Rice",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
		Category:     models.CategoryStaples,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitKg,
	})

	if _, err := svc.Add("tok-1", rice.ID, 500); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	detail, err := svc.Add("tok-1", rice.ID, 250)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(detail.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(detail.Lines))
	}
	if detail.Lines[0].Quantity != 750 {
		t.Fatalf("expected 750 g, got %d", detail.Lines[0].Quantity)
	}
	if got := detail.TotalPrice.StringFixed(2); got != "60.00" {
		t.Fatalf("expected total 60.00, got %s", got)
	}
}

func TestCartServiceUpdateOverwritesAndRemoves(t *testing.T) {
	svc, db := newCartTestService(t)
	eggs := seedProduct(t, db, &models.Product{
		Name:         "Eggs",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(84)),
		Category:     models.CategoryMiscellaneous,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitDozen,
	})

	if _, err := svc.Add("tok-2", eggs.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	detail, err := svc.Update("tok-2", eggs.ID, 5)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if detail.Lines[0].Quantity != 5 {
		t.Fatalf("expected overwrite to 5, got %d", detail.Lines[0].Quantity)
	}

	detail, err = svc.Update("tok-2", eggs.ID, 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(detail.Lines))
	}
}

func TestCartServiceUpdateUnknownProductIsNoop(t *testing.T) {
	svc, db := newCartTestService(t)
	atta := seedProduct(t, db, &models.Product{
		Name:         "Atta",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		Category:     models.CategoryStaples,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitKg,
	})

	if _, err := svc.Add("tok-3", atta.ID, 1000); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	detail, err := svc.Update("tok-3", 9999, 3)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(detail.Lines) != 1 || detail.Lines[0].Quantity != 1000 {
		t.Fatalf("expected cart unchanged, got %+v", detail.Lines)
	}
}

func TestCartServiceRejectsBelowMinimumMeasured(t *testing.T) {
	svc, db := newCartTestService(t)
	milk := seedProduct(t, db, &models.Product{
		Name:         "Milk",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
		Category:     models.CategoryBeverages,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitLitre,
	})

	if _, err := svc.Add("tok-4", milk.ID, 50); !errors.Is(err, ErrQuantityTooSmall) {
		t.Fatalf("expected ErrQuantityTooSmall, got %v", err)
	}
	if _, err := svc.Add("tok-4", milk.ID, 100); err != nil {
		t.Fatalf("100 ml should be accepted: %v", err)
	}
}

func TestCartServiceRejectsOutOfStockProduct(t *testing.T) {
	svc, db := newCartTestService(t)
	sugar := seedProduct(t, db, &models.Product{
		Name:         "Sugar",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(45)),
		Category:     models.CategoryStaples,
		InStock:      false,
		PackQuantity: 1,
		Unit:         units.UnitKg,
	})

	if _, err := svc.Add("tok-5", sugar.ID, 500); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestCartServicePrunesVanishedProducts(t *testing.T) {
	svc, db := newCartTestService(t)
	bread := seedProduct(t, db, &models.Product{
		Name:         "Bread",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(35)),
		Category:     models.CategorySnacks,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitPacket,
	})

	if _, err := svc.Add("tok-6", bread.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", bread.ID).Update("in_stock", false).Error; err != nil {
		t.Fatalf("flip stock failed: %v", err)
	}

	detail, err := svc.Get("tok-6")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("expected pruned cart, got %d lines", len(detail.Lines))
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_token = ?", "tok-6").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected stored rows pruned, got %d", count)
	}
}

func TestCartServicePersistsAcrossLoads(t *testing.T) {
	svc, db := newCartTestService(t)
	dal := seedProduct(t, db, &models.Product{
		Name:         "Toor Dal",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
		Category:     models.CategoryPulses,
		InStock:      true,
		PackQuantity: 1,
		Unit:         units.UnitKg,
	})
	tea := seedProduct(t, db, &models.Product{
		Name:         "Tea",
		PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(140)),
		Category:     models.CategoryBeverages,
		InStock:      true,
		PackQuantity: 250,
		Unit:         units.UnitGram,
	})

	if _, err := svc.Add("tok-7", dal.ID, 500); err != nil {
		t.Fatalf("add dal failed: %v", err)
	}
	if _, err := svc.Add("tok-7", tea.ID, 250); err != nil {
		t.Fatalf("add tea failed: %v", err)
	}

	// Fresh service over the same database sees the same cart.
	reloaded := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	detail, err := reloaded.Get("tok-7")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if detail.TotalItems != 2 {
		t.Fatalf("expected 2 lines, got %d", detail.TotalItems)
	}
	if detail.Lines[0].Product.Name != "Toor Dal" || detail.Lines[1].Product.Name != "Tea" {
		t.Fatalf("expected insertion order preserved, got %s then %s",
			detail.Lines[0].Product.Name, detail.Lines[1].Product.Name)
	}
	// 0.5 kg of dal at 120/kg plus a 250 g tea pack at 140.
	if got := detail.TotalPrice.StringFixed(2); got != "200.00" {
		t.Fatalf("expected total 200.00, got %s", got)
	}
}
