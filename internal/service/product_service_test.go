package service

import (
	"errors"
	"testing"

	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductTestService(t *testing.T) *ProductService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func TestProductServiceCreateAndList(t *testing.T) {
	svc := newProductTestService(t)

	created, err := svc.Create(UpsertProductInput{
		Name:         "Turmeric Powder",
		PriceAmount:  decimal.NewFromInt(55),
		Category:     models.CategorySpices,
		PackQuantity: 100,
		Unit:         "gram",
		Rating:       4.5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.InStock {
		t.Fatalf("new products default to in stock")
	}

	hidden := false
	if _, err := svc.Create(UpsertProductInput{
		Name:        "Discontinued Soap",
		PriceAmount: decimal.NewFromInt(20),
		Category:    models.CategoryPersonalCare,
		InStock:     &hidden,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	public, total, err := svc.ListPublic("", "", 1, 20)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if total != 1 || len(public) != 1 || public[0].Name != "Turmeric Powder" {
		t.Fatalf("public list should hide out-of-stock products, got %d", total)
	}

	all, total, err := svc.ListAdmin("", "", 1, 20)
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("admin list should include everything, got %d", total)
	}
}

func TestProductServiceValidation(t *testing.T) {
	svc := newProductTestService(t)

	cases := []UpsertProductInput{
		{Name: "  ", PriceAmount: decimal.NewFromInt(10), Category: models.CategoryStaples},
		{Name: "Bad Price", PriceAmount: decimal.NewFromInt(-1), Category: models.CategoryStaples},
		{Name: "Bad Pack", PriceAmount: decimal.NewFromInt(10), Category: models.CategoryStaples, PackQuantity: -2},
		{Name: "Bad Rating", PriceAmount: decimal.NewFromInt(10), Category: models.CategoryStaples, Rating: 6},
	}
	for _, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestProductServiceSetStockAndDelete(t *testing.T) {
	svc := newProductTestService(t)

	created, err := svc.Create(UpsertProductInput{
		Name:        "Detergent",
		PriceAmount: decimal.NewFromInt(99),
		Category:    models.CategoryHousehold,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.SetStock(created.ID, false)
	if err != nil {
		t.Fatalf("set stock failed: %v", err)
	}
	if updated.InStock {
		t.Fatalf("expected out of stock")
	}
	if _, err := svc.GetPublicByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("public lookup should miss out-of-stock product, got %v", err)
	}
	if _, err := svc.GetAdminByID(created.ID); err != nil {
		t.Fatalf("admin lookup failed: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetAdminByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
