package repository

import (
	"testing"

	"github.com/revogue/revogue-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("DB 생성 실패: %v", err)
	}
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("마이그레이션 실패: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, p *domain.Product) {
	t.Helper()
	if p.Status == "" {
		p.Status = domain.ProductStatusAvailable
	}
	if p.ApprovalStatus == "" {
		p.ApprovalStatus = domain.ApprovalApproved
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("상품 생성 실패: %v", err)
	}
}

// 카테고리 + 가격 범위 필터가 함께 적용되고, 경계 가격은 포함된다
func TestProductList_FilterComposition(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, db, &domain.Product{Name: "경계 아래", Category: domain.CategoryThrift, Price: 999, SellerID: 1})
	seedProduct(t, db, &domain.Product{Name: "하한 경계", Category: domain.CategoryThrift, Price: 1000, SellerID: 1})
	seedProduct(t, db, &domain.Product{Name: "범위 내", Category: domain.CategoryThrift, Price: 3000, SellerID: 1})
	seedProduct(t, db, &domain.Product{Name: "상한 경계", Category: domain.CategoryThrift, Price: 5000, SellerID: 1})
	seedProduct(t, db, &domain.Product{Name: "경계 위", Category: domain.CategoryThrift, Price: 5001, SellerID: 1})
	// 가격은 범위 내지만 카테고리가 다름
	seedProduct(t, db, &domain.Product{Name: "다른 카테고리", Category: domain.CategoryRental, Price: 3000, SellerID: 1})

	category := domain.CategoryThrift
	minPrice := int64(1000)
	maxPrice := int64(5000)
	products, total, err := repo.List(&ProductListParams{
		Category: &category,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}

	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for _, p := range products {
		if p.Price < 1000 || p.Price > 5000 {
			t.Errorf("price %d outside [1000, 5000]", p.Price)
		}
		if p.Category != domain.CategoryThrift {
			t.Errorf("unexpected category %s", p.Category)
		}
	}
}

// 가격 필터는 승인/판매 상태 필터와 함께 조합된다
func TestProductList_FiltersComposeWithApproval(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, db, &domain.Product{Name: "공개 상품", Category: domain.CategoryThrift, Price: 2000, SellerID: 1})
	seedProduct(t, db, &domain.Product{
		Name: "승인 대기", Category: domain.CategoryThrift, Price: 2000, SellerID: 1,
		ApprovalStatus: domain.ApprovalPending,
	})
	seedProduct(t, db, &domain.Product{
		Name: "판매 완료", Category: domain.CategoryThrift, Price: 2000, SellerID: 1,
		Status: domain.ProductStatusSold,
	})

	minPrice := int64(1000)
	maxPrice := int64(5000)
	approved := domain.ApprovalApproved
	available := domain.ProductStatusAvailable
	products, total, err := repo.List(&ProductListParams{
		MinPrice:       &minPrice,
		MaxPrice:       &maxPrice,
		ApprovalStatus: &approved,
		Status:         &available,
	})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}

	if total != 1 {
		t.Errorf("expected total 1, got %d", total)
	}
	if len(products) != 1 || products[0].Name != "공개 상품" {
		t.Fatalf("expected only the approved available product, got %v", products)
	}
}

// 등록순 정렬 + 페이지네이션
func TestProductList_Pagination(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepository(db)

	for i := 0; i < 5; i++ {
		seedProduct(t, db, &domain.Product{Name: "상품", Category: domain.CategoryThrift, Price: int64(1000 + i), SellerID: 1})
	}

	products, total, err := repo.List(&ProductListParams{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}

	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("expected page of 2, got %d", len(products))
	}
	if products[0].Price != 1002 || products[1].Price != 1003 {
		t.Errorf("unexpected page contents: %d, %d", products[0].Price, products[1].Price)
	}
}

// 활성 리스팅 수는 승인 완료 + 판매중만 센다
func TestCountBySeller_ActiveOnly(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, db, &domain.Product{Name: "활성", Category: domain.CategoryThrift, Price: 1000, SellerID: 7})
	seedProduct(t, db, &domain.Product{
		Name: "승인 대기", Category: domain.CategoryThrift, Price: 1000, SellerID: 7,
		ApprovalStatus: domain.ApprovalPending,
	})
	seedProduct(t, db, &domain.Product{
		Name: "판매 완료", Category: domain.CategoryThrift, Price: 1000, SellerID: 7,
		Status: domain.ProductStatusSold,
	})
	seedProduct(t, db, &domain.Product{Name: "남의 상품", Category: domain.CategoryThrift, Price: 1000, SellerID: 8})

	count, err := repo.CountBySeller(7)
	if err != nil {
		t.Fatalf("카운트 실패: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 active listing, got %d", count)
	}
}
