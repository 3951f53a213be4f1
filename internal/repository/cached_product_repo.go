package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CacheConfig 상품 캐시 설정
type CacheConfig struct {
	DetailTTL time.Duration // 상품 상세 TTL
	ListTTL   time.Duration // 상품 목록 TTL
	KeyPrefix string        // 캐시 키 접두사
}

// DefaultCacheConfig 기본 캐시 설정
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		DetailTTL: 10 * time.Minute,
		ListTTL:   5 * time.Minute,
		KeyPrefix: "revogue:product:",
	}
}

// CachedProductRepository 캐시가 적용된 상품 저장소
// Redis가 없거나 오류가 나면 원본 저장소로 그대로 위임한다
type CachedProductRepository struct {
	repo   ProductRepository
	redis  *redis.Client
	config *CacheConfig
}

// NewCachedProductRepository 캐시 적용 상품 저장소 생성
func NewCachedProductRepository(repo ProductRepository, redisClient *redis.Client, config *CacheConfig) ProductRepository {
	if config == nil {
		config = DefaultCacheConfig()
	}
	return &CachedProductRepository{
		repo:   repo,
		redis:  redisClient,
		config: config,
	}
}

func (r *CachedProductRepository) keyProductByID(id uint64) string {
	return fmt.Sprintf("%sid:%d", r.config.KeyPrefix, id)
}

func (r *CachedProductRepository) keyProductList(params *ProductListParams) string {
	category, status, approval := "", "", ""
	if params.Category != nil {
		category = string(*params.Category)
	}
	if params.Status != nil {
		status = string(*params.Status)
	}
	if params.ApprovalStatus != nil {
		approval = string(*params.ApprovalStatus)
	}
	minPrice, maxPrice := int64(-1), int64(-1)
	if params.MinPrice != nil {
		minPrice = *params.MinPrice
	}
	if params.MaxPrice != nil {
		maxPrice = *params.MaxPrice
	}
	sellerID := uint64(0)
	if params.SellerID != nil {
		sellerID = *params.SellerID
	}
	return fmt.Sprintf("%slist:c%s:p%d-%d:sz%s:b%s:se%d:st%s:a%s:pg%d:l%d",
		r.config.KeyPrefix, category, minPrice, maxPrice,
		params.Size, params.Brand, sellerID, status, approval,
		params.Page, params.Limit)
}

// cachedList 목록 캐시 직렬화 단위
type cachedList struct {
	Products []*domain.Product `json:"products"`
	Total    int64             `json:"total"`
}

// InvalidateProduct 특정 상품과 목록 캐시 무효화
func (r *CachedProductRepository) InvalidateProduct(ctx context.Context, id uint64) error {
	if r.redis == nil {
		return nil
	}
	if err := r.invalidatePattern(ctx, r.config.KeyPrefix+"list:*"); err != nil {
		return err
	}
	return r.redis.Del(ctx, r.keyProductByID(id)).Err()
}

func (r *CachedProductRepository) invalidatePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		var keys []string
		var err error
		keys, cursor, err = r.redis.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			if err := r.redis.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}

func (r *CachedProductRepository) Create(product *domain.Product) error {
	if err := r.repo.Create(product); err != nil {
		return err
	}
	_ = r.InvalidateProduct(context.Background(), product.ID)
	return nil
}

func (r *CachedProductRepository) FindByID(id uint64) (*domain.Product, error) {
	if r.redis == nil {
		return r.repo.FindByID(id)
	}

	ctx := context.Background()
	key := r.keyProductByID(id)

	if data, err := r.redis.Get(ctx, key).Bytes(); err == nil {
		var product domain.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
	}

	product, err := r.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		_ = r.redis.Set(ctx, key, data, r.config.DetailTTL).Err()
	}
	return product, nil
}

func (r *CachedProductRepository) Update(product *domain.Product) error {
	if err := r.repo.Update(product); err != nil {
		return err
	}
	_ = r.InvalidateProduct(context.Background(), product.ID)
	return nil
}

func (r *CachedProductRepository) List(params *ProductListParams) ([]*domain.Product, int64, error) {
	if r.redis == nil {
		return r.repo.List(params)
	}

	ctx := context.Background()
	key := r.keyProductList(params)

	if data, err := r.redis.Get(ctx, key).Bytes(); err == nil {
		var cached cachedList
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.Products, cached.Total, nil
		}
	}

	products, total, err := r.repo.List(params)
	if err != nil {
		return nil, 0, err
	}

	if data, err := json.Marshal(&cachedList{Products: products, Total: total}); err == nil {
		_ = r.redis.Set(ctx, key, data, r.config.ListTTL).Err()
	}
	return products, total, nil
}

func (r *CachedProductRepository) CountBySeller(sellerID uint64) (int64, error) {
	return r.repo.CountBySeller(sellerID)
}
