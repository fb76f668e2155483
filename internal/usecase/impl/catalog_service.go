package impl

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

// catalogService is a thin shell over the catalog gateway; zone and
// coordinate scoping rides on the decorated client, not on parameters.
type catalogService struct {
	gateway repository.CatalogGateway
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(gateway repository.CatalogGateway) usecase.CatalogUsecase {
	return &catalogService{gateway: gateway}
}

func (s *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	return s.gateway.Categories(ctx)
}

func (s *catalogService) ChildCategories(ctx context.Context, categoryID int) ([]entity.Category, error) {
	return s.gateway.ChildCategories(ctx, categoryID)
}

func (s *catalogService) CategoryProducts(ctx context.Context, categoryID int) ([]entity.Product, error) {
	return s.gateway.CategoryProducts(ctx, categoryID)
}

func (s *catalogService) CategoryRestaurants(ctx context.Context, categoryID int) ([]entity.Restaurant, error) {
	return s.gateway.CategoryRestaurants(ctx, categoryID)
}

func (s *catalogService) LatestProducts(ctx context.Context, restaurantID, categoryID, limit, offset int) ([]entity.Product, error) {
	return s.gateway.LatestProducts(ctx, restaurantID, categoryID, limit, offset)
}

func (s *catalogService) PopularProducts(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.PopularProducts(ctx)
}

func (s *catalogService) MostReviewedProducts(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.MostReviewedProducts(ctx)
}

func (s *catalogService) SetMenuProducts(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.SetMenuProducts(ctx)
}

func (s *catalogService) RecommendedProducts(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.RecommendedProducts(ctx)
}

func (s *catalogService) ProductDetails(ctx context.Context, productID int) (*entity.Product, error) {
	return s.gateway.ProductDetails(ctx, productID)
}

func (s *catalogService) SubmitReview(ctx context.Context, review entity.ReviewSubmission) error {
	if err := validateStruct(review); err != nil {
		return err
	}

	return s.gateway.SubmitReview(ctx, review)
}

func (s *catalogService) Restaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.gateway.Restaurants(ctx)
}

func (s *catalogService) PopularRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.gateway.PopularRestaurants(ctx)
}

func (s *catalogService) LatestRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.gateway.LatestRestaurants(ctx)
}

func (s *catalogService) RestaurantDetails(ctx context.Context, restaurantID int) (*entity.Restaurant, error) {
	return s.gateway.RestaurantDetails(ctx, restaurantID)
}

func (s *catalogService) RestaurantReviews(ctx context.Context, restaurantID int) ([]entity.Review, error) {
	return s.gateway.RestaurantReviews(ctx, restaurantID)
}

func (s *catalogService) RecentlyViewedRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.gateway.RecentlyViewedRestaurants(ctx)
}

func (s *catalogService) DineInRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.gateway.DineInRestaurants(ctx)
}

func (s *catalogService) Banners(ctx context.Context) ([]entity.Banner, error) {
	return s.gateway.Banners(ctx)
}

func (s *catalogService) Coupons(ctx context.Context) ([]entity.Coupon, error) {
	return s.gateway.Coupons(ctx)
}

func (s *catalogService) RestaurantCoupons(ctx context.Context, restaurantID int) ([]entity.Coupon, error) {
	return s.gateway.RestaurantCoupons(ctx, restaurantID)
}

func (s *catalogService) ApplyCoupon(ctx context.Context, code string) (*entity.Coupon, error) {
	return s.gateway.ApplyCoupon(ctx, code)
}
