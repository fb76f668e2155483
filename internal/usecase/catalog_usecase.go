package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// CatalogUsecase exposes the browsing surface: categories, products,
// restaurants, banners and coupons. All results are scoped by the
// ambient zone and coordinate headers, so an unset location yields the
// backend's defaults. Empty lists are valid empty states.
type CatalogUsecase interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	ChildCategories(ctx context.Context, categoryID int) ([]entity.Category, error)
	CategoryProducts(ctx context.Context, categoryID int) ([]entity.Product, error)
	CategoryRestaurants(ctx context.Context, categoryID int) ([]entity.Restaurant, error)

	LatestProducts(ctx context.Context, restaurantID, categoryID, limit, offset int) ([]entity.Product, error)
	PopularProducts(ctx context.Context) ([]entity.Product, error)
	MostReviewedProducts(ctx context.Context) ([]entity.Product, error)
	SetMenuProducts(ctx context.Context) ([]entity.Product, error)
	RecommendedProducts(ctx context.Context) ([]entity.Product, error)
	ProductDetails(ctx context.Context, productID int) (*entity.Product, error)
	SubmitReview(ctx context.Context, review entity.ReviewSubmission) error

	Restaurants(ctx context.Context) ([]entity.Restaurant, error)
	PopularRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	LatestRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	RestaurantDetails(ctx context.Context, restaurantID int) (*entity.Restaurant, error)
	RestaurantReviews(ctx context.Context, restaurantID int) ([]entity.Review, error)
	RecentlyViewedRestaurants(ctx context.Context) ([]entity.Restaurant, error)
	DineInRestaurants(ctx context.Context) ([]entity.Restaurant, error)

	Banners(ctx context.Context) ([]entity.Banner, error)

	Coupons(ctx context.Context) ([]entity.Coupon, error)
	RestaurantCoupons(ctx context.Context, restaurantID int) ([]entity.Coupon, error)
	ApplyCoupon(ctx context.Context, code string) (*entity.Coupon, error)
}
