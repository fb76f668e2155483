package backend

import (
	"context"
	"net/url"
	"strconv"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type catalogAPI struct {
	client *Client
}

// NewCatalogAPI is the constructor for the catalog gateway.
func NewCatalogAPI(client *Client) repository.CatalogGateway {
	return &catalogAPI{client: client}
}

func (a *catalogAPI) Categories(ctx context.Context) ([]entity.Category, error) {
	return listGet[entity.Category](ctx, a.client, endpointCategories, nil, "")
}

func (a *catalogAPI) ChildCategories(ctx context.Context, categoryID int) ([]entity.Category, error) {
	return listGet[entity.Category](ctx, a.client, withID(endpointCategoryChildes, categoryID), nil, "")
}

func (a *catalogAPI) CategoryProducts(ctx context.Context, categoryID int) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, withID(endpointCategoryProducts, categoryID), nil, "products")
}

func (a *catalogAPI) CategoryRestaurants(ctx context.Context, categoryID int) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, withID(endpointCategoryRestaurants, categoryID), nil, "restaurants")
}

func (a *catalogAPI) LatestProducts(ctx context.Context, restaurantID, categoryID, limit, offset int) ([]entity.Product, error) {
	query := url.Values{
		"restaurant_id": {strconv.Itoa(restaurantID)},
		"category_id":   {strconv.Itoa(categoryID)},
		"limit":         {strconv.Itoa(limit)},
		"offset":        {strconv.Itoa(offset)},
	}

	return listGet[entity.Product](ctx, a.client, endpointProductsLatest, query, "products")
}

func (a *catalogAPI) PopularProducts(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointProductsPopular, nil, "products")
}

func (a *catalogAPI) MostReviewedProducts(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointProductsMostReviewed, nil, "products")
}

func (a *catalogAPI) SetMenuProducts(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointProductsSetMenu, nil, "")
}

func (a *catalogAPI) RecommendedProducts(ctx context.Context) ([]entity.Product, error) {
	return listGet[entity.Product](ctx, a.client, endpointProductsRecommended, nil, "products")
}

func (a *catalogAPI) ProductDetails(ctx context.Context, productID int) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.Get(ctx, withID(endpointProductsDetails, productID), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (a *catalogAPI) SubmitReview(ctx context.Context, review entity.ReviewSubmission) error {
	return a.client.Post(ctx, endpointProductsSubmitReview, review, nil)
}

func (a *catalogAPI) Restaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, endpointRestaurantsList, nil, "restaurants")
}

func (a *catalogAPI) PopularRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, endpointRestaurantsPopular, nil, "restaurants")
}

func (a *catalogAPI) LatestRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, endpointRestaurantsLatest, nil, "restaurants")
}

func (a *catalogAPI) RestaurantDetails(ctx context.Context, restaurantID int) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := a.client.Get(ctx, withID(endpointRestaurantsDetails, restaurantID), nil, &restaurant); err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (a *catalogAPI) RestaurantReviews(ctx context.Context, restaurantID int) ([]entity.Review, error) {
	query := url.Values{"restaurant_id": {strconv.Itoa(restaurantID)}}

	return listGet[entity.Review](ctx, a.client, endpointRestaurantsReviews, query, "reviews")
}

func (a *catalogAPI) RecentlyViewedRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, endpointRestaurantsRecentlyViewed, nil, "restaurants")
}

func (a *catalogAPI) DineInRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return listGet[entity.Restaurant](ctx, a.client, endpointRestaurantsDineIn, nil, "restaurants")
}

func (a *catalogAPI) Banners(ctx context.Context) ([]entity.Banner, error) {
	return listGet[entity.Banner](ctx, a.client, endpointBanners, nil, "banners")
}

func (a *catalogAPI) Coupons(ctx context.Context) ([]entity.Coupon, error) {
	return listGet[entity.Coupon](ctx, a.client, endpointCouponList, nil, "")
}

func (a *catalogAPI) RestaurantCoupons(ctx context.Context, restaurantID int) ([]entity.Coupon, error) {
	query := url.Values{"restaurant_id": {strconv.Itoa(restaurantID)}}

	return listGet[entity.Coupon](ctx, a.client, endpointCouponRestaurantWise, query, "")
}

func (a *catalogAPI) ApplyCoupon(ctx context.Context, code string) (*entity.Coupon, error) {
	query := url.Values{"code": {code}}

	var coupon entity.Coupon
	if err := a.client.Get(ctx, endpointCouponApply, query, &coupon); err != nil {
		return nil, err
	}

	return &coupon, nil
}
