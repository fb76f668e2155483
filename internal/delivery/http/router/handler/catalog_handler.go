package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nosh/internal/delivery/http/response"
	"nosh/internal/domain/entity"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

func (h *CatalogHandler) list(c echo.Context, fetch func() (any, error)) error {
	data, err := fetch()
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

func paramID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// Categories returns the top level categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.Categories(c.Request().Context()) })
}

// ChildCategories returns the subcategories of a category.
func (h *CatalogHandler) ChildCategories(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category id")
	}

	return h.list(c, func() (any, error) { return h.uc.ChildCategories(c.Request().Context(), id) })
}

// CategoryProducts returns the products of a category.
func (h *CatalogHandler) CategoryProducts(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category id")
	}

	return h.list(c, func() (any, error) { return h.uc.CategoryProducts(c.Request().Context(), id) })
}

// CategoryRestaurants returns the restaurants serving a category.
func (h *CatalogHandler) CategoryRestaurants(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category id")
	}

	return h.list(c, func() (any, error) { return h.uc.CategoryRestaurants(c.Request().Context(), id) })
}

// LatestProducts returns a paged product feed, optionally filtered by
// restaurant and category.
func (h *CatalogHandler) LatestProducts(c echo.Context) error {
	restaurantID, _ := strconv.Atoi(c.QueryParam("restaurant_id"))
	categoryID, _ := strconv.Atoi(c.QueryParam("category_id"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	return h.list(c, func() (any, error) {
		return h.uc.LatestProducts(c.Request().Context(), restaurantID, categoryID, limit, offset)
	})
}

// PopularProducts returns the popular product feed.
func (h *CatalogHandler) PopularProducts(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.PopularProducts(c.Request().Context()) })
}

// MostReviewedProducts returns the most reviewed product feed.
func (h *CatalogHandler) MostReviewedProducts(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.MostReviewedProducts(c.Request().Context()) })
}

// SetMenuProducts returns the set menu feed.
func (h *CatalogHandler) SetMenuProducts(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.SetMenuProducts(c.Request().Context()) })
}

// RecommendedProducts returns the recommended product feed.
func (h *CatalogHandler) RecommendedProducts(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.RecommendedProducts(c.Request().Context()) })
}

// ProductDetails returns a single product.
func (h *CatalogHandler) ProductDetails(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.ProductDetails(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// SubmitReview submits a product review.
func (h *CatalogHandler) SubmitReview(c echo.Context) error {
	var review entity.ReviewSubmission
	if err := c.Bind(&review); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := h.uc.SubmitReview(c.Request().Context(), review); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review submitted")
}

// Restaurants returns the restaurant feed.
func (h *CatalogHandler) Restaurants(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.Restaurants(c.Request().Context()) })
}

// PopularRestaurants returns the popular restaurant feed.
func (h *CatalogHandler) PopularRestaurants(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.PopularRestaurants(c.Request().Context()) })
}

// LatestRestaurants returns the newest restaurants.
func (h *CatalogHandler) LatestRestaurants(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.LatestRestaurants(c.Request().Context()) })
}

// RestaurantDetails returns a single restaurant.
func (h *CatalogHandler) RestaurantDetails(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	restaurant, err := h.uc.RestaurantDetails(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "")
}

// RestaurantReviews returns the reviews of a restaurant.
func (h *CatalogHandler) RestaurantReviews(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	return h.list(c, func() (any, error) { return h.uc.RestaurantReviews(c.Request().Context(), id) })
}

// RecentlyViewedRestaurants returns the recently viewed restaurants.
func (h *CatalogHandler) RecentlyViewedRestaurants(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.RecentlyViewedRestaurants(c.Request().Context()) })
}

// DineInRestaurants returns the restaurants offering dine in.
func (h *CatalogHandler) DineInRestaurants(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.DineInRestaurants(c.Request().Context()) })
}

// Banners returns the promotional banners.
func (h *CatalogHandler) Banners(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.Banners(c.Request().Context()) })
}

// Coupons returns the available coupons.
func (h *CatalogHandler) Coupons(c echo.Context) error {
	return h.list(c, func() (any, error) { return h.uc.Coupons(c.Request().Context()) })
}

// RestaurantCoupons returns the coupons of a restaurant.
func (h *CatalogHandler) RestaurantCoupons(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	return h.list(c, func() (any, error) { return h.uc.RestaurantCoupons(c.Request().Context(), id) })
}

// ApplyCoupon validates a coupon code against the current cart.
func (h *CatalogHandler) ApplyCoupon(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BindingError(c, "INVALID_INPUT", "Coupon code is required")
	}

	coupon, err := h.uc.ApplyCoupon(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon applied")
}
