package repository

import (
	"context"

	"nosh/internal/domain/entity"
)

// AuthGateway covers the backend's authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, creds entity.Credentials) (token string, err error)
	SignUp(ctx context.Context, payload entity.SignUpPayload) (token string, err error)
	GuestLogin(ctx context.Context, deviceID string) (token string, err error)
	ForgotPassword(ctx context.Context, phone string) error
	VerifyToken(ctx context.Context, phone, resetToken string) error
	ResetPassword(ctx context.Context, phone, resetToken, password string) error
	VerifyPhone(ctx context.Context, phone, otp string) error
	VerifyEmail(ctx context.Context, email, otp string) error
	CheckEmail(ctx context.Context, email string) error
}

// CustomerGateway covers the customer profile endpoints.
type CustomerGateway interface {
	Info(ctx context.Context) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, update entity.ProfileUpdate) error
	RemoveAccount(ctx context.Context) error
	UpdateInterest(ctx context.Context, categoryIDs []int) error
	SuggestedFoods(ctx context.Context) ([]entity.Product, error)
	FoodList(ctx context.Context) ([]entity.Product, error)
}

// AddressGateway covers the delivery address book endpoints.
type AddressGateway interface {
	List(ctx context.Context) ([]entity.Address, error)
	Add(ctx context.Context, address entity.Address) error
	Update(ctx context.Context, id int, address entity.Address) error
	Delete(ctx context.Context, id int) error
}

// CartGateway covers the server-side cart endpoints.
type CartGateway interface {
	List(ctx context.Context) ([]entity.CartItem, error)
	Add(ctx context.Context, m entity.CartMutation) error
	Update(ctx context.Context, m entity.CartMutation) error
	Remove(ctx context.Context, itemID int) error
	AddMultiple(ctx context.Context, ms []entity.CartMutation) error
	Clear(ctx context.Context) error
}

// CatalogGateway covers categories, products, restaurants, banners and
// coupons. Empty results are valid empty states, not errors.
type CatalogGateway interface {
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

// OrderGateway covers the order lifecycle endpoints.
type OrderGateway interface {
	Place(ctx context.Context, payload entity.PlaceOrderPayload) (orderID int, err error)
	Track(ctx context.Context, orderID int) (*entity.OrderTracking, error)
	Running(ctx context.Context) ([]entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Details(ctx context.Context, orderID int) (*entity.Order, error)
	Cancel(ctx context.Context, orderID int, reason string) error
	CancellationReasons(ctx context.Context) ([]entity.CancellationReason, error)
	RefundReasons(ctx context.Context) ([]entity.RefundReason, error)
	RequestRefund(ctx context.Context, req entity.RefundRequest) error
	PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	SendNotification(ctx context.Context, orderID int, message string) error
	ValidateRestaurant(ctx context.Context, restaurantID int) error
	OrderAgain(ctx context.Context, orderID int) error
	SubmitOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error
	UpdateOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error
}

// WalletGateway covers wallet, loyalty and offline payment endpoints.
type WalletGateway interface {
	Transactions(ctx context.Context) ([]entity.WalletTransaction, error)
	AddFund(ctx context.Context, payload entity.AddFundPayload) error
	Bonuses(ctx context.Context) ([]entity.WalletBonus, error)
	LoyaltyTransactions(ctx context.Context) ([]entity.LoyaltyTransaction, error)
	TransferPoints(ctx context.Context, payload entity.PointTransferPayload) error
	OfflinePaymentMethods(ctx context.Context) ([]entity.OfflinePaymentMethod, error)
}

// ZoneGateway covers the geographic service zone endpoints.
type ZoneGateway interface {
	ZoneID(ctx context.Context, lat, lng float64) (string, error)
	Check(ctx context.Context, lat, lng float64, zoneID string) (bool, error)
	List(ctx context.Context) ([]entity.Zone, error)
	UpdateZone(ctx context.Context, zoneID string) error
}

// NotificationGateway covers the customer notification inbox.
type NotificationGateway interface {
	List(ctx context.Context) ([]entity.Notification, error)
}
