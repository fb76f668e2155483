package backend

import "strconv"

// Backend endpoint paths, all relative to the configured base URL.
const (
	endpointAuthSignUp         = "/api/v1/auth/sign-up"
	endpointAuthLogin          = "/api/v1/auth/login"
	endpointAuthForgotPassword = "/api/v1/auth/forgot-password"
	endpointAuthVerifyToken    = "/api/v1/auth/verify-token"
	endpointAuthResetPassword  = "/api/v1/auth/reset-password"
	endpointAuthVerifyPhone    = "/api/v1/auth/verify-phone"
	endpointAuthVerifyEmail    = "/api/v1/auth/verify-email"
	endpointAuthCheckEmail     = "/api/v1/auth/check-email"
	endpointAuthGuestLogin     = "/api/v1/auth/guest/request"

	// EndpointCustomerInfo is exported because the client wrapper excludes
	// it from Authorization decoration.
	EndpointCustomerInfo = "/api/v1/customer/info"

	endpointCustomerUpdateProfile  = "/api/v1/customer/update-profile"
	endpointCustomerRemoveAccount  = "/api/v1/customer/remove-account"
	endpointCustomerUpdateInterest = "/api/v1/customer/update-interest"
	endpointCustomerSuggestedFoods = "/api/v1/customer/suggested-foods"
	endpointCustomerFoodList       = "/api/v1/customer/food-list"
	endpointCustomerNotifications  = "/api/v1/customer/notifications"
	endpointCustomerUpdateZone     = "/api/v1/customer/update-zone"

	endpointAddressList   = "/api/v1/customer/address/list"
	endpointAddressAdd    = "/api/v1/customer/address/add"
	endpointAddressUpdate = "/api/v1/customer/address/update"
	endpointAddressDelete = "/api/v1/customer/address/delete"

	endpointCartList        = "/api/v1/customer/cart/list"
	endpointCartAdd         = "/api/v1/customer/cart/add"
	endpointCartUpdate      = "/api/v1/customer/cart/update"
	endpointCartRemove      = "/api/v1/customer/cart/remove"
	endpointCartRemoveItem  = "/api/v1/customer/cart/remove-item"
	endpointCartAddMultiple = "/api/v1/customer/cart/add-multiple"

	endpointOrderPlace               = "/api/v1/customer/order/place"
	endpointOrderTrack               = "/api/v1/customer/order/track"
	endpointOrderRunning             = "/api/v1/customer/order/running-orders"
	endpointOrderList                = "/api/v1/customer/order/list"
	endpointOrderDetails             = "/api/v1/customer/order/details"
	endpointOrderCancel              = "/api/v1/customer/order/cancel"
	endpointOrderCancellationReasons = "/api/v1/customer/order/cancellation-reasons"
	endpointOrderRefundReasons       = "/api/v1/customer/order/refund-reasons"
	endpointOrderRefundRequest       = "/api/v1/customer/order/refund-request"
	endpointOrderPaymentMethods      = "/api/v1/customer/order/payment-method"
	endpointOrderSendNotification    = "/api/v1/customer/order/send-notification"
	endpointOrderValidateRestaurant  = "/api/v1/customer/order/validate-restaurant"
	endpointOrderAgain               = "/api/v1/customer/order/order-again"
	endpointOrderOfflinePayment      = "/api/v1/customer/order/offline-payment"
	endpointOrderOfflinePaymentEdit  = "/api/v1/customer/order/offline-payment/update"

	endpointWalletTransactions   = "/api/v1/customer/wallet/transactions"
	endpointWalletAddFund        = "/api/v1/customer/wallet/add-fund"
	endpointWalletBonuses        = "/api/v1/customer/wallet/bonuses"
	endpointLoyaltyTransactions  = "/api/v1/customer/loyalty-point/transactions"
	endpointLoyaltyPointTransfer = "/api/v1/customer/loyalty-point/point-transfer"
	endpointOfflinePaymentList   = "/api/v1/offline-payment-method/list"

	endpointCategories          = "/api/v1/categories"
	endpointCategoryChildes     = "/api/v1/categories/childes"
	endpointCategoryProducts    = "/api/v1/categories/products"
	endpointCategoryRestaurants = "/api/v1/categories/restaurants"

	endpointProductsLatest       = "/api/v1/products/latest"
	endpointProductsPopular      = "/api/v1/products/popular"
	endpointProductsMostReviewed = "/api/v1/products/most-reviewed"
	endpointProductsSetMenu      = "/api/v1/products/set-menu"
	endpointProductsRecommended  = "/api/v1/products/recommended"
	endpointProductsDetails      = "/api/v1/products/details"
	endpointProductsSubmitReview = "/api/v1/products/reviews/submit"

	endpointRestaurantsList           = "/api/v1/restaurants/list"
	endpointRestaurantsPopular        = "/api/v1/restaurants/popular"
	endpointRestaurantsLatest         = "/api/v1/restaurants/latest"
	endpointRestaurantsDetails        = "/api/v1/restaurants/details"
	endpointRestaurantsReviews        = "/api/v1/restaurants/reviews"
	endpointRestaurantsRecentlyViewed = "/api/v1/restaurants/recently-viewed"
	endpointRestaurantsDineIn         = "/api/v1/restaurants/dine-in"

	endpointBanners = "/api/v1/banners/"

	endpointCouponList           = "/api/v1/coupon/list"
	endpointCouponRestaurantWise = "/api/v1/coupon/restaurant-wise-coupon"
	endpointCouponApply          = "/api/v1/coupon/apply"

	endpointZoneList  = "/api/v1/zone/list"
	endpointZoneCheck = "/api/v1/zone/check"
	endpointGetZoneID = "/api/v1/config/get-zone-id"
)

// withID appends a numeric path segment, e.g. details/42.
func withID(base string, id int) string {
	return base + "/" + strconv.Itoa(id)
}
