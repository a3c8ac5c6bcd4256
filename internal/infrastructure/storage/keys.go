package storage

// Claves fijas de las colecciones persistidas.
const (
	KeyProducts       = "gpro_products"
	KeySales          = "gpro_sales"
	KeyLogs           = "gpro_logs"
	KeySession        = "gpro_session"
	KeyRememberMe     = "gpro_remember_me"
	KeyPaymentMethods = "gpro_payment_methods"
	KeyCredentials    = "gpro_credentials"
)
