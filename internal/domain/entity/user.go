package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User es la identidad apta para sesión: nunca lleva contraseña.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Account es una cuenta fija de la aplicación con su contraseña en texto plano.
// Solo se usa dentro del chequeo de autenticación.
type Account struct {
	User
	Password string
}

// Accounts cuentas disponibles en la tienda.
var Accounts = []Account{
	{User: User{ID: "u1", Username: "admin", Name: "Administrador Principal", Role: RoleAdmin}, Password: "1234578"},
	{User: User{ID: "u2", Username: "vendedor", Name: "Vendedor de Turno", Role: RoleVendedor}, Password: "ventas123"},
}
