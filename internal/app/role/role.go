package role

type Role string

const (
	// Admin пропускает пользователя с флагом isAdmin
	Admin Role = "admin"
	// Owner пропускает владельца ресурса из параметров пути
	Owner Role = "owner"
	// User пропускает любого аутентифицированного пользователя
	User Role = "user"
)

func Has(roles []Role, r Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}
