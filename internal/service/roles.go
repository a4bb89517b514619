package service

// Роль — строковый тип (как OrderStatus в models).
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleCustomer: 0,
	RoleWorker:   1,
	RoleManager:  2,
	RoleAdmin:    3,
}

// Неизвестная роль получает минимальный ранг — права клиента, без ошибки.
func (r Role) rank() int {
	if n, ok := roleRank[r]; ok {
		return n
	}
	return 0
}

// AtLeast — true, если роль r не ниже required в иерархии
// customer < worker < manager < admin.
func (r Role) AtLeast(required Role) bool {
	return r.rank() >= required.rank()
}

// IsStaff: worker и manager работают в рамках своего ресторана.
func (r Role) IsStaff() bool {
	return r == RoleWorker || r == RoleManager
}
