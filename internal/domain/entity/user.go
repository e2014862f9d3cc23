package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator" // captura producción y salidas en planta
	RolePlanner  = "planner"  // consulta cortes y planifica salidas
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operator, planner
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
