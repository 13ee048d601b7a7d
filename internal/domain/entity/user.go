package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un cliente o administrador de la tienda.
// Password se guarda en texto plano, igual que el documento db.json existente.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LoginTime *time.Time `json:"loginTime,omitempty"` // solo en la sesión actual
}

// ValidRole indica si role es uno de los roles admitidos.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Normalize aplica los valores por defecto de un usuario nuevo.
func (u *User) Normalize(now time.Time) {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now.UTC()
	}
}

// SessionSnapshot copia el usuario sin password y con la hora de login.
func (u User) SessionSnapshot(loginAt time.Time) *User {
	snap := u
	snap.Password = ""
	t := loginAt.UTC()
	snap.LoginTime = &t
	return &snap
}
