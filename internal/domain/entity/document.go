package entity

// Document es el contenido completo de db.json: se lee y se escribe entero.
type Document struct {
	Products    []Product `json:"products"`
	Users       []User    `json:"users"`
	CurrentUser *User     `json:"currentUser"`
}

// NewDocument devuelve el documento por defecto (colecciones vacías, sin sesión).
func NewDocument() *Document {
	return &Document{
		Products: []Product{},
		Users:    []User{},
	}
}

// Heal completa las colecciones ausentes para que el documento siempre tenga las tres claves.
func (d *Document) Heal() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
}

// Clone devuelve una copia profunda de las colecciones (los elementos son valores).
func (d *Document) Clone() *Document {
	out := &Document{
		Products: append([]Product(nil), d.Products...),
		Users:    append([]User(nil), d.Users...),
	}
	if d.CurrentUser != nil {
		cu := *d.CurrentUser
		out.CurrentUser = &cu
	}
	out.Heal()
	return out
}
