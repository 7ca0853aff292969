package domain

// User — учётная запись back-office. Row key — email.
type User struct {
	Keys
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Validate проверяет обязательные поля учётной записи.
func (u *User) Validate() []error {
	var errs []error
	if u.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if u.PasswordHash == "" {
		errs = append(errs, ErrPasswordHashRequired)
	}
	return errs
}

// SetKeys выставляет партицию и row key учётной записи.
func (u *User) SetKeys() {
	u.PartitionKey = UsersPartition
	u.RowKey = u.Email
}
