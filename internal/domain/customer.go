package domain

import "strconv"

// Customer описывает клиента розничной сети.
// Натуральный ключ — трёхзначный Customer ID, он же row key.
type Customer struct {
	Keys
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Validate проверяет базовые инварианты клиента.
func (c *Customer) Validate() []error {
	var errs []error
	if c.ID < MinEntityID || c.ID > MaxEntityID {
		errs = append(errs, ErrIDOutOfRange)
	}
	return errs
}

// SetKeys выставляет партицию и производит row key из натурального ID.
func (c *Customer) SetKeys() {
	c.PartitionKey = CustomersPartition
	c.RowKey = strconv.Itoa(c.ID)
}
