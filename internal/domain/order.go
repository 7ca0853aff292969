package domain

import (
	"strconv"
	"time"
)

// Order описывает заказ: ссылки на клиента и товар хранятся по значению,
// каскадной целостности хранилище не обеспечивает.
type Order struct {
	Keys
	ID         int    `json:"id"`
	CustomerID int    `json:"customer_id"`
	ProductID  int    `json:"product_id"`
	// OrderDate нормализуется к UTC перед записью.
	OrderDate time.Time `json:"order_date"`
	Address   string    `json:"address"`
}

// Validate проверяет базовые инварианты заказа.
func (o *Order) Validate() []error {
	var errs []error
	if o.ID < MinEntityID || o.ID > MaxEntityID {
		errs = append(errs, ErrIDOutOfRange)
	}
	if o.CustomerID == 0 {
		errs = append(errs, ErrCustomerRequired)
	}
	if o.ProductID == 0 {
		errs = append(errs, ErrProductRequired)
	}
	if o.OrderDate.IsZero() {
		errs = append(errs, ErrOrderDateRequired)
	}
	if o.Address == "" {
		errs = append(errs, ErrAddressRequired)
	}
	return errs
}

// SetKeys выставляет партицию и производит row key из натурального ID.
func (o *Order) SetKeys() {
	o.PartitionKey = OrdersPartition
	o.RowKey = strconv.Itoa(o.ID)
}
