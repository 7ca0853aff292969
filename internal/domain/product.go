package domain

// Границы натуральных идентификаторов: все сущности используют
// трёхзначные номера.
const (
	MinEntityID = 100
	MaxEntityID = 999
)

// Product описывает товар каталога.
//
// Row key товара — свежесгенерированный uuid, а не натуральный ID:
// уникальность Product.ID ключом НЕ обеспечивается.
type Product struct {
	Keys
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price хранится строкой с десятичной точкой, без конвертации в числа.
	Price    string `json:"price"`
	Category string `json:"category"`
	// ImageRef — URL изображения в blob store; пустая строка, если
	// изображение не загружалось.
	ImageRef string `json:"image_ref,omitempty"`
}

// Validate проверяет базовые инварианты товара.
func (p *Product) Validate() []error {
	var errs []error
	if p.ID < MinEntityID || p.ID > MaxEntityID {
		errs = append(errs, ErrIDOutOfRange)
	}
	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	return errs
}
