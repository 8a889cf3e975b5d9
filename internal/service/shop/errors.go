package shop

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукта нет в каталоге
	ErrProductNotFound = errors.New("shop: product not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("shop: invalid input data")
)
