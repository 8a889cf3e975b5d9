package create_reservation

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукта нет в каталоге
	ErrProductNotFound = errors.New("create_reservation: product not found")

	// ErrInvalidQuantity возвращается при некорректном режиме или весе
	ErrInvalidQuantity = errors.New("create_reservation: invalid quantity")

	// ErrDateInPast возвращается, когда дата получения раньше сегодняшней
	ErrDateInPast = errors.New("create_reservation: pickup date is in the past")

	// ErrInvalidInput возвращается, когда не заполнены обязательные поля.
	// Список полей доступен через errors.As(err, *reservation.ValidationError).
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrGatewayFailed возвращается, когда магазин не получил уведомление
	ErrGatewayFailed = errors.New("create_reservation: notification gateway failed")

	// ErrSubmissionInFlight возвращается, когда запрос с тем же ключом отправки еще выполняется
	ErrSubmissionInFlight = errors.New("create_reservation: submission already in progress")
)
