package usecase

import (
	stderrors "errors"
	"fmt"

	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/errors"
)

const invalidPKMessage = "Invalid pk - object does not exist."

// foreignKeyFields - поле запроса, на которое ссылается внешний ключ
var foreignKeyFields = map[string]string{
	"airplanes_airplane_type_id_fkey": "airplane_type",
	"routes_source_id_fkey":           "source",
	"routes_destination_id_fkey":      "destination",
	"flights_route_id_fkey":           "route",
	"flights_airplane_id_fkey":        "airplane",
	"tickets_flight_id_fkey":          "flight",
	"orders_user_id_fkey":             "user",
}

// translateStoreError приводит ошибку хранилища к AppError.
// Вызывается после завершения транзакции, чтобы не мешать повтору при конфликте сериализации.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.ErrNotFound
	}

	if ce, ok := repository.AsConstraintError(err); ok {
		switch ce.Kind {
		case repository.ConstraintUnique:
			switch ce.Constraint {
			case repository.ConstraintRouteSourceDestination:
				return errors.ErrRouteExists.FieldError("route_exist", "Route with this source and destination already exist.")
			case repository.ConstraintFlightSchedule:
				return errors.ErrFlightExists.FieldError("flight_exist", "Flight with this route, airplane and schedule already exist.")
			case repository.ConstraintTicketSeat:
				return errors.ErrSeatTaken
			case repository.ConstraintUserEmail:
				return errors.ErrEmailTaken.FieldError("email", "User with this email already exists.")
			}
		case repository.ConstraintForeignKey:
			if field, ok := foreignKeyFields[ce.Constraint]; ok {
				return errors.ErrValidationFailed.FieldError(field, invalidPKMessage)
			}
			return errors.ErrValidationFailed.WithMessage(invalidPKMessage)
		case repository.ConstraintCheck:
			return errors.ErrValidationFailed.WithMessage(fmt.Sprintf("Constraint %q violated.", ce.Constraint))
		}
	}

	return errors.ErrDatabaseError
}
