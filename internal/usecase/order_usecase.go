package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/usecase/dto"
)

const publishTimeout = 2 * time.Second

// ticketInsertError - ошибка вставки билета с его позицией в запросе
type ticketInsertError struct {
	index int
	err   error
}

func (e *ticketInsertError) Error() string {
	return fmt.Sprintf("insert ticket %d: %v", e.index, e.err)
}

func (e *ticketInsertError) Unwrap() error {
	return e.err
}

type OrderUseCase struct {
	tx        repository.TxManager
	store     repository.Store
	publisher repository.StreamRepository
	logger    *zap.Logger
}

// NewOrderUseCase - publisher может быть nil, тогда события не публикуются
func NewOrderUseCase(
	tx repository.TxManager,
	store repository.Store,
	publisher repository.StreamRepository,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		tx:        tx,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder создаёт заказ и все его билеты в одной serializable транзакции.
// Любая ошибка билета откатывает весь заказ. Ошибки билетов возвращаются в details.tickets
// списком {index, field, code, message}.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Tickets) == 0 {
		return nil, errors.ErrEmptyTicketList.FieldError("tickets", "This list may not be empty.")
	}

	var order domain.Order

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, store repository.Store) error {
		order = domain.Order{UserID: userID}
		if err := store.Orders().Create(ctx, &order); err != nil {
			return err
		}

		tickets := make([]domain.Ticket, 0, len(req.Tickets))
		for _, t := range req.Tickets {
			tickets = append(tickets, domain.Ticket{
				Row:      t.Row,
				Seat:     t.Seat,
				FlightID: t.Flight,
				OrderID:  order.ID,
			})
		}

		failures, err := uc.checkTickets(ctx, store, tickets)
		if err != nil {
			return err
		}
		if len(failures) > 0 {
			return ticketsError(failures)
		}

		for i := range tickets {
			if err := store.Orders().CreateTicket(ctx, &tickets[i]); err != nil {
				return &ticketInsertError{index: i, err: err}
			}
		}
		order.Tickets = tickets
		return nil
	})
	if err != nil {
		return nil, uc.translateOrderError(err, req)
	}

	uc.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(order.Tickets)),
	)
	uc.publishCreated(ctx, &order)

	return &order, nil
}

// checkTickets проверяет билеты по порядку: рейс существует, место в раскладке самолёта,
// место не повторяется в запросе и не продано ранее
func (uc *OrderUseCase) checkTickets(ctx context.Context, store repository.Store, tickets []domain.Ticket) ([]dto.TicketError, error) {
	var failures []dto.TicketError
	airplanes := make(map[int64]*domain.Airplane)
	seen := make(map[domain.SeatKey]int)

	for i, t := range tickets {
		airplane, ok := airplanes[t.FlightID]
		if !ok {
			a, err := store.Airplanes().GetByFlightID(ctx, t.FlightID)
			if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("get airplane of flight %d: %w", t.FlightID, err)
			}
			airplane = a
			airplanes[t.FlightID] = a
		}
		if airplane == nil {
			failures = append(failures, dto.TicketError{
				Index:   i,
				Field:   "flight",
				Code:    errors.CodeValidationFailed,
				Message: fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", t.FlightID),
			})
			continue
		}

		if !airplane.HasSeat(t.Row, t.Seat) {
			failures = append(failures, dto.TicketError{
				Index: i,
				Field: "seat",
				Code:  errors.CodeSeatOutOfRange,
				Message: fmt.Sprintf("Row must be in range [1, %d] and seat in range [1, %d].",
					airplane.Rows, airplane.SeatsInRow),
			})
			continue
		}

		key := t.SeatKey()
		if first, dup := seen[key]; dup {
			failures = append(failures, seatTakenFailure(i, t, fmt.Sprintf(" by ticket %d of this order", first)))
			continue
		}
		seen[key] = i

		taken, err := store.Orders().SeatTaken(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("check seat: %w", err)
		}
		if taken {
			failures = append(failures, seatTakenFailure(i, t, ""))
		}
	}

	return failures, nil
}

func seatTakenFailure(index int, t domain.Ticket, suffix string) dto.TicketError {
	return dto.TicketError{
		Index:   index,
		Field:   "seat",
		Code:    errors.CodeSeatTaken,
		Message: fmt.Sprintf("Seat %d in row %d on flight %d is already taken%s.", t.Seat, t.Row, t.FlightID, suffix),
	}
}

// ticketsError - AppError с кодом первой ошибки и полным списком в details.tickets
func ticketsError(failures []dto.TicketError) *errors.AppError {
	base := errors.ErrValidationFailed
	switch failures[0].Code {
	case errors.CodeSeatTaken:
		base = errors.ErrSeatTaken
	case errors.CodeSeatOutOfRange:
		base = errors.ErrSeatOutOfRange
	}
	return base.WithMessage(failures[0].Message).WithDetails(map[string]interface{}{
		"tickets": failures,
	})
}

// translateOrderError - конфликт уникальности при вставке билета равен SEAT_TAKEN из предпроверки
func (uc *OrderUseCase) translateOrderError(err error, req dto.CreateOrderRequest) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	var insErr *ticketInsertError
	if stderrors.As(err, &insErr) {
		ce, ok := repository.AsConstraintError(insErr.err)
		if ok && insErr.index < len(req.Tickets) {
			t := req.Tickets[insErr.index]
			ticket := domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: t.Flight}
			switch {
			case ce.Kind == repository.ConstraintUnique && ce.Constraint == repository.ConstraintTicketSeat:
				uc.logger.Info("Seat taken by concurrent order",
					zap.Int64("flight", t.Flight), zap.Int("row", t.Row), zap.Int("seat", t.Seat))
				return ticketsError([]dto.TicketError{seatTakenFailure(insErr.index, ticket, "")})
			case ce.Kind == repository.ConstraintForeignKey:
				return ticketsError([]dto.TicketError{{
					Index:   insErr.index,
					Field:   "flight",
					Code:    errors.CodeValidationFailed,
					Message: fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", t.Flight),
				}})
			}
		}
	}

	uc.logger.Error("Failed to create order", zap.Error(err))
	return translateStoreError(err)
}

// publishCreated публикует событие после коммита; ошибка только логируется
func (uc *OrderUseCase) publishCreated(ctx context.Context, order *domain.Order) {
	if uc.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.NewOrderCreatedEvent(order)
	if _, err := uc.publisher.PublishToStream(ctx, domain.StreamOrderCreated, event); err != nil {
		uc.logger.Warn("Failed to publish order event",
			zap.Int64("order_id", order.ID),
			zap.String("event_id", event.EventID.String()),
			zap.Error(err),
		)
	}
}

// ListOrders - персонал видит все заказы, остальные только свои
func (uc *OrderUseCase) ListOrders(ctx context.Context, identity auth.Identity, page domain.Page) ([]domain.Order, int, error) {
	var userID *uuid.UUID
	if !identity.IsStaff {
		id := identity.UserID
		userID = &id
	}

	orders, total, err := uc.store.Orders().List(ctx, userID, page.Normalize())
	if err != nil {
		uc.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}
