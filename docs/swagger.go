// Package docs Airport Service API.
//
// Бронирование авиабилетов: аэропорты, типы самолётов, самолёты, экипаж,
// маршруты, рейсы и заказы с билетами.
//
// Основные возможности:
// - Маршрут не может вести в тот же аэропорт и не дублирует существующий
// - Рейс не повторяет расписание другого рейса, время вылета и прилёта различаются
// - Заказ сохраняется целиком вместе с билетами, место на рейсе продаётся один раз
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- BearerAuth:
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
