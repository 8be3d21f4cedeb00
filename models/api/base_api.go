package apimodels

import (
	"math"

	apperrors "jobboard-backend/lib/utils/app-errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage верхняя граница номера страницы, (page-1)*limit не переполняется
	MaxPage = math.MaxInt32
)

type ErrorInfo struct {
	Message string            `json:"message"`           // сообщение ошибки
	Code    apperrors.Code    `json:"code"`              // код ошибки
	Details map[string]string `json:"details,omitempty"` // ошибки по полям
}

type Response struct {
	Success bool        `json:"success"`         // результат обработки
	Data    interface{} `json:"data,omitempty"`  // данные ответа
	Error   *ErrorInfo  `json:"error,omitempty"` // описание ошибки
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(code apperrors.Code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Message: message,
			Code:    code,
		},
	}
}

func NewAppError(err *apperrors.Error) Response {
	resp := NewError(err.Code, err.Message)
	resp.Error.Details = err.Details
	return resp
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Success: true,
			Data:    data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit
	if r.Page > 0 {
		page = r.Page
	}
	if page > MaxPage {
		page = MaxPage
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset сколько записей пропустить, page > 0 гарантирует валидация
func (r Pagination) Offset() int {
	page, limit := r.GetPage()
	return (page - 1) * limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// IsBeyond страница за пределами выборки (page > TotalPages), запрос списка можно не делать
func (r Pagination) IsBeyond(total int64) bool {
	if total <= 0 {
		return true
	}
	page, limit := r.GetPage()
	if r.Page > MaxPage {
		return true
	}
	return int64(page-1) >= (total+int64(limit)-1)/int64(limit)
}
