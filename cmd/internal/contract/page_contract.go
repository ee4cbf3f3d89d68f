package contract

import "employeedocs/cmd/internal/domain/pagination"

// PageRequest carries the pagination query parameters shared by every listing.
type PageRequest struct {
	Limit  int   `query:"limit"`
	Page   int   `query:"page" validate:"omitempty,min=1"`
	After  int64 `query:"after" validate:"omitempty,gt=0"`
	Before int64 `query:"before" validate:"omitempty,gt=0"`
}

func (p *PageRequest) Params() pagination.Params {
	return pagination.Params{
		Limit:  p.Limit,
		Page:   p.Page,
		After:  pagination.Cursor(p.After),
		Before: pagination.Cursor(p.Before),
	}
}

type PageResponse[T any] struct {
	List       []T                `json:"list"`
	NextCursor *pagination.Cursor `json:"nextCursor"`
	PrevCursor *pagination.Cursor `json:"prevCursor"`
}

func NewPageResponse[T any](page pagination.Page[T]) *PageResponse[T] {
	list := page.List
	if list == nil {
		list = []T{}
	}
	return &PageResponse[T]{
		List:       list,
		NextCursor: page.NextCursor,
		PrevCursor: page.PrevCursor,
	}
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
