package dto

import "github.com/Joaomarcellodev/IzziOrder/internal/domain"

type LineDTO struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
	Subtotal   string `json:"subtotal"`
	Sent       bool   `json:"sent"`
}

func NewLineDTO(line domain.Line) LineDTO {
	return LineDTO{
		ID:         line.ID,
		MenuItemID: line.MenuItemID,
		Name:       line.Name,
		UnitPrice:  line.UnitPrice.StringFixed(2),
		Quantity:   line.Quantity,
		Note:       line.Note,
		Subtotal:   line.Subtotal().StringFixed(2),
		Sent:       line.Sent,
	}
}

func NewLineDTOs(lines domain.LineList) []LineDTO {
	out := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		out = append(out, NewLineDTO(line))
	}
	return out
}
