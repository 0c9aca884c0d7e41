package menu

import "github.com/Joaomarcellodev/IzziOrder/internal/domain"

type MenuItemDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}

type ListResponse struct {
	Items      []MenuItemDTO `json:"items"`
	Categories []string      `json:"categories"`
}

type SaveItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Available   *bool  `json:"available,omitempty"`
}

func newMenuItemDTO(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Category:    string(item.Category),
		Image:       item.Image,
		Available:   item.Available,
	}
}
