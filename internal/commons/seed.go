package commons

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

// Seed is the startup dataset: the menu catalog, the floor plan occupancy
// and the open orders the dashboard starts with. It stands in for the
// ingestion channels that are out of scope.
type Seed struct {
	Menu   []SeedMenuItem `yaml:"menu"`
	Tables []SeedTable    `yaml:"tables"`
	Orders []SeedOrder    `yaml:"orders"`
}

type SeedMenuItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Available   bool   `yaml:"available"`
}

type SeedLine struct {
	MenuItemID string `yaml:"menuItemId"`
	Name       string `yaml:"name"`
	Price      string `yaml:"price"`
	Quantity   int    `yaml:"quantity"`
	Note       string `yaml:"note"`
}

type SeedTable struct {
	ID        int        `yaml:"id"`
	Status    string     `yaml:"status"`
	PartySize int        `yaml:"partySize"`
	Items     []SeedLine `yaml:"items"`
}

type SeedOrder struct {
	ID             string     `yaml:"id"`
	CustomerName   string     `yaml:"customerName"`
	Source         string     `yaml:"source"`
	Type           string     `yaml:"type"`
	TableNumber    int        `yaml:"tableNumber"`
	Status         string     `yaml:"status"`
	WaitingMinutes int        `yaml:"waitingMinutes"`
	Items          []SeedLine `yaml:"items"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	return &seed, nil
}

// MenuItems converts the seeded catalog into domain items.
func (s *Seed) MenuItems(now time.Time) ([]domain.MenuItem, error) {
	items := make([]domain.MenuItem, 0, len(s.Menu))
	for _, entry := range s.Menu {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: parsing price: %w", entry.Name, err)
		}

		items = append(items, domain.MenuItem{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Price:       price,
			Category:    domain.MenuCategory(entry.Category),
			Image:       entry.Image,
			Available:   entry.Available,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return items, nil
}

// FloorTables builds the fixed floor plan. Every table from 1..tableCount
// exists; seeded occupancy overrides the free default. Items on a seeded tab
// are already part of the kitchen ledger, so they come up as sent.
func (s *Seed) FloorTables(tableCount int) ([]domain.Table, error) {
	seeded := make(map[int]SeedTable, len(s.Tables))
	for _, entry := range s.Tables {
		seeded[entry.ID] = entry
	}

	tables := make([]domain.Table, 0, tableCount)
	for id := 1; id <= tableCount; id++ {
		table := domain.Table{ID: id, Status: domain.TableStatusFree}

		if entry, ok := seeded[id]; ok && entry.Status != string(domain.TableStatusFree) {
			if !domain.TableStatus(entry.Status).Valid() {
				return nil, fmt.Errorf("table %d: unknown status %q", id, entry.Status)
			}

			lines, err := seedLines(entry.Items, true)
			if err != nil {
				return nil, fmt.Errorf("table %d: %w", id, err)
			}

			table.Status = domain.TableStatus(entry.Status)
			table.PartySize = entry.PartySize
			table.TabID = uuid.New().String()
			table.Lines = lines
		}

		tables = append(tables, table)
	}
	return tables, nil
}

// BoardOrders converts the seeded kanban orders. CreatedAt is back-dated by
// the seeded waiting time so the waiting counter keeps running from there.
func (s *Seed) BoardOrders(now time.Time) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(s.Orders))
	for _, entry := range s.Orders {
		if !domain.OrderStatus(entry.Status).Valid() {
			return nil, fmt.Errorf("order %s: unknown status %q", entry.ID, entry.Status)
		}

		lines, err := seedLines(entry.Items, true)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", entry.ID, err)
		}

		orders = append(orders, domain.Order{
			ID:           entry.ID,
			CustomerName: entry.CustomerName,
			Source:       domain.OrderSource(entry.Source),
			Lines:        lines,
			Fulfillment:  domain.FulfillmentType(entry.Type),
			TableNumber:  entry.TableNumber,
			Status:       domain.OrderStatus(entry.Status),
			CreatedAt:    now.Add(-time.Duration(entry.WaitingMinutes) * time.Minute),
		})
	}
	return orders, nil
}

func seedLines(entries []SeedLine, sent bool) (domain.LineList, error) {
	var lines domain.LineList
	for _, entry := range entries {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("line %q: parsing price: %w", entry.Name, err)
		}

		lines = append(lines, domain.Line{
			ID:         uuid.New().String(),
			MenuItemID: entry.MenuItemID,
			Name:       entry.Name,
			UnitPrice:  price,
			Quantity:   entry.Quantity,
			Note:       entry.Note,
			Sent:       sent,
		})
	}
	return lines, nil
}
