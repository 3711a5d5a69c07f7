// Package menu holds the fixed teahouse catalogue. Prices are integer so'm;
// the id is the stable key the order form submits.
package menu

import (
	"errors"
	"fmt"
	"sort"
)

// Currency is the display currency for every price in the catalogue.
const Currency = "so'm"

var ErrNotFound = errors.New("menu item not found")

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
}

type Section struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Catalogue is an immutable priced menu keyed by item id.
type Catalogue struct {
	items []Item
	byID  map[string]Item
}

func New(items []Item) (*Catalogue, error) {
	c := &Catalogue{
		items: make([]Item, len(items)),
		byID:  make(map[string]Item, len(items)),
	}
	copy(c.items, items)
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("menu item %q has an empty id", it.Name)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("menu item %q has a negative price", it.ID)
		}
		if _, ok := c.byID[it.ID]; ok {
			return nil, fmt.Errorf("duplicate menu item id %q", it.ID)
		}
		c.byID[it.ID] = it
	}
	return c, nil
}

// Default returns the in-code catalogue the bot serves.
func Default() *Catalogue {
	c, err := New(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalogue) Lookup(id string) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return it, nil
}

func (c *Catalogue) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Sections groups the catalogue by category for the order form. Categories
// come out sorted by name, items keep their declaration order.
func (c *Catalogue) Sections() []Section {
	grouped := make(map[string][]Item)
	for _, it := range c.items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sections := make([]Section, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, Section{Category: category, Items: grouped[category]})
	}
	return sections
}

var defaultItems = []Item{
	{ID: "tea_green", Name: "Ko'k choy", Category: "Ichimliklar", Price: 5000},
	{ID: "tea_black", Name: "Qora choy", Category: "Ichimliklar", Price: 4000},
	{ID: "lepyoshka", Name: "Non", Category: "Qo'shimchalar", Price: 3000},
	{ID: "somsa_lamb", Name: "Qo'y go'shtli somsa", Category: "Somsa", Price: 12000},
	{ID: "somsa_beef", Name: "Mol go'shtli somsa", Category: "Somsa", Price: 11000},
	{ID: "plov", Name: "Palov", Category: "Asosiy taomlar", Price: 28000},
	{ID: "lagman", Name: "Lag'mon", Category: "Asosiy taomlar", Price: 26000},
	{ID: "shashlik", Name: "Kabob", Category: "Asosiy taomlar", Price: 18000},
	{ID: "salad", Name: "Achchiq-chuchuk", Category: "Salatlar", Price: 9000},
	{ID: "ayran", Name: "Ayran", Category: "Ichimliklar", Price: 7000},
}
