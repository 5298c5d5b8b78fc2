package models

import "time"

type Category struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Kind      VariantKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}

func (c *Category) URL() string {
	return "/category/" + c.Slug + "/"
}

type Brand struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

// NavCategory is one navigation menu entry.
type NavCategory struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// LatestGroup holds the newest products of one kind.
type LatestGroup struct {
	Kind     VariantKind `json:"kind"`
	Products []Product   `json:"products"`
}

type HomePage struct {
	Categories []NavCategory `json:"categories"`
	Latest     []LatestGroup `json:"latest"`
	Cart       *CartBadge    `json:"cart"`
}

type CategoryPage struct {
	Category   *Category     `json:"category"`
	Products   []Product     `json:"products"`
	Categories []NavCategory `json:"categories"`
	Cart       *CartBadge    `json:"cart"`
}
