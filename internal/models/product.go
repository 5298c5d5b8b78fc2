package models

import (
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/shopspring/decimal"
)

// VariantKind discriminates the three product tables.
type VariantKind string

const (
	VariantShoes  VariantKind = "shoes"
	VariantPants  VariantKind = "pants"
	VariantHoodie VariantKind = "hoodie"
)

// VariantKinds lists every kind in storefront order.
var VariantKinds = []VariantKind{VariantShoes, VariantPants, VariantHoodie}

func ParseVariantKind(s string) (VariantKind, error) {
	switch kind := VariantKind(s); kind {
	case VariantShoes, VariantPants, VariantHoodie:
		return kind, nil
	default:
		return "", errors.InvalidVariantError(s)
	}
}

// ProductRef is the composite key a cart line uses to point at any product.
type ProductRef struct {
	Kind VariantKind `json:"kind"`
	ID   int64       `json:"id"`
}

// Product is all the cart and order code knows about an item.
type Product interface {
	GetID() int64
	GetPrice() decimal.Decimal
	GetTitle() string
	GetSlug() string
	Kind() VariantKind
	Ref() ProductRef
	Common() *ClothesBase
}

type ClothesBase struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	BrandID     int64           `json:"brand_id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (c *ClothesBase) GetID() int64              { return c.ID }
func (c *ClothesBase) GetPrice() decimal.Decimal { return c.Price }
func (c *ClothesBase) GetTitle() string          { return c.Title }
func (c *ClothesBase) GetSlug() string           { return c.Slug }
func (c *ClothesBase) Common() *ClothesBase      { return c }

type Shoes struct {
	ClothesBase
	Color           string `json:"color"`
	Size            string `json:"size"`
	OutsoleMaterial string `json:"outsole_material"`
	InsoleMaterial  string `json:"insole_material"`
	InnerMaterial   string `json:"inner_material"`
	TopMaterial     string `json:"top_material"`
}

func (s *Shoes) Kind() VariantKind { return VariantShoes }
func (s *Shoes) Ref() ProductRef   { return ProductRef{Kind: VariantShoes, ID: s.ID} }

type Pants struct {
	ClothesBase
	Color        string `json:"color"`
	LengthInside string `json:"length_inside"`
	LengthSide   string `json:"length_side"`
	BottomWidth  string `json:"bottom_width"`
	Pattern      string `json:"pattern"`
	Claps        string `json:"claps"`
}

func (p *Pants) Kind() VariantKind { return VariantPants }
func (p *Pants) Ref() ProductRef   { return ProductRef{Kind: VariantPants, ID: p.ID} }

type Hoodie struct {
	ClothesBase
	Color        string `json:"color"`
	Length       string `json:"length"`
	LengthSleeve string `json:"length_sleeve"`
	Pattern      string `json:"pattern"`
}

func (h *Hoodie) Kind() VariantKind { return VariantHoodie }
func (h *Hoodie) Ref() ProductRef   { return ProductRef{Kind: VariantHoodie, ID: h.ID} }

// ProductRequest is the admin payload for creating or replacing a product of any kind.
// Fields that do not belong to the target kind are ignored.
type ProductRequest struct {
	CategoryID  int64           `json:"category_id" validate:"required,gt=0"`
	BrandID     int64           `json:"brand_id" validate:"required,gt=0"`
	Title       string          `json:"title" validate:"required,max=255"`
	Slug        string          `json:"slug" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"`

	Color           string `json:"color" validate:"max=100"`
	Size            string `json:"size" validate:"max=50"`
	OutsoleMaterial string `json:"outsole_material" validate:"max=100"`
	InsoleMaterial  string `json:"insole_material" validate:"max=100"`
	InnerMaterial   string `json:"inner_material" validate:"max=100"`
	TopMaterial     string `json:"top_material" validate:"max=100"`
	LengthInside    string `json:"length_inside" validate:"max=50"`
	LengthSide      string `json:"length_side" validate:"max=50"`
	BottomWidth     string `json:"bottom_width" validate:"max=50"`
	Pattern         string `json:"pattern" validate:"max=100"`
	Claps           string `json:"claps" validate:"max=100"`
	Length          string `json:"length" validate:"max=50"`
	LengthSleeve    string `json:"length_sleeve" validate:"max=50"`
}

// NewProduct builds the concrete variant described by req.
func NewProduct(kind VariantKind, req *ProductRequest) (Product, error) {
	base := ClothesBase{
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price.Round(2),
	}

	switch kind {
	case VariantShoes:
		return &Shoes{
			ClothesBase:     base,
			Color:           req.Color,
			Size:            req.Size,
			OutsoleMaterial: req.OutsoleMaterial,
			InsoleMaterial:  req.InsoleMaterial,
			InnerMaterial:   req.InnerMaterial,
			TopMaterial:     req.TopMaterial,
		}, nil
	case VariantPants:
		return &Pants{
			ClothesBase:  base,
			Color:        req.Color,
			LengthInside: req.LengthInside,
			LengthSide:   req.LengthSide,
			BottomWidth:  req.BottomWidth,
			Pattern:      req.Pattern,
			Claps:        req.Claps,
		}, nil
	case VariantHoodie:
		return &Hoodie{
			ClothesBase:  base,
			Color:        req.Color,
			Length:       req.Length,
			LengthSleeve: req.LengthSleeve,
			Pattern:      req.Pattern,
		}, nil
	default:
		return nil, errors.InvalidVariantError(string(kind))
	}
}

// ProductDetail is the read model for a single product page.
type ProductDetail struct {
	Kind    VariantKind `json:"kind"`
	URL     string      `json:"url"`
	Product Product     `json:"product"`
	Brand   *Brand      `json:"brand,omitempty"`
}

// ProductURL is the canonical storefront path of a product.
func ProductURL(p Product) string {
	return "/clothes/" + string(p.Kind()) + "/" + p.GetSlug() + "/"
}
