package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/lib/pq"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CountProductsByCategory(ctx context.Context) (map[int64]int, error)

	GetProductBySlug(ctx context.Context, kind models.VariantKind, slug string) (models.Product, error)
	ListLatest(ctx context.Context, kind models.VariantKind, limit int) ([]models.Product, error)
	ListByCategory(ctx context.Context, kind models.VariantKind, categoryID int64) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) error
	UpdateProduct(ctx context.Context, product models.Product) error
	UpdateProductImage(ctx context.Context, ref models.ProductRef, image string) error
	DeleteProduct(ctx context.Context, ref models.ProductRef) error

	CreateBrand(ctx context.Context, brand *models.Brand) error
	GetBrandByID(ctx context.Context, id int64) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

// IsUniqueViolation reports whether err comes from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const productColumns = "id, category_id, brand_id, title, slug, image, description, price, created_at, updated_at"

// variantSchema maps one product kind onto its table.
type variantSchema struct {
	table   string
	columns []string
	blank   func() models.Product
	extra   func(p models.Product) []*string
}

var variantSchemas = map[models.VariantKind]variantSchema{
	models.VariantShoes: {
		table:   "shoes",
		columns: []string{"color", "size", "outsole_material", "insole_material", "inner_material", "top_material"},
		blank:   func() models.Product { return &models.Shoes{} },
		extra: func(p models.Product) []*string {
			s := p.(*models.Shoes)
			return []*string{&s.Color, &s.Size, &s.OutsoleMaterial, &s.InsoleMaterial, &s.InnerMaterial, &s.TopMaterial}
		},
	},
	models.VariantPants: {
		table:   "pants",
		columns: []string{"color", "length_inside", "length_side", "bottom_width", "pattern", "claps"},
		blank:   func() models.Product { return &models.Pants{} },
		extra: func(p models.Product) []*string {
			s := p.(*models.Pants)
			return []*string{&s.Color, &s.LengthInside, &s.LengthSide, &s.BottomWidth, &s.Pattern, &s.Claps}
		},
	},
	models.VariantHoodie: {
		table:   "hoodies",
		columns: []string{"color", "length", "length_sleeve", "pattern"},
		blank:   func() models.Product { return &models.Hoodie{} },
		extra: func(p models.Product) []*string {
			s := p.(*models.Hoodie)
			return []*string{&s.Color, &s.Length, &s.LengthSleeve, &s.Pattern}
		},
	},
}

func schemaFor(kind models.VariantKind) (variantSchema, error) {
	schema, ok := variantSchemas[kind]
	if !ok {
		return variantSchema{}, fmt.Errorf("unknown product kind %q", kind)
	}

	return schema, nil
}

func (s variantSchema) selectQuery() string {
	return "SELECT " + productColumns + ", " + strings.Join(s.columns, ", ") + " FROM " + s.table
}

func (s variantSchema) scanTargets(p models.Product) []any {
	b := p.Common()
	targets := []any{&b.ID, &b.CategoryID, &b.BrandID, &b.Title, &b.Slug, &b.Image, &b.Description, &b.Price, &b.CreatedAt, &b.UpdatedAt}

	for _, field := range s.extra(p) {
		targets = append(targets, field)
	}

	return targets
}

// writeValues returns the editable columns and their values, image excluded.
func (s variantSchema) writeValues(p models.Product) ([]string, []any) {
	b := p.Common()
	columns := append([]string{"category_id", "brand_id", "title", "slug", "description", "price"}, s.columns...)
	values := []any{b.CategoryID, b.BrandID, b.Title, b.Slug, b.Description, b.Price}

	for _, field := range s.extra(p) {
		values = append(values, *field)
	}

	return columns, values
}

func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}

	return strings.Join(parts, ", ")
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, slug, kind, created_at FROM categories ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Kind, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, slug, kind, created_at FROM categories WHERE slug = $1`

	c := &models.Category{}

	err := r.DB.QueryRowContext(dbCtx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Kind, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return c, nil
}

func (r *catalogRepository) CountProductsByCategory(ctx context.Context) (map[int64]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT category_id, COUNT(*)
		FROM (
			SELECT category_id FROM shoes
			UNION ALL SELECT category_id FROM pants
			UNION ALL SELECT category_id FROM hoodies
		) AS products
		GROUP BY category_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)

	for rows.Next() {
		var categoryID int64
		var count int

		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan product count: %w", err)
		}

		counts[categoryID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return counts, nil
}

func (r *catalogRepository) GetProductBySlug(ctx context.Context, kind models.VariantKind, slug string) (models.Product, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := schema.blank()

	err = r.DB.QueryRowContext(dbCtx, schema.selectQuery()+" WHERE slug = $1", slug).Scan(schema.scanTargets(product)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) listProducts(ctx context.Context, kind models.VariantKind, suffix string, args ...any) ([]models.Product, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, schema.selectQuery()+" "+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", schema.table, err)
	}
	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		product := schema.blank()
		if err := rows.Scan(schema.scanTargets(product)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", schema.table, err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) ListLatest(ctx context.Context, kind models.VariantKind, limit int) ([]models.Product, error) {
	return r.listProducts(ctx, kind, "ORDER BY id DESC LIMIT $1", limit)
}

func (r *catalogRepository) ListByCategory(ctx context.Context, kind models.VariantKind, categoryID int64) ([]models.Product, error) {
	return r.listProducts(ctx, kind, "WHERE category_id = $1 ORDER BY id DESC", categoryID)
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product models.Product) error {
	schema, err := schemaFor(product.Kind())
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	columns, values := schema.writeValues(product)
	query := "INSERT INTO " + schema.table + " (" + strings.Join(columns, ", ") + ") VALUES (" +
		placeholders(1, len(columns)) + ") RETURNING id, created_at, updated_at"

	b := product.Common()

	if err := r.DB.QueryRowContext(dbCtx, query, values...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", schema.table, err)
	}

	return nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	schema, err := schemaFor(product.Kind())
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	columns, values := schema.writeValues(product)

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	query := "UPDATE " + schema.table + " SET " + strings.Join(assignments, ", ") +
		fmt.Sprintf(", updated_at = NOW() WHERE id = $%d RETURNING updated_at", len(columns)+1)

	b := product.Common()

	err = r.DB.QueryRowContext(dbCtx, query, append(values, b.ID)...).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to update %s: %w", schema.table, err)
	}

	return nil
}

func (r *catalogRepository) UpdateProductImage(ctx context.Context, ref models.ProductRef, image string) error {
	schema, err := schemaFor(ref.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := "UPDATE " + schema.table + " SET image = $1, updated_at = NOW() WHERE id = $2"

	return execAffectingOne(dbCtx, r.DB, query, image, ref.ID)
}

// DeleteProduct removes the product together with its lines in open carts,
// lowering those carts' totals by what the lines contributed. Lines of sealed
// carts stay as the record of the order.
func (r *catalogRepository) DeleteProduct(ctx context.Context, ref models.ProductRef) (err error) {
	schema, err := schemaFor(ref.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
			}
		}
	}()

	purgeQuery := `
		WITH locked AS (
			SELECT c.id FROM carts c
			JOIN cart_lines l ON l.cart_id = c.id
			WHERE c.in_order = false AND l.product_kind = $1 AND l.product_id = $2
			FOR UPDATE OF c
		), removed AS (
			DELETE FROM cart_lines l USING locked
			WHERE l.cart_id = locked.id AND l.product_kind = $1 AND l.product_id = $2
			RETURNING l.cart_id, l.qty, l.final_price
		)
		UPDATE carts
		SET total_products = carts.total_products - removed.qty,
			final_price = carts.final_price - removed.final_price,
			updated_at = NOW()
		FROM removed
		WHERE carts.id = removed.cart_id
	`

	if _, err = tx.ExecContext(dbCtx, purgeQuery, ref.Kind, ref.ID); err != nil {
		return fmt.Errorf("failed to remove cart lines: %w", err)
	}

	if err = execAffectingOne(dbCtx, tx, "DELETE FROM "+schema.table+" WHERE id = $1", ref.ID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *catalogRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO brands (name, slug) VALUES ($1, $2) RETURNING id, created_at`

	if err := r.DB.QueryRowContext(dbCtx, query, brand.Name, brand.Slug).Scan(&brand.ID, &brand.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert brand: %w", err)
	}

	return nil
}

func (r *catalogRepository) GetBrandByID(ctx context.Context, id int64) (*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, slug, created_at FROM brands WHERE id = $1`

	b := &models.Brand{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return b, nil
}

func (r *catalogRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, slug, created_at FROM brands ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}

	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}

		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return brands, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execAffectingOne runs a write that must touch a row; zero rows yields sql.ErrNoRows.
func execAffectingOne(ctx context.Context, db execer, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
