package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/shoply/pkg/database"
	"github.com/ghuser/shoply/pkg/events"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
	domainevents "github.com/ghuser/shoply/services/catalog/domain/events"
	"github.com/ghuser/shoply/services/catalog/domain/models"
	"github.com/ghuser/shoply/services/catalog/domain/repositories"
)

// productColumns is the select list shared by all product reads. price is
// selected as text and parsed into a decimal to avoid float conversion.
const productColumns = "id, name, price::text, category, subcategory, created_at, updated_at"

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given connection
// pool and event bus. The bus is used to publish ProductCreatedEvents after a
// successful save.
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the
// same transaction.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, name, price, category, subcategory, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			product.ID,
			product.Name.String(),
			product.Price.StringFixed(2),
			product.Category,
			product.Subcategory,
			product.CreatedAt,
			product.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return product, nil
}

// FindPage retrieves one ordered window of products. Ordering is by creation
// time descending with ties broken by id ascending, so windows are stable
// across calls.
func (r *ProductRepository) FindPage(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC, id ASC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(rows)
}

// CountAll returns the total number of products.
func (r *ProductRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// FindByNameSubstring retrieves all products whose name contains query,
// case-insensitively, ordered like FindPage. LIKE metacharacters in the
// query are escaped so they match literally.
func (r *ProductRepository) FindByNameSubstring(ctx context.Context, query string) ([]*models.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE $1 ESCAPE '\'
		 ORDER BY created_at DESC, id ASC`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(rows)
}

// Exists reports whether a product with the given ID exists.
func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ProductID:   product.ID,
		Name:        product.Name.String(),
		Price:       product.Price,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		OccurredAt:  product.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProductCreated, msg)
}

// escapeLike escapes LIKE pattern metacharacters so user input matches literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct maps one result row to a domain models.Product.
func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p     models.Product
		name  string
		price string
	)
	if err := row.Scan(&p.ID, &name, &price, &p.Category, &p.Subcategory, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Name = models.ProductName(name)

	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	p.Price = d
	return &p, nil
}

func collectProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
