package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"biocat/internal/domain"
	"biocat/internal/notify"
	"biocat/internal/repository"
)

// ProductService coordinates inventory mutations backed by the product collection.
type ProductService interface {
	List(ctx context.Context) []domain.Product
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Import(ctx context.Context, inputs []domain.ProductInput) (int, error)
}

type productService struct {
	products repository.ProductRepository
	notifier notify.Notifier
}

func NewProductService(products repository.ProductRepository, notifier notify.Notifier) ProductService {
	return &productService{
		products: products,
		notifier: notifier,
	}
}

func (s *productService) List(ctx context.Context) []domain.Product {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		s.notifier.Notify(notify.SeverityWarning, "Por favor completa todos los campos requeridos")
		return nil, err
	}

	if err := s.products.Append(ctx, *product); err != nil {
		return nil, err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Producto agregado correctamente")
	return product, nil
}

func (s *productService) Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	existing, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateProductInput(input); err != nil {
		s.notifier.Notify(notify.SeverityWarning, "Por favor completa todos los campos requeridos")
		return nil, err
	}

	updated := *existing
	updated.Name = strings.TrimSpace(input.Name)
	updated.Location = strings.TrimSpace(input.Location)
	updated.Quantity = input.Quantity
	updated.Cost = input.Cost
	updated.SalePrice = input.SalePrice
	updated.UpdatedAt = now(existing.UpdatedAt)

	if err := s.products.Replace(ctx, updated); err != nil {
		return nil, err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Producto actualizado correctamente")
	return &updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Producto eliminado")
	return nil
}

func (s *productService) Clear(ctx context.Context) error {
	if err := s.products.Clear(ctx); err != nil {
		return err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Inventario vaciado")
	return nil
}

// Import appends already-coerced rows to the collection, skipping any that
// fail validation. Rows never replace existing entities.
func (s *productService) Import(ctx context.Context, inputs []domain.ProductInput) (int, error) {
	imported := 0
	for _, input := range inputs {
		product, err := buildProduct(input)
		if err != nil {
			continue
		}
		if err := s.products.Append(ctx, *product); err != nil {
			return imported, err
		}
		imported++
	}
	s.notifier.Notify(notify.SeveritySuccess, fmt.Sprintf("%d productos importados", imported))
	return imported, nil
}

func buildProduct(input domain.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	created := time.Now().UTC()
	return &domain.Product{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Location:  strings.TrimSpace(input.Location),
		Quantity:  input.Quantity,
		Cost:      input.Cost,
		SalePrice: input.SalePrice,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil
}

func validateProductInput(input domain.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &domain.ValidationError{Field: "name"}
	}
	if strings.TrimSpace(input.Location) == "" {
		return &domain.ValidationError{Field: "location"}
	}
	if input.Quantity < 0 {
		return &domain.ValidationError{Field: "quantity"}
	}
	if input.Cost < 0 {
		return &domain.ValidationError{Field: "cost"}
	}
	if input.SalePrice < 0 {
		return &domain.ValidationError{Field: "salePrice"}
	}
	return nil
}

// now guarantees updatedAt moves strictly forward even when two edits land
// within the clock's resolution.
func now(after time.Time) time.Time {
	t := time.Now().UTC()
	if !t.After(after) {
		t = after.Add(time.Nanosecond)
	}
	return t
}
