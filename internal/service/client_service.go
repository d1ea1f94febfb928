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

// ClientService coordinates client-book mutations backed by the client collection.
type ClientService interface {
	List(ctx context.Context) []domain.Client
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input domain.ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input domain.ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Import(ctx context.Context, inputs []domain.ClientInput) (int, error)
}

type clientService struct {
	clients  repository.ClientRepository
	notifier notify.Notifier
}

func NewClientService(clients repository.ClientRepository, notifier notify.Notifier) ClientService {
	return &clientService{
		clients:  clients,
		notifier: notifier,
	}
}

func (s *clientService) List(ctx context.Context) []domain.Client {
	return s.clients.List(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *clientService) Create(ctx context.Context, input domain.ClientInput) (*domain.Client, error) {
	client, err := buildClient(input)
	if err != nil {
		s.notifier.Notify(notify.SeverityWarning, "Por favor completa todos los campos")
		return nil, err
	}

	if err := s.clients.Append(ctx, *client); err != nil {
		return nil, err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Cliente agregado correctamente")
	return client, nil
}

func (s *clientService) Update(ctx context.Context, id string, input domain.ClientInput) (*domain.Client, error) {
	existing, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateClientInput(input); err != nil {
		s.notifier.Notify(notify.SeverityWarning, "Por favor completa todos los campos")
		return nil, err
	}

	updated := *existing
	updated.Name = strings.TrimSpace(input.Name)
	updated.Contact = strings.TrimSpace(input.Contact)
	updated.ShippingLocation = strings.TrimSpace(input.ShippingLocation)
	updated.UpdatedAt = now(existing.UpdatedAt)

	if err := s.clients.Replace(ctx, updated); err != nil {
		return nil, err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Cliente actualizado correctamente")
	return &updated, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Cliente eliminado")
	return nil
}

func (s *clientService) Clear(ctx context.Context) error {
	if err := s.clients.Clear(ctx); err != nil {
		return err
	}
	s.notifier.Notify(notify.SeveritySuccess, "Lista de clientes vaciada")
	return nil
}

func (s *clientService) Import(ctx context.Context, inputs []domain.ClientInput) (int, error) {
	imported := 0
	for _, input := range inputs {
		client, err := buildClient(input)
		if err != nil {
			continue
		}
		if err := s.clients.Append(ctx, *client); err != nil {
			return imported, err
		}
		imported++
	}
	s.notifier.Notify(notify.SeveritySuccess, fmt.Sprintf("%d clientes importados", imported))
	return imported, nil
}

func buildClient(input domain.ClientInput) (*domain.Client, error) {
	if err := validateClientInput(input); err != nil {
		return nil, err
	}
	created := time.Now().UTC()
	return &domain.Client{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(input.Name),
		Contact:          strings.TrimSpace(input.Contact),
		ShippingLocation: strings.TrimSpace(input.ShippingLocation),
		CreatedAt:        created,
		UpdatedAt:        created,
	}, nil
}

func validateClientInput(input domain.ClientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &domain.ValidationError{Field: "name"}
	}
	if strings.TrimSpace(input.Contact) == "" {
		return &domain.ValidationError{Field: "contact"}
	}
	if strings.TrimSpace(input.ShippingLocation) == "" {
		return &domain.ValidationError{Field: "shippingLocation"}
	}
	return nil
}
