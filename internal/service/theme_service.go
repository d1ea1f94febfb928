package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"biocat/internal/domain"
	"biocat/internal/store"
)

// ThemeService persists the display preference independently of the session.
type ThemeService interface {
	Current(ctx context.Context) domain.Theme
	Set(ctx context.Context, theme domain.Theme) error
}

type themeService struct {
	kv     store.Store
	logger logrus.FieldLogger
}

func NewThemeService(kv store.Store, logger logrus.FieldLogger) ThemeService {
	return &themeService{kv: kv, logger: logger}
}

func (s *themeService) Current(ctx context.Context) domain.Theme {
	var theme domain.Theme
	ok, err := store.GetJSON(ctx, s.kv, store.KeyTheme, &theme, s.logger)
	if err != nil {
		s.logger.Warnf("read theme: %v", err)
	}
	if !ok || !theme.Valid() {
		return domain.ThemeLight
	}
	return theme
}

func (s *themeService) Set(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unsupported theme %q", theme)
	}
	return store.SetJSON(ctx, s.kv, store.KeyTheme, theme)
}
