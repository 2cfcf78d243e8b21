package catalog

import (
	"context"

	"go.uber.org/zap"

	"tripbud/internal/types"
)

type cityLister interface {
	ListCities(ctx context.Context) ([]City, error)
}

type Service struct {
	store cityLister
	log   *zap.Logger
}

// NewService accepts a nil store, in which case the built-in city list is used.
func NewService(store *Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{log: log}
	if store != nil {
		s.store = store
	}
	return s
}

// Cities never fails; database errors degrade to the built-in list.
func (s *Service) Cities(ctx context.Context) []City {
	if s.store == nil {
		return append([]City(nil), defaultCities...)
	}
	cities, err := s.store.ListCities(ctx)
	if err != nil {
		s.log.Warn("list cities failed, serving defaults", zap.Error(err))
		return append([]City(nil), defaultCities...)
	}
	if len(cities) == 0 {
		return append([]City(nil), defaultCities...)
	}
	return cities
}

func (s *Service) Categories() []Category {
	out := make([]Category, 0, len(types.Categories))
	for _, c := range types.Categories {
		out = append(out, Category{ID: c.ID, Name: c.Name, Icon: c.ID.Marker()})
	}
	return out
}
