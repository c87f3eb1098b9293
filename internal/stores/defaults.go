package stores

import "github.com/cleared-dev/gastos/internal/model"

// DefaultStores returns the two stores the business operates.
func DefaultStores() []model.Store {
	return []model.Store{
		{ID: model.Store1, Name: "Danli", Aliases: []string{"Denly"}},
		{ID: model.Store2, Name: "El Paraiso", Aliases: []string{"Paraiso"}},
	}
}

// Default returns a Service over DefaultStores.
func Default() *Service {
	return NewService(DefaultStores())
}
