package model

// StoreID identifies a physical store.
type StoreID int

const (
	Store1 StoreID = 1
	Store2 StoreID = 2
)

// Store is a physical store and the names it may be referred to by.
type Store struct {
	ID      StoreID
	Name    string   // display name
	Aliases []string // extra accepted spellings
}
