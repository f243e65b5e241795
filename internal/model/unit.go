package model

// Unit represents an apartment unit that owns cards.
type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
