package domain

// Category is a service category in the marketplace catalog.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
