package domain

// WorkCategory is the embedded category reference carried on a work listing.
type WorkCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Work is a service listing offered under a category.
type Work struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	WorkCategory WorkCategory `json:"workCategory"`
}
