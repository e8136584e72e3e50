package entity

// Account is one watched Steam identity. Created from the accounts file at
// startup and never mutated afterwards.
type Account struct {
	Name   string `json:"name" validate:"required"`
	APIKey string `json:"api_key" validate:"required"`
}
