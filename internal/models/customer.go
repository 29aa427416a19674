package models

type CustomerDoc struct {
	CustomerID int    `json:"customer_id" bson:"customerId"`
	FirstName  string `json:"first_name" bson:"firstName"`
	LastName   string `json:"last_name" bson:"lastName"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
}
