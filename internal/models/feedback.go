package models

import "time"

// FeedbackDoc: valoración de un cliente sobre una recomendación recibida.
// Inmutable una vez creado; no lo consume el motor de scoring.
type FeedbackDoc struct {
	FeedbackID int       `json:"feedback_id" bson:"feedbackId"`
	CustomerID int       `json:"customer_id" bson:"customerId"`
	Strategy   string    `json:"strategy" bson:"strategy"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	Liked      bool      `json:"liked" bson:"liked"`
	CreatedAt  time.Time `json:"created_at" bson:"createdAt"`
}
