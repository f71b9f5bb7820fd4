package models

// ServiceDetails holds the structured content shown on a service's
// detail page.
type ServiceDetails struct {
	WhatToExpect []string `json:"whatToExpect,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	Preparation  []string `json:"preparation,omitempty"`
}

// Service is an immutable catalog entry. Loaded once at process start,
// never mutated.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Details     *ServiceDetails `json:"details,omitempty"`
}
