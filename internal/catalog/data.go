package catalog

import "github.com/BruksfildServices01/spa-scheduler/internal/models"

var services = []models.Service{
	{
		ID:          "facial",
		Name:        "Facial Treatment",
		Description: "Deep cleansing facial with hydrating mask",
		Duration:    "60 minutes",
		ImageURL:    "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=800&h=600&fit=crop&q=80",
		Details: &models.ServiceDetails{
			WhatToExpect: []string{
				"Deep cleansing and exfoliation",
				"Customized mask treatment",
				"Hydrating serum application",
				"Gentle facial massage",
			},
			Benefits: []string{
				"Improved skin texture and tone",
				"Deep hydration and nourishment",
				"Reduced appearance of fine lines",
				"Radiant, glowing complexion",
			},
			Preparation: []string{
				"Arrive with clean, makeup-free skin",
				"Avoid sun exposure 24 hours before",
				"Skip retinol products 2 days prior",
			},
		},
	},
	{
		ID:          "botox",
		Name:        "Botox Consultation",
		Description: "Expert consultation for Botox treatments",
		Duration:    "30 minutes",
		ImageURL:    "https://images.pexels.com/photos/4586740/pexels-photo-4586740.jpeg",
		Details: &models.ServiceDetails{
			WhatToExpect: []string{
				"Comprehensive skin analysis",
				"Discussion of treatment goals",
				"Personalized treatment plan",
				"Q&A session with expert",
			},
			Benefits: []string{
				"Expert guidance on Botox options",
				"Personalized treatment recommendations",
				"Clear understanding of results",
				"Safe, informed decision-making",
			},
			Preparation: []string{
				"Come with questions prepared",
				"Share medical history and concerns",
				"No special preparation needed",
			},
		},
	},
	{
		ID:          "hair-removal",
		Name:        "Hair Removal",
		Description: "Laser hair removal session",
		Duration:    "45 minutes",
		ImageURL:    "https://www.kolorshealthcare.com/blog/wp-content/uploads/2023/07/Laser-Hair-Removal-Face.jpg",
		Details: &models.ServiceDetails{
			WhatToExpect: []string{
				"Pre-treatment skin assessment",
				"Laser treatment of target area",
				"Cooling gel application",
				"Post-treatment care instructions",
			},
			Benefits: []string{
				"Long-lasting hair reduction",
				"Smooth, hair-free skin",
				"Minimal discomfort",
				"Precision targeting",
			},
			Preparation: []string{
				"Shave treatment area 24 hours before",
				"Avoid sun exposure 2 weeks prior",
				"No waxing or plucking 4 weeks before",
				"Arrive with clean, product-free skin",
			},
		},
	},
}

var timeslots = map[string][]models.Timeslot{
	"facial": {
		{ID: "1", Time: "09:00", Available: true},
		{ID: "2", Time: "10:00", Available: true},
		{ID: "3", Time: "11:00", Available: true},
		{ID: "4", Time: "12:00", Available: true},
		{ID: "5", Time: "13:00", Available: true},
		{ID: "6", Time: "14:00", Available: true},
		{ID: "7", Time: "15:00", Available: true},
		{ID: "8", Time: "16:00", Available: true},
		{ID: "9", Time: "17:00", Available: true},
	},
	"botox": {
		{ID: "1", Time: "09:00", Available: true},
		{ID: "2", Time: "09:30", Available: true},
		{ID: "3", Time: "10:00", Available: true},
		{ID: "4", Time: "10:30", Available: true},
		{ID: "5", Time: "11:00", Available: true},
		{ID: "6", Time: "11:30", Available: true},
		{ID: "7", Time: "12:00", Available: true},
		{ID: "8", Time: "13:00", Available: true},
		{ID: "9", Time: "13:30", Available: true},
		{ID: "10", Time: "14:00", Available: true},
		{ID: "11", Time: "14:30", Available: true},
		{ID: "12", Time: "15:00", Available: true},
		{ID: "13", Time: "15:30", Available: true},
		{ID: "14", Time: "16:00", Available: true},
		{ID: "15", Time: "16:30", Available: true},
		{ID: "16", Time: "17:00", Available: true},
	},
	"hair-removal": {
		{ID: "1", Time: "09:00", Available: true},
		{ID: "2", Time: "10:00", Available: true},
		{ID: "3", Time: "11:00", Available: true},
		{ID: "4", Time: "12:00", Available: true},
		{ID: "5", Time: "13:00", Available: true},
		{ID: "6", Time: "14:00", Available: true},
		{ID: "7", Time: "15:00", Available: true},
		{ID: "8", Time: "16:00", Available: true},
		{ID: "9", Time: "17:00", Available: true},
		{ID: "10", Time: "18:00", Available: true},
	},
}
