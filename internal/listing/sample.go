package listing

import "time"

// Samples returns the static starter dataset shown before (and
// alongside) any user-authored posts. IDs are negative so they can
// never collide with allocated ones.
func Samples() []Listing {
	base := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)
	return []Listing{
		{
			ID:           -1,
			Title:        "IKEA desk, barely used",
			Description:  "Solid desk, a few scuffs on one leg. Pickup only.",
			Price:        "$35",
			Category:     "Items",
			Location:     "North Quad",
			AuthorName:   "Maya R.",
			ImageHandles: []string{},
			CreatedAt:    base,
		},
		{
			ID:           -2,
			Title:        "Summer sublet near campus",
			Description:  "1BR in a 3BR apartment, June through August. Utilities included.",
			Price:        "$650/mo",
			Category:     "Sublets",
			Location:     "Elm Street",
			AuthorName:   "Jordan K.",
			ImageHandles: []string{},
			CreatedAt:    base.Add(4 * time.Hour),
		},
		{
			ID:           -3,
			Title:        "Two kittens need a home",
			Description:  "Litter trained, vaccinated. Must go together.",
			Price:        "Free",
			Category:     "Rescues",
			Location:     "West Dorms",
			AuthorName:   "Sam T.",
			ImageHandles: []string{},
			CreatedAt:    base.Add(26 * time.Hour),
		},
		{
			ID:           -4,
			Title:        "Intro to Algorithms, 4th ed.",
			Description:  "Light highlighting in the first three chapters.",
			Price:        "$40",
			Category:     "Textbooks",
			Location:     "Library steps",
			AuthorName:   "Priya S.",
			ImageHandles: []string{},
			CreatedAt:    base.Add(50 * time.Hour),
		},
		{
			ID:           -5,
			Title:        "Mini fridge",
			Description:  "Works great, fits under a lofted bed.",
			Price:        "$50",
			Category:     "Items",
			Location:     "South Commons",
			AuthorName:   "Luis M.",
			ImageHandles: []string{},
			CreatedAt:    base.Add(70 * time.Hour),
		},
	}
}
