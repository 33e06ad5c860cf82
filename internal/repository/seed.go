package repository

import "tunisiaclean/internal/model"

func weekHours(open, close string) model.OpeningHours {
	h := make(model.OpeningHours, len(model.Weekdays))
	for _, d := range model.Weekdays {
		h[d] = model.DayHours{Open: open, Close: close}
	}
	return h
}

func withDays(h model.OpeningHours, hours model.DayHours, days ...model.Weekday) model.OpeningHours {
	for _, d := range days {
		h[d] = hours
	}
	return h
}

// SeedLocations returns the built-in catalog, a fresh copy on every call
func SeedLocations() []model.Location {
	return []model.Location{
		{
			ID:               "1",
			Name:             "Café Sidi Bou Said",
			Type:             model.LocationTypeCafe,
			Address:          "Rue Habib Thameur",
			City:             "Sidi Bou Said",
			Region:           "Tunis",
			Coordinates:      model.Coordinates{Lat: 36.8711, Lng: 10.3418},
			CleanlinessScore: 4.8,
			Ratings:          model.Ratings{Overall: 4.7, TotalReviews: 238},
			Amenities:        []string{"WiFi gratuit", "Terrasse", "Vue sur mer", "Climatisation"},
			OpeningHours: withDays(weekHours("08:00", "23:00"),
				model.DayHours{Open: "08:00", Close: "00:00"}, model.Friday, model.Saturday),
			Images: []string{
				"https://images.unsplash.com/photo-1610194352361-4c81a6a8967e?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1659221266338-7344960abdbc?ixlib=rb-4.0.3",
			},
			Description: "Café traditionnel avec une vue imprenable sur la mer Méditerranée. Connu pour son authenticité exemplaire et son service attentif aux valeurs locales.",
			Tags:        []string{"Vue panoramique", "Café traditionnel", "Authenticité"},
			PriceLevel:  2,
			Featured:    true,
		},
		{
			ID:               "2",
			Name:             "Restaurant El Walima",
			Type:             model.LocationTypeRestaurant,
			Address:          "Avenue Habib Bourguiba",
			City:             "Tunis",
			Region:           "Tunis",
			Coordinates:      model.Coordinates{Lat: 36.7992, Lng: 10.1844},
			CleanlinessScore: 4.9,
			Ratings:          model.Ratings{Overall: 4.8, TotalReviews: 352},
			Amenities:        []string{"Parking", "Réservation", "Climatisation", "Service VIP"},
			OpeningHours: withDays(weekHours("12:00", "23:00"),
				model.DayHours{Open: "12:00", Close: "00:00"}, model.Friday, model.Saturday),
			Images: []string{
				"https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1478145046317-39f10e56b5e9?ixlib=rb-4.0.3",
			},
			Description: "Restaurant élégant proposant une cuisine tunisienne raffinée dans un cadre somptueux. Respect rigoureux des traditions culinaires et des valeurs d'excellence.",
			Tags:        []string{"Cuisine tunisienne", "Élégant", "Éthique culinaire"},
			PriceLevel:  3,
			Featured:    true,
		},
		{
			ID:               "3",
			Name:             "Plage de Hammamet",
			Type:             model.LocationTypeBeach,
			Address:          "Hammamet Sud",
			City:             "Hammamet",
			Region:           "Nabeul",
			Coordinates:      model.Coordinates{Lat: 36.3782, Lng: 10.5457},
			CleanlinessScore: 4.5,
			Ratings:          model.Ratings{Overall: 4.6, TotalReviews: 504},
			Amenities:        []string{"Douches", "Toilettes", "Location de parasols", "Activités nautiques"},
			OpeningHours:     weekHours("06:00", "20:00"),
			Images: []string{
				"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1519046904884-53103b34b206?ixlib=rb-4.0.3",
			},
			Description: "Plage de sable fin avec des eaux cristallines. Entretenue quotidiennement pour garantir la propreté des lieux.",
			Tags:        []string{"Sable fin", "Eau claire", "Familial"},
			PriceLevel:  1,
			Featured:    true,
		},
		{
			ID:               "4",
			Name:             "Parc Habib Thameur",
			Type:             model.LocationTypePark,
			Address:          "Avenue Habib Thameur",
			City:             "Tunis",
			Region:           "Tunis",
			Coordinates:      model.Coordinates{Lat: 36.7977, Lng: 10.1813},
			CleanlinessScore: 4.3,
			Ratings:          model.Ratings{Overall: 4.4, TotalReviews: 187},
			Amenities:        []string{"Aires de jeux", "Bancs", "Fontaines", "Pistes de jogging"},
			OpeningHours:     weekHours("07:00", "19:00"),
			Images: []string{
				"https://images.unsplash.com/photo-1586531387058-bd3f4f3a9ac7?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1552779283-ac93d926d625?ixlib=rb-4.0.3",
			},
			Description: "Espace vert paisible au cœur de Tunis. Un havre de paix parfaitement entretenu pour les promenades et le repos.",
			Tags:        []string{"Espace vert", "Paisible", "Bien entretenu"},
			PriceLevel:  1,
		},
		{
			ID:               "5",
			Name:             "Musée du Bardo",
			Type:             model.LocationTypeMuseum,
			Address:          "Avenue Habib Bourguiba",
			City:             "Tunis",
			Region:           "Tunis",
			Coordinates:      model.Coordinates{Lat: 36.8091, Lng: 10.1345},
			CleanlinessScore: 4.7,
			Ratings:          model.Ratings{Overall: 4.9, TotalReviews: 723},
			Amenities:        []string{"Visites guidées", "Boutique", "Café", "Climatisation"},
			OpeningHours: withDays(weekHours("09:00", "17:00"),
				model.DayHours{Open: "Fermé", Close: "Fermé"}, model.Monday),
			Images: []string{
				"https://images.unsplash.com/photo-1605624540925-57b35689d1c0?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1582034986517-30d163a12cda?ixlib=rb-4.0.3",
			},
			Description: "Un des plus importants musées du bassin méditerranéen, abritant l'une des plus belles collections de mosaïques romaines au monde.",
			Tags:        []string{"Culturel", "Historique", "Éducatif"},
			PriceLevel:  2,
		},
		{
			ID:               "6",
			Name:             "Café Delices",
			Type:             model.LocationTypeCafe,
			Address:          "Rue de la Kasbah",
			City:             "Sousse",
			Region:           "Sousse",
			Coordinates:      model.Coordinates{Lat: 35.8262, Lng: 10.6345},
			CleanlinessScore: 4.6,
			Ratings:          model.Ratings{Overall: 4.5, TotalReviews: 216},
			Amenities:        []string{"WiFi gratuit", "Prises électriques", "Terrasse", "Pâtisseries"},
			OpeningHours: withDays(
				withDays(weekHours("07:30", "22:00"),
					model.DayHours{Open: "07:30", Close: "23:30"}, model.Friday, model.Saturday),
				model.DayHours{Open: "08:30", Close: "22:00"}, model.Sunday),
			Images: []string{
				"https://images.unsplash.com/photo-1599142296733-31bdb2086bb6?ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1521017432531-fbd92d768814?ixlib=rb-4.0.3",
			},
			Description: "Café moderne avec une ambiance détendue et une décoration soignée. Très attentif à la propreté de l'espace.",
			Tags:        []string{"Café moderne", "Pâtisseries", "Espace travail"},
			PriceLevel:  2,
		},
	}
}
