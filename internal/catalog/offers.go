package catalog

import (
	"time"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

// SeedOffers returns the mock offer pool used to seed storage on first read.
func SeedOffers(now time.Time) []entity.Offer {
	issued := now.UTC()
	return []entity.Offer{
		{
			ID:          "offer-1",
			PropertyID:  "p1",
			Title:       "The Yard Braamfontein",
			Location:    "Braamfontein, Johannesburg",
			HostName:    "Thandi Mokoena",
			RoomType:    "Single en-suite",
			MonthlyRent: 4850,
			MoveInDate:  "2026-02-01",
			Status:      entity.OfferPending,
			IssuedAt:    issued,
			UpdatedAt:   issued,
		},
		{
			ID:          "offer-2",
			PropertyID:  "p3",
			Title:       "Hatfield Studios",
			Location:    "Hatfield, Pretoria",
			HostName:    "Pieter van Wyk",
			RoomType:    "Bachelor studio",
			MonthlyRent: 6200,
			Status:      entity.OfferPending,
			IssuedAt:    issued,
			UpdatedAt:   issued,
		},
		{
			ID:          "offer-3",
			PropertyID:  "p6",
			Title:       "South Point Maboneng",
			Location:    "Maboneng, Johannesburg",
			HostName:    "Lerato Dube",
			RoomType:    "Premium single",
			MonthlyRent: 5400,
			MoveInDate:  "2026-03-01",
			Status:      entity.OfferPending,
			IssuedAt:    issued,
			UpdatedAt:   issued,
		},
	}
}
