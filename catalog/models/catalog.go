// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// Resource is a published directory entry: an article, tool, report or
// other link-shaped item users can browse and bookmark.
type Resource struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Type        string         `json:"type" db:"type"`
	Audience    string         `json:"audience" db:"audience"`
	URL         string         `json:"url" db:"url"`
	ImageURL    string         `json:"imageUrl" db:"image_url"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

func (r Resource) ItemID() string { return r.ID.String() }

// Stablecoin is a coin profile page entry.
type Stablecoin struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Symbol      string    `json:"symbol" db:"symbol"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
	Issuer      string    `json:"issuer" db:"issuer"`
	WebsiteURL  string    `json:"websiteUrl" db:"website_url"`
	LogoURL     string    `json:"logoUrl" db:"logo_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (s Stablecoin) ItemID() string { return s.ID.String() }

// Expert is a listed industry person.
type Expert struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Title      string    `json:"title" db:"title"`
	Bio        string    `json:"bio" db:"bio"`
	Expertise  string    `json:"expertise" db:"expertise"`
	AvatarURL  string    `json:"avatarUrl" db:"avatar_url"`
	TwitterURL string    `json:"twitterUrl" db:"twitter_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

func (e Expert) ItemID() string { return e.ID.String() }

// Job is an open role listing.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Company     string    `json:"company" db:"company"`
	Location    string    `json:"location" db:"location"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	ApplyURL    string    `json:"applyUrl" db:"apply_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (j Job) ItemID() string { return j.ID.String() }

// Event is a conference, meetup or online event.
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Type        string    `json:"type" db:"type"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	WebsiteURL  string    `json:"websiteUrl" db:"website_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (e Event) ItemID() string { return e.ID.String() }

// Regulation is a regulatory development entry tracked per region.
type Regulation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Summary   string    `json:"summary" db:"summary"`
	Region    string    `json:"region" db:"region"`
	Status    string    `json:"status" db:"status"`
	SourceURL string    `json:"sourceUrl" db:"source_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (r Regulation) ItemID() string { return r.ID.String() }
