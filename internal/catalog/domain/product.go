package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultUnit = "kg"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand" json:"brand"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Unit        string             `bson:"unit" json:"unit"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Type        string   `json:"type"`
	Unit        string   `json:"unit"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    string   `json:"image_url"`
}

// ProductFilter holds the optional equality filters for listing.
type ProductFilter struct {
	Brand    string
	Category string
}

type PriceUpdate struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

// ProductUpdate is the enumerated set of mutable product fields. A nil
// field was absent from the request and must be left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Type        *string  `json:"type"`
	Unit        *string  `json:"unit"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    *string  `json:"image_url"`
}

// SetDocument maps only the present fields into a $set document.
func (u ProductUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Brand != nil {
		set["brand"] = *u.Brand
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Unit != nil {
		set["unit"] = *u.Unit
	}
	if u.InStock != nil {
		set["in_stock"] = *u.InStock
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	return set
}

type BulkPriceItem struct {
	ProductID string   `json:"product_id" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
}

type BulkPriceUpdate struct {
	Items []BulkPriceItem `json:"items" binding:"required,min=1,dive"`
}

// BulkPriceResult reports how many items matched a product; misses are
// skipped, not failed.
type BulkPriceResult struct {
	Updated int `json:"updated"`
	Total   int `json:"total"`
}
