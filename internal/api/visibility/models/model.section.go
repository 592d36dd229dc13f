// Package models - SectionDescriptor thuộc domain visibility.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionDescriptor mô tả một mục trong danh mục section của ứng dụng.
// Path là định danh duy nhất dạng "/invoices"; RelatedPaths liệt kê các path
// khác bị ẩn theo khi section này bị ẩn (ví dụ ẩn "Sản phẩm" kéo theo
// "/products/labels").
type SectionDescriptor struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Path         string             `json:"path" bson:"path" index:"unique"`
	Label        string             `json:"label" bson:"label"`
	RelatedPaths []string           `json:"relatedPaths,omitempty" bson:"relatedPaths,omitempty"`
	SortOrder    int                `json:"sortOrder" bson:"sortOrder"`
	IsSystem     bool               `json:"-" bson:"isSystem"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
