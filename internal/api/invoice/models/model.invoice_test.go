package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLineItemAmount(t *testing.T) {
	li := LineItem{ProductID: primitive.NewObjectID(), Quantity: 3, UnitPrice: 15000}
	if got := li.Amount(); got != 45000 {
		t.Errorf("Amount() = %v, kỳ vọng 45000", got)
	}
}

func TestComputeTotal(t *testing.T) {
	items := []LineItem{
		{ProductID: primitive.NewObjectID(), Quantity: 2, UnitPrice: 25000},
		{ProductID: primitive.NewObjectID(), Quantity: 1, UnitPrice: 5000},
	}
	if got := ComputeTotal(items); got != 55000 {
		t.Errorf("ComputeTotal = %v, kỳ vọng 55000", got)
	}
	if got := ComputeTotal(nil); got != 0 {
		t.Errorf("ComputeTotal(nil) = %v, kỳ vọng 0", got)
	}
}
